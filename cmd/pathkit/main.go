// Package main is the entry point for the pathkit CLI.
package main

import "github.com/gobeaver/pathkit/internal/app"

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/pathkit
var version = "dev"

func main() {
	app.SetVersion(version)
	app.Execute()
}
