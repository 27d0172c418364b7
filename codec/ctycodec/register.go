package ctycodec

import "github.com/gobeaver/pathkit"

func init() {
	pathkit.RegisterCodec(Codec{})
}
