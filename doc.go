// Package pathkit provides typed path values that separate absolute file
// paths from directory paths.
//
// An [AbsolutePath] wraps a path string that is expected to be absolute. The
// expectation is checked when the value is built, but a failing check is only
// reported, never returned: construction always succeeds and the text is kept
// exactly as given.
//
//	p := pathkit.NewAbsolutePath("/srv/data")
//	fmt.Println(p) // /srv/data
//
//	// Logged at error level with a stack trace, still constructed.
//	q := pathkit.NewAbsolutePath("relative/path")
//	fmt.Println(q) // relative/path
//
// A [Directory] is derived from an AbsolutePath and always ends in the
// platform separator:
//
//	d := pathkit.NewDirectory(pathkit.NewAbsolutePath("/srv/data"))
//	fmt.Println(d) // /srv/data/
//
// # Diagnostics
//
// Failed checks go to a [Reporter]. By default this is a [SlogReporter] over
// slog.Default(); pass [WithReporter] to route them elsewhere, or
// [WithoutValidation] to skip the check entirely. [Recorder] keeps
// diagnostics in memory for tests.
//
//	rec := &pathkit.Recorder{}
//	pathkit.NewAbsolutePath("tmp", pathkit.WithReporter(rec))
//	rec.Len() // 1
//
// Use [AbsolutePath.Validate] or [ValidateAll] when a hard guarantee is
// required.
//
// # Serialization
//
// Both types read and write themselves through string-token cursors
// ([Reader] and [Writer]). Formats are provided by codec packages that
// register themselves on import:
//
//   - JSON (github.com/gobeaver/pathkit/codec/jsoncodec)
//   - YAML (github.com/gobeaver/pathkit/codec/yamlcodec)
//   - MessagePack (github.com/gobeaver/pathkit/codec/msgpackcodec)
//   - cty list(string) (github.com/gobeaver/pathkit/codec/ctycodec)
//   - In-memory token stream (github.com/gobeaver/pathkit/codec/memory)
//
//	import _ "github.com/gobeaver/pathkit/codec/yamlcodec"
//
//	var buf bytes.Buffer
//	err := pathkit.Encode(&buf, "yaml", p, q)
//	paths, err := pathkit.Decode(&buf, "yaml")
//
// Reading never validates; values written and read back compare equal for
// every input, including the empty string.
//
// Both types also implement encoding.TextMarshaler, sql.Scanner and
// driver.Valuer, which the pathstore package uses to persist named bindings.
package pathkit
