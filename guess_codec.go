package pathkit

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Codec names used by the bundled codec packages
const (
	CodecJSON    = "json"
	CodecYAML    = "yaml"
	CodecMsgpack = "msgpack"
	CodecCty     = "cty"
)

// File extensions to codec names
var extensionToCodec = map[string]string{
	".json":    CodecJSON,
	".jsonl":   CodecJSON,
	".ndjson":  CodecJSON,
	".yaml":    CodecYAML,
	".yml":     CodecYAML,
	".msgpack": CodecMsgpack,
	".mpk":     CodecMsgpack,
	".cty":     CodecCty,
}

// GuessCodec picks a codec name for a file from its name and, failing
// that, from the first bytes of its content. The result may not be
// registered; pass it to LookupCodec.
func GuessCodec(fileName string, data []byte) string {
	if name, ok := CodecForExtension(filepath.Ext(fileName)); ok {
		return name
	}

	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return CodecJSON
	}

	switch c := data[0]; {
	case c == '"' || c == '[':
		return CodecJSON
	case c >= 0x80 || c < 0x20:
		// fixstr, str8/16/32 and bin8/16/32 all start outside printable ASCII.
		return CodecMsgpack
	default:
		return CodecYAML
	}
}

// CodecForExtension returns the codec registered for a file extension
// such as ".yaml". The lookup is case-insensitive.
func CodecForExtension(ext string) (string, bool) {
	name, ok := extensionToCodec[strings.ToLower(ext)]
	return name, ok
}

// ExtensionForCodec returns the preferred file extension for a codec name,
// or ".bin" when the codec is unknown.
func ExtensionForCodec(name string) string {
	switch name {
	case CodecJSON:
		return ".json"
	case CodecYAML:
		return ".yaml"
	case CodecMsgpack:
		return ".msgpack"
	case CodecCty:
		return ".cty"
	}
	return ".bin"
}
