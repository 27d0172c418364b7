package jsoncodec_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobeaver/pathkit"
	"github.com/gobeaver/pathkit/codec/jsoncodec"
)

func TestWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := jsoncodec.NewWriter(&buf)
	require.NoError(t, w.WriteString("/a<b>", 5))
	require.NoError(t, w.WriteString("", 0))
	require.NoError(t, w.Flush())

	assert.Equal(t, "\"/a<b>\"\n\"\"\n", buf.String())
}

func TestReader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "string stream", input: `"/a" "/b"`, want: []string{"/a", "/b"}},
		{name: "array", input: `["/a", "/b"]`, want: []string{"/a", "/b"}},
		{name: "mixed", input: `"/a" ["/b", ""] "/c"`, want: []string{"/a", "/b", "", "/c"}},
		{name: "empty input", input: ``, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			paths, err := pathkit.ReadPaths(jsoncodec.NewReader(strings.NewReader(tt.input)))
			require.NoError(t, err)

			var got []string
			for _, p := range paths {
				got = append(got, p.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReader_NotString(t *testing.T) {
	t.Parallel()

	for _, input := range []string{`42`, `{"p": "/a"}`, `null`, `[true]`} {
		r := jsoncodec.NewReader(strings.NewReader(input))
		_, err := r.ReadString()
		assert.ErrorIs(t, err, pathkit.ErrNotString, input)
	}
}

func TestReader_EOF(t *testing.T) {
	t.Parallel()

	r := jsoncodec.NewReader(strings.NewReader(`"/only"`))
	_, err := r.ReadString()
	require.NoError(t, err)
	_, err = r.ReadString()
	assert.ErrorIs(t, err, io.EOF)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	src := pathkit.NewAbsolutePath("/tmp/ü/\t tab", pathkit.WithoutValidation())

	var buf bytes.Buffer
	w := jsoncodec.NewWriter(&buf)
	require.NoError(t, src.Write(w))
	require.NoError(t, w.Flush())

	var dst pathkit.AbsolutePath
	require.NoError(t, dst.Read(jsoncodec.NewReader(&buf)))
	assert.Equal(t, src, dst)
}

func TestWriter_RejectsInvalidUTF8(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := jsoncodec.NewWriter(&buf)

	err := pathkit.NewAbsolutePath("/tmp/\xff\xfe", pathkit.WithoutValidation()).Write(w)
	require.ErrorIs(t, err, pathkit.ErrNotSupported)
	require.NoError(t, w.Flush())
	assert.Empty(t, buf.String())
}
