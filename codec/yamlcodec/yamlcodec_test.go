package yamlcodec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobeaver/pathkit"
	"github.com/gobeaver/pathkit/codec/yamlcodec"
)

func TestWriter_QuotesAmbiguousScalars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := yamlcodec.NewWriter(&buf)
	for _, s := range []string{"/plain", "true", "", "123", "~"} {
		require.NoError(t, w.WriteString(s, len(s)))
	}
	require.NoError(t, w.Flush())

	out := buf.String()
	assert.Contains(t, out, "- /plain\n")
	assert.Contains(t, out, `- "true"`)
	assert.Contains(t, out, `- ""`)
	assert.Contains(t, out, `- "123"`)
	assert.Contains(t, out, `- "~"`)

	paths, err := pathkit.ReadPaths(yamlcodec.NewReader(&buf))
	require.NoError(t, err)
	require.Len(t, paths, 5)
	assert.Equal(t, "true", paths[1].String())
	assert.Equal(t, "", paths[2].String())
	assert.Equal(t, "~", paths[4].String())
}

func TestWriter_EmptyFlush(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := yamlcodec.NewWriter(&buf)
	require.NoError(t, w.Flush())
	assert.Zero(t, buf.Len())
}

func TestReader_Documents(t *testing.T) {
	t.Parallel()

	input := "/scalar\n---\n- /a\n- /b\n"
	paths, err := pathkit.ReadPaths(yamlcodec.NewReader(strings.NewReader(input)))
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, "/scalar", paths[0].String())
	assert.Equal(t, "/b", paths[2].String())
}

func TestReader_NotString(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"a: b\n", "- 42\n", "- [/nested]\n", "null\n"} {
		r := yamlcodec.NewReader(strings.NewReader(input))
		_, err := r.ReadString()
		assert.ErrorIs(t, err, pathkit.ErrNotString, input)
	}
}

func TestRoundTrip_Directory(t *testing.T) {
	t.Parallel()

	src := pathkit.NewDirectory(pathkit.NewAbsolutePath("/etc/app", pathkit.WithoutValidation()))

	var buf bytes.Buffer
	w := yamlcodec.NewWriter(&buf)
	require.NoError(t, src.Write(w))
	require.NoError(t, w.Flush())

	var dst pathkit.Directory
	require.NoError(t, dst.Read(yamlcodec.NewReader(&buf)))
	assert.Equal(t, src, dst)
}

func TestWriter_RejectsInvalidUTF8(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := yamlcodec.NewWriter(&buf)

	err := pathkit.NewAbsolutePath("/tmp/\xff\xfe", pathkit.WithoutValidation()).Write(w)
	require.ErrorIs(t, err, pathkit.ErrNotSupported)
	require.NoError(t, w.Flush())
	assert.Empty(t, buf.String())
}
