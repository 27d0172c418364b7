package pathkit_test

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobeaver/pathkit"
	"github.com/gobeaver/pathkit/codec/memory"
)

func alwaysAbsolute(string) bool { return true }

func neverAbsolute(string) bool { return false }

func TestNewAbsolutePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		text        string
		checker     func(string) bool
		wantReports int
	}{
		{name: "accepted path", text: "/home/user", checker: alwaysAbsolute, wantReports: 0},
		{name: "rejected path", text: "relative/path", checker: neverAbsolute, wantReports: 1},
		{name: "rejected empty path", text: "", checker: neverAbsolute, wantReports: 1},
		{name: "text kept verbatim", text: "/a//b/./c/", checker: alwaysAbsolute, wantReports: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := &pathkit.Recorder{}
			p := pathkit.NewAbsolutePath(tt.text, pathkit.WithChecker(tt.checker), pathkit.WithReporter(rec))

			assert.Equal(t, tt.text, p.String())
			assert.Equal(t, tt.wantReports, rec.Len())
		})
	}
}

func TestNewAbsolutePath_NonFatalValidation(t *testing.T) {
	t.Parallel()

	rec := &pathkit.Recorder{}
	p := pathkit.NewAbsolutePath("relative/path", pathkit.WithReporter(rec))

	assert.Equal(t, "relative/path", p.String())

	entries := rec.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, slog.LevelError, entries[0].Level)
	assert.Contains(t, entries[0].Message, "relative/path")
	assert.Contains(t, entries[0].Stack, "TestNewAbsolutePath_NonFatalValidation")
	assert.NotContains(t, entries[0].Stack, "pathkit.NewAbsolutePath")
}

func TestNewAbsolutePath_WithoutValidation(t *testing.T) {
	t.Parallel()

	rec := &pathkit.Recorder{}
	p := pathkit.NewAbsolutePath("relative/path", pathkit.WithoutValidation(), pathkit.WithReporter(rec))

	assert.Equal(t, "relative/path", p.String())
	assert.Zero(t, rec.Len())
}

func TestNewAbsolutePath_ReporterFunc(t *testing.T) {
	t.Parallel()

	var got []string
	r := pathkit.ReporterFunc(func(_ slog.Level, msg string, _ string) {
		got = append(got, msg)
	})

	pathkit.NewAbsolutePath("x", pathkit.WithChecker(neverAbsolute), pathkit.WithReporter(r))
	pathkit.NewAbsolutePath("y", pathkit.WithChecker(alwaysAbsolute), pathkit.WithReporter(r))

	assert.Equal(t, []string{"expected x to be absolute"}, got)
}

func TestNewAbsolutePath_ConcurrentReports(t *testing.T) {
	t.Parallel()

	rec := &pathkit.Recorder{}
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pathkit.NewAbsolutePath("rel", pathkit.WithChecker(neverAbsolute), pathkit.WithReporter(rec))
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, rec.Len())
}

func TestAbsolutePath_Default(t *testing.T) {
	t.Parallel()

	var p pathkit.AbsolutePath
	assert.Empty(t, p.String())
	assert.True(t, p.IsZero())
	assert.False(t, pathkit.NewAbsolutePath("/x", pathkit.WithoutValidation()).IsZero())
}

func TestAbsolutePath_Equal(t *testing.T) {
	t.Parallel()

	texts := []string{"", "/", "/a", "/a/", "relative", "/A"}
	for _, s1 := range texts {
		for _, s2 := range texts {
			a := pathkit.NewAbsolutePath(s1, pathkit.WithoutValidation())
			b := pathkit.NewAbsolutePath(s2, pathkit.WithoutValidation())
			assert.Equal(t, s1 == s2, a.Equal(b), "%q vs %q", s1, s2)
			assert.Equal(t, s1 == s2, a == b, "%q vs %q", s1, s2)
			assert.Equal(t, a.Equal(b), b.Equal(a))
		}
	}
}

func TestAbsolutePath_Equal_IgnoresValidity(t *testing.T) {
	t.Parallel()

	rec := &pathkit.Recorder{}
	warned := pathkit.NewAbsolutePath("tmp", pathkit.WithReporter(rec))
	silent := pathkit.NewAbsolutePath("tmp", pathkit.WithoutValidation())

	assert.Equal(t, 1, rec.Len())
	assert.True(t, warned.Equal(silent))
}

func TestAbsolutePath_Validate(t *testing.T) {
	t.Parallel()

	p := pathkit.NewAbsolutePath("relative", pathkit.WithoutValidation())
	err := p.Validate()
	require.Error(t, err)
	assert.True(t, pathkit.IsNotAbsolute(err))

	var pathErr *pathkit.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "validate", pathErr.Op)
	assert.Equal(t, "relative", pathErr.Path)
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	good := pathkit.NewAbsolutePath(absFixture(), pathkit.WithoutValidation())
	bad1 := pathkit.NewAbsolutePath("a", pathkit.WithoutValidation())
	bad2 := pathkit.NewAbsolutePath("", pathkit.WithoutValidation())

	require.NoError(t, pathkit.ValidateAll(good))
	require.NoError(t, pathkit.ValidateAll())

	err := pathkit.ValidateAll(bad1, good, bad2)
	require.Error(t, err)
	assert.True(t, pathkit.IsNotAbsolute(err))

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
}

func TestAbsolutePath_RoundTrip(t *testing.T) {
	t.Parallel()

	texts := []string{"", "/", "/home/user", "relative/path", "/with space/ünï", "C:\\Windows"}
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			t.Parallel()

			src := pathkit.NewAbsolutePath(text, pathkit.WithoutValidation())
			stream := memory.New()
			require.NoError(t, src.Write(stream))
			assert.Equal(t, []string{text}, stream.Tokens())

			var dst pathkit.AbsolutePath
			require.NoError(t, dst.Read(stream))
			assert.Equal(t, src, dst)
		})
	}
}

func TestAbsolutePath_ReadDoesNotValidate(t *testing.T) {
	t.Parallel()

	var p pathkit.AbsolutePath
	require.NoError(t, p.Read(memory.New("not/absolute")))
	assert.Equal(t, "not/absolute", p.String())
	assert.Error(t, p.Validate())
}

func TestAbsolutePath_ReadError(t *testing.T) {
	t.Parallel()

	p := pathkit.NewAbsolutePath("/kept", pathkit.WithoutValidation())
	err := p.Read(memory.New())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "/kept", p.String())
}

func TestAbsolutePath_TextMarshaling(t *testing.T) {
	t.Parallel()

	type doc struct {
		Root pathkit.AbsolutePath `json:"root"`
	}

	in := doc{Root: pathkit.NewAbsolutePath("/srv/app", pathkit.WithoutValidation())}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"root":"/srv/app"}`, string(data))

	var out doc
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestAbsolutePath_Scan(t *testing.T) {
	t.Parallel()

	var p pathkit.AbsolutePath
	require.NoError(t, p.Scan("/from/string"))
	assert.Equal(t, "/from/string", p.String())

	require.NoError(t, p.Scan([]byte("/from/bytes")))
	assert.Equal(t, "/from/bytes", p.String())

	err := p.Scan(42)
	assert.ErrorIs(t, err, pathkit.ErrNotString)

	v, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, "/from/bytes", v)
}

func TestAbsolutePath_Checksum(t *testing.T) {
	t.Parallel()

	p := pathkit.NewAbsolutePath("/srv/app", pathkit.WithoutValidation())

	sum, err := p.Checksum(pathkit.ChecksumXXHash)
	require.NoError(t, err)
	assert.Len(t, sum, 16)
	assert.Equal(t, xxhashHex("/srv/app"), sum)

	sha, err := p.Checksum(pathkit.ChecksumSHA256)
	require.NoError(t, err)
	assert.Len(t, sha, 64)

	_, err = p.Checksum("rot13")
	assert.True(t, errors.Is(err, pathkit.ErrNotSupported))
}

func TestAbsolutePath_ChecksumRawBytes(t *testing.T) {
	t.Parallel()

	text := "/tmp/\xff\xfe"
	p := pathkit.NewAbsolutePath(text, pathkit.WithoutValidation())
	sum, err := p.Checksum(pathkit.ChecksumSHA256)
	require.NoError(t, err)
	want := sha256.Sum256([]byte(text))
	assert.Equal(t, hex.EncodeToString(want[:]), sum)

	sizes := map[pathkit.ChecksumAlgorithm]int{
		pathkit.ChecksumMD5:    32,
		pathkit.ChecksumSHA1:   40,
		pathkit.ChecksumSHA256: 64,
		pathkit.ChecksumSHA512: 128,
		pathkit.ChecksumCRC32:  8,
		pathkit.ChecksumXXHash: 16,
	}
	for alg, size := range sizes {
		sum, err := p.Checksum(alg)
		require.NoError(t, err, alg)
		assert.Len(t, sum, size, alg)

		h, err := pathkit.NewHasher(alg)
		require.NoError(t, err, alg)
		_, _ = h.Write([]byte(text))
		assert.Equal(t, hex.EncodeToString(h.Sum(nil)), sum, alg)
	}

	_, err = pathkit.NewHasher("rot13")
	assert.ErrorIs(t, err, pathkit.ErrNotSupported)
}

func TestAbsolutePath_MatchInvalidPattern(t *testing.T) {
	t.Parallel()

	p := pathkit.NewAbsolutePath("/a", pathkit.WithoutValidation())
	_, err := p.Match("[")
	assert.Error(t, err)
}

func xxhashHex(s string) string {
	d := xxhash.New()
	_, _ = d.WriteString(s)
	return hex.EncodeToString(d.Sum(nil))
}
