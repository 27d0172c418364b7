//go:build !windows

package pathkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobeaver/pathkit"
)

func absFixture() string { return "/home/user" }

func TestIsAbsolute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"/", true},
		{"/home/user", true},
		{"//net/share", true},
		{"", false},
		{"home/user", false},
		{"./home", false},
		{"~/home", false},
		{"C:\\Windows", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pathkit.IsAbsolute(tt.text), "IsAbsolute(%q)", tt.text)
	}
}

func TestEnsureTrailingSeparator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"/home/user", "/home/user/"},
		{"/home/user/", "/home/user/"},
		{"/home/user//", "/home/user//"},
		{"/home/user\\", "/home/user\\/"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pathkit.EnsureTrailingSeparator(tt.text), "EnsureTrailingSeparator(%q)", tt.text)
	}
}

func TestNewDirectory_Scenario(t *testing.T) {
	t.Parallel()

	d := pathkit.NewDirectory(pathkit.NewAbsolutePath("/home/user", pathkit.WithReporter(pathkit.NopReporter{})))
	assert.Equal(t, "/home/user/", d.String())

	d = pathkit.NewDirectory(pathkit.NewAbsolutePath("/home/user/", pathkit.WithReporter(pathkit.NopReporter{})))
	assert.Equal(t, "/home/user/", d.String())
}

func TestNewAbsolutePath_PlatformCheck(t *testing.T) {
	t.Parallel()

	rec := &pathkit.Recorder{}
	pathkit.NewAbsolutePath("/home/user", pathkit.WithReporter(rec))
	assert.Zero(t, rec.Len())

	pathkit.NewAbsolutePath("home/user", pathkit.WithReporter(rec))
	assert.Equal(t, 1, rec.Len())
}

func TestMatch(t *testing.T) {
	t.Parallel()

	p := pathkit.NewAbsolutePath("/srv/data/report.csv")

	tests := []struct {
		pattern string
		want    bool
	}{
		{"/srv/**", true},
		{"/srv/*", false},
		{"/srv/data/*.csv", true},
		{"/srv/data/*.json", false},
		{"**.csv", true},
		{"/srv/{data,logs}/*", true},
	}

	for _, tt := range tests {
		got, err := p.Match(tt.pattern)
		if assert.NoError(t, err, tt.pattern) {
			assert.Equal(t, tt.want, got, "Match(%q)", tt.pattern)
		}
	}

	d := pathkit.NewDirectory(p)
	got, err := d.Match("/srv/data/report.csv/")
	assert.NoError(t, err)
	assert.True(t, got)
}
