package pathkit

import (
	"fmt"

	"github.com/gobwas/glob"
)

func compileGlob(pattern string) (glob.Glob, error) {
	g, err := glob.Compile(pattern, Separator)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return g, nil
}

func matchText(text, pattern string) (bool, error) {
	g, err := compileGlob(pattern)
	if err != nil {
		return false, err
	}
	return g.Match(text), nil
}
