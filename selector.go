package pathkit

import (
	"strings"

	"github.com/gobwas/glob"
)

// Selector decides whether a path belongs to a result set.
//
// Selectors compose with And, Or and Not:
//
//	sel := pathkit.And(
//	    pathkit.Under(pathkit.NewDirectory(pathkit.NewAbsolutePath("/srv"))),
//	    pathkit.Not(pathkit.MustGlob("**.tmp")),
//	)
//	kept := pathkit.Select(paths, sel)
type Selector interface {
	Match(p AbsolutePath) bool
}

// Select returns the paths matched by sel, in their original order
func Select(paths []AbsolutePath, sel Selector) []AbsolutePath {
	if sel == nil {
		sel = All()
	}
	var out []AbsolutePath
	for _, p := range paths {
		if sel.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

type allSelector struct{}

func (allSelector) Match(AbsolutePath) bool { return true }

// All returns a selector that matches every path.
func All() Selector {
	return allSelector{}
}

type globSelector struct {
	g glob.Glob
}

// Glob compiles a glob pattern into a selector. "*" stops at Separator and
// "**" does not.
func Glob(pattern string) (Selector, error) {
	g, err := compileGlob(pattern)
	if err != nil {
		return nil, err
	}
	return &globSelector{g: g}, nil
}

// MustGlob is like Glob but panics if the pattern is invalid.
func MustGlob(pattern string) Selector {
	sel, err := Glob(pattern)
	if err != nil {
		panic(err)
	}
	return sel
}

func (s *globSelector) Match(p AbsolutePath) bool {
	return s.g.Match(p.text)
}

type underSelector struct {
	prefix string
}

// Under matches paths strictly below dir. The comparison is textual; no
// cleaning or resolution happens.
func Under(dir Directory) Selector {
	return &underSelector{prefix: EnsureTrailingSeparator(dir.text)}
}

func (s *underSelector) Match(p AbsolutePath) bool {
	return len(p.text) > len(s.prefix) && strings.HasPrefix(p.text, s.prefix)
}

type depthSelector struct {
	maxDepth int
	base     string
}

// Depth matches paths below dir that are at most maxDepth elements deep.
// Depth 1 is the immediate children. A trailing separator does not add a
// level.
func Depth(maxDepth int, dir Directory) Selector {
	return &depthSelector{maxDepth: maxDepth, base: EnsureTrailingSeparator(dir.text)}
}

func (s *depthSelector) Match(p AbsolutePath) bool {
	if !strings.HasPrefix(p.text, s.base) {
		return false
	}
	rel := strings.TrimRightFunc(p.text[len(s.base):], isSeparatorRune)
	if rel == "" {
		return false
	}
	depth := 1
	for i := 0; i < len(rel); i++ {
		if IsSeparator(rel[i]) {
			depth++
		}
	}
	return depth <= s.maxDepth
}

func isSeparatorRune(r rune) bool {
	return r < 0x80 && IsSeparator(byte(r))
}

type andSelector struct {
	selectors []Selector
}

// And matches only if all selectors match.
func And(selectors ...Selector) Selector {
	return &andSelector{selectors: selectors}
}

func (s *andSelector) Match(p AbsolutePath) bool {
	for _, sel := range s.selectors {
		if !sel.Match(p) {
			return false
		}
	}
	return true
}

type orSelector struct {
	selectors []Selector
}

// Or matches if any selector matches.
func Or(selectors ...Selector) Selector {
	return &orSelector{selectors: selectors}
}

func (s *orSelector) Match(p AbsolutePath) bool {
	for _, sel := range s.selectors {
		if sel.Match(p) {
			return true
		}
	}
	return false
}

type notSelector struct {
	selector Selector
}

// Not inverts a selector.
func Not(selector Selector) Selector {
	return &notSelector{selector: selector}
}

func (s *notSelector) Match(p AbsolutePath) bool {
	return !s.selector.Match(p)
}

// SelectorFunc adapts a function to the Selector interface
type SelectorFunc func(p AbsolutePath) bool

// Match calls f(p)
func (f SelectorFunc) Match(p AbsolutePath) bool {
	return f(p)
}
