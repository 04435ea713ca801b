package devproxy

import (
	"fmt"
	"regexp"
)

// Rewrite replaces the first match of Source in a path with Destination.
// Destination may reference capture groups ("$1").
type Rewrite struct {
	Source      *regexp.Regexp
	Destination string
}

// NewRewrite compiles pattern into a [Rewrite].
func NewRewrite(pattern, destination string) (*Rewrite, error) {
	src, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile rewrite %q: %w", pattern, err)
	}
	return &Rewrite{Source: src, Destination: destination}, nil
}

// MustRewrite is like [NewRewrite] but panics on an invalid pattern.
func MustRewrite(pattern, destination string) *Rewrite {
	rw, err := NewRewrite(pattern, destination)
	if err != nil {
		panic(err)
	}
	return rw
}

// Apply rewrites path. A nil Rewrite returns path unchanged.
func (rw *Rewrite) Apply(path string) string {
	if rw == nil || rw.Source == nil {
		return path
	}

	loc := rw.Source.FindStringSubmatchIndex(path)
	if loc == nil {
		return path
	}

	var dst []byte
	dst = rw.Source.ExpandString(dst, rw.Destination, path, loc)
	return path[:loc[0]] + string(dst) + path[loc[1]:]
}
