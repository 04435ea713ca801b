package devproxy

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SourceAlias is the import alias of the client source directory.
const SourceAlias = "@"

// Aliases maps path aliases such as "@" to directories.
type Aliases map[string]string

// NewAliases returns aliases with "@" bound to the absolute form of
// sourceDir.
func NewAliases(sourceDir string) (Aliases, error) {
	abs, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("resolve source dir %s: %w", sourceDir, err)
	}
	return Aliases{SourceAlias: abs}, nil
}

// Resolve expands a leading alias in p ("@/templates" becomes
// "<source dir>/templates"). Paths without a known alias are returned
// cleaned but otherwise unchanged.
func (a Aliases) Resolve(p string) string {
	for alias, dir := range a {
		if p == alias {
			return dir
		}
		if rest, ok := strings.CutPrefix(p, alias+"/"); ok {
			return filepath.Join(dir, filepath.FromSlash(rest))
		}
	}
	return filepath.Clean(p)
}
