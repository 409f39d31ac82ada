package dialect

import (
	"sort"
	"strings"
	"sync"
)

var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect)
)

// Register adds a dialect to the global registry under its lowercased name.
// Called by dialect implementations in their init() functions and by the
// config loader.
func Register(d *Dialect) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[strings.ToLower(d.Name)] = d
}

// Lookup returns a registered dialect by name, case-insensitively.
func Lookup(name string) (*Dialect, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[strings.ToLower(name)]
	return d, ok
}

// Resolve returns the named dialect, falling back to the default table for
// an empty or unknown name. Callers that need to distinguish unknown names
// use Lookup.
func Resolve(name string) *Dialect {
	if name == "" {
		return ANSI
	}
	if d, ok := Lookup(name); ok {
		return d
	}
	return ANSI
}

// Default returns the base dialect.
func Default() *Dialect { return ANSI }

// List returns all registered dialect names, sorted.
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
