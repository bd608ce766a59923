package ctlcode

import (
	"sort"

	"github.com/pkg/errors"
)

var (
	ErrDuplicateCode = errors.New("duplicate control code")
	ErrUnknownName   = errors.New("unknown control code name")
)

// Named pairs a header symbol with its code.
type Named struct {
	Name string `yaml:"name"`
	Code Code   `yaml:"code"`
}

// Table is a read-only list of named codes published by one package.
type Table []Named

// Lookup returns the entry for code.
func (t Table) Lookup(code Code) (Named, bool) {
	for _, n := range t {
		if n.Code == code {
			return n, true
		}
	}
	return Named{}, false
}

func (t Table) ByName(name string) (Code, error) {
	for _, n := range t {
		if n.Name == name {
			return n.Code, nil
		}
	}
	return 0, errors.Wrap(ErrUnknownName, name)
}

// Validate checks that no two names share a code. Aliases that the headers
// define as the same operation must not be listed twice.
func (t Table) Validate() error {
	seen := make(map[Code]string, len(t))
	for _, n := range t {
		if prev, ok := seen[n.Code]; ok {
			return errors.Wrapf(ErrDuplicateCode, "%s and %s are both %s", prev, n.Name, n.Code)
		}
		seen[n.Code] = n.Name
	}
	return nil
}

// Merge concatenates tables, sorted by code.
func Merge(tables ...Table) Table {
	var out Table
	for _, t := range tables {
		out = append(out, t...)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
