package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Removal rates how safe it is to remove a package.
type Removal int

const (
	Recommended Removal = iota
	Advanced
	Expert
	Unsafe
	Unlisted
)

var removalNames = [...]string{"Recommended", "Advanced", "Expert", "Unsafe", "Unlisted"}

// Removals lists every tier in display order.
var Removals = []Removal{Recommended, Advanced, Expert, Unsafe, Unlisted}

func (r Removal) String() string {
	if r < 0 || int(r) >= len(removalNames) {
		return fmt.Sprintf("Removal(%d)", int(r))
	}
	return removalNames[r]
}

// ParseRemoval parses a tier name case-insensitively.
func ParseRemoval(s string) (Removal, error) {
	for i, name := range removalNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Removal(i), nil
		}
	}
	return Unlisted, fmt.Errorf("unknown removal tier %q", s)
}

func (r Removal) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Removal) UnmarshalText(text []byte) error {
	v, err := ParseRemoval(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Package is one catalog entry.
type Package struct {
	ID           string   `json:"id" yaml:"id"`
	List         string   `json:"list" yaml:"list"`
	Description  string   `json:"description" yaml:"description"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	NeededBy     []string `json:"neededBy,omitempty" yaml:"neededBy,omitempty"`
	Labels       []string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Removal      Removal  `json:"removal" yaml:"removal"`
}

// Catalog maps package ids to their entries.
type Catalog map[string]Package

// Len returns the number of entries. A nil catalog is empty.
func (c Catalog) Len() int {
	return len(c)
}

// Get returns the entry for id.
func (c Catalog) Get(id string) (Package, bool) {
	p, ok := c[id]
	return p, ok
}

// Sorted returns the entries ordered by id.
func (c Catalog) Sorted() []Package {
	out := make([]Package, 0, len(c))
	for _, p := range c {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lists returns the distinct vendor list names, sorted.
func (c Catalog) Lists() []string {
	seen := make(map[string]struct{})
	for _, p := range c {
		if p.List != "" {
			seen[p.List] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// FromPackages builds a Catalog, rejecting empty and duplicate ids.
func FromPackages(pkgs []Package) (Catalog, error) {
	c := make(Catalog, len(pkgs))
	for i, p := range pkgs {
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			return nil, fmt.Errorf("entry %d: missing id", i)
		}
		if _, dup := c[p.ID]; dup {
			return nil, fmt.Errorf("entry %d: duplicate id %q", i, p.ID)
		}
		if p.List == "" {
			p.List = "Misc"
		}
		c[p.ID] = p
	}
	return c, nil
}
