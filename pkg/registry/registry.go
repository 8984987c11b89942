// Package registry assigns stable surrogate keys to controlled
// vocabulary terms and taxonomy constraint values.
//
// Keys are positions in an append-only list kept per domain. The first
// build of a domain sorts its terms alphabetically; later builds append
// new terms after the existing ones. A key, once assigned, never
// changes between releases, so downstream extracts stay comparable.
package registry

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// Registry holds per-domain ordered term lists. The surrogate key of a
// term is its 1-based position in the list.
type Registry struct {
	domains map[string][]string
}

// file is the YAML persistence form of the registry.
type file struct {
	Domains map[string][]string `yaml:"domains"`
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{domains: make(map[string][]string)}
}

// Parse reads a registry from its YAML form.
func Parse(data []byte) (*Registry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, ParseError(err)
	}
	res := New()
	if f.Domains != nil {
		res.domains = f.Domains
	}
	return res, nil
}

// Bytes serializes the registry to YAML.
func (r *Registry) Bytes() ([]byte, error) {
	data, err := yaml.Marshal(file{Domains: r.domains})
	if err != nil {
		return nil, SerializeError(err)
	}
	return data, nil
}

// ID returns the surrogate key of a term within a domain.
func (r *Registry) ID(domain, term string) (int, bool) {
	for i, t := range r.domains[domain] {
		if t == term {
			return i + 1, true
		}
	}
	return 0, false
}

// Term returns the term for a surrogate key within a domain.
func (r *Registry) Term(domain string, id int) (string, bool) {
	terms := r.domains[domain]
	if id < 1 || id > len(terms) {
		return "", false
	}
	return terms[id-1], true
}

// Terms returns the ordered term list of a domain. The slice is the
// registry's own; callers must not modify it.
func (r *Registry) Terms(domain string) []string {
	return r.domains[domain]
}

// Domains returns all domain names in alphabetical order.
func (r *Registry) Domains() []string {
	res := make([]string, 0, len(r.domains))
	for d := range r.domains {
		res = append(res, d)
	}
	sort.Strings(res)
	return res
}

// Ensure assigns keys to any terms not yet registered in a domain.
// A new domain gets its terms sorted alphabetically; an existing
// domain gets new terms appended after the current ones, themselves
// sorted. Existing keys are never reassigned.
func (r *Registry) Ensure(domain string, terms []string) {
	existing := make(map[string]bool, len(r.domains[domain]))
	for _, t := range r.domains[domain] {
		existing[t] = true
	}

	var fresh []string
	seen := make(map[string]bool)
	for _, t := range terms {
		if !existing[t] && !seen[t] {
			fresh = append(fresh, t)
			seen[t] = true
		}
	}
	sort.Strings(fresh)

	r.domains[domain] = append(r.domains[domain], fresh...)
}
