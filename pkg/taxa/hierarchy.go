package taxa

import (
	"sort"
	"strings"
)

// GenusAnchor returns the concept that anchors a taxon in the
// hierarchy. Genus, unknown, and functional group concepts anchor to
// themselves. Anything below genus rank anchors to the genus concept
// derived from the first word of the canonical name form; when the
// name does not parse, the first whitespace token serves instead.
// A missing genus in the store is a hard error, never a silent skip.
func (s *Store) GenusAnchor(
	c *Concept,
	canonical func(string) string,
) (*Concept, error) {
	switch c.Level {
	case LevelGenus, LevelUnknown, LevelFunctionalGroup:
		return c, nil
	}

	name := ""
	if canonical != nil {
		name = canonical(c.Name)
	}
	if name == "" {
		name = c.Name
	}
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return nil, OrphanGenusError(c.Name, "")
	}
	genus := fields[0]

	gc, ok := s.byName[genus]
	if !ok {
		return nil, OrphanGenusError(c.Name, genus)
	}

	// Anchor through the accepted concept of the genus, so synonym
	// genera classify under their accepted name.
	accepted, ok := s.byCode[gc.AcceptedCode]
	if !ok {
		return nil, OrphanGenusError(c.Name, genus)
	}
	return accepted, nil
}

// Hierarchy derives the genus-to-family classification table from the
// accepted concepts of the store, in genus code order.
func (s *Store) Hierarchy(
	canonical func(string) string,
) ([]HierarchyEntry, error) {
	seen := make(map[string]bool)
	var res []HierarchyEntry

	for _, c := range s.all {
		if !c.IsAccepted() {
			continue
		}
		anchor, err := s.GenusAnchor(c, canonical)
		if err != nil {
			return nil, err
		}
		if seen[anchor.Code] {
			continue
		}
		seen[anchor.Code] = true
		res = append(res, HierarchyEntry{
			GenusCode: anchor.Code,
			Family:    anchor.Family,
			Category:  anchor.Category,
		})
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].GenusCode < res[j].GenusCode
	})
	return res, nil
}
