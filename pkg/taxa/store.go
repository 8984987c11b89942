package taxa

import (
	"sort"
)

// Store is the taxon concept store built from the comprehensive
// checklist. Names are unique within the store; homonyms in the
// source rows are settled by status precedence at build time.
// Accepted pointers are flattened so every concept reaches its
// accepted concept in exactly one hop.
type Store struct {
	byCode map[string]*Concept
	byName map[string]*Concept
	all    []*Concept
}

// HierarchyEntry anchors a genus-level code to family and category.
type HierarchyEntry struct {
	GenusCode string
	Family    string
	Category  string
}

// Build constructs the store from checklist rows. The canonical
// function extracts the canonical form of a scientific name for genus
// derivation; pass nil to fall back on whitespace splitting.
//
// Build fails when code generation needs manual review, when a
// synonym chain does not terminate at an accepted concept, or when an
// accepted concept's genus is missing from the checklist.
func Build(
	rows []ChecklistRow,
	canonical func(string) string,
) (*Store, error) {
	cleaned := make([]ChecklistRow, len(rows))
	for i, row := range rows {
		cleaned[i] = cleanRow(row)
	}

	selected, err := selectHomonyms(cleaned)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(selected))
	for name := range selected {
		names = append(names, name)
	}
	codes := assignCodes(names)

	var reviewNames []string
	for name, code := range codes {
		if code == ManualReviewCode {
			reviewNames = append(reviewNames, name)
		}
	}
	if len(reviewNames) > 0 {
		sort.Strings(reviewNames)
		return nil, DuplicateCodeError(reviewNames)
	}

	s := &Store{
		byCode: make(map[string]*Concept, len(selected)),
		byName: make(map[string]*Concept, len(selected)),
	}

	acceptedName := make(map[*Concept]string, len(selected))
	for name, row := range selected {
		c := &Concept{
			Code:      codes[name],
			Name:      name,
			Author:    row.Author,
			Status:    row.Status,
			Level:     row.Level,
			Habit:     row.Habit,
			Family:    row.Family,
			Category:  row.Category,
			Source:    row.Source,
			Link:      row.Link,
			Native:    row.Native,
			NonNative: row.NonNative,
		}
		s.byCode[c.Code] = c
		s.byName[c.Name] = c
		s.all = append(s.all, c)
		acceptedName[c] = row.AcceptedName
	}
	sort.Slice(s.all, func(i, j int) bool {
		return s.all[i].Name < s.all[j].Name
	})

	if err := s.flatten(acceptedName); err != nil {
		return nil, err
	}
	if err := s.checkHierarchy(canonical); err != nil {
		return nil, err
	}

	return s, nil
}

// FromConcepts reconstructs a store from concepts that already carry
// codes and flattened accepted pointers, as read back from the
// database. No invariant checks run; the build that wrote the rows
// already enforced them.
func FromConcepts(concepts []*Concept) *Store {
	s := &Store{
		byCode: make(map[string]*Concept, len(concepts)),
		byName: make(map[string]*Concept, len(concepts)),
	}
	for _, c := range concepts {
		s.byCode[c.Code] = c
		s.byName[c.Name] = c
		s.all = append(s.all, c)
	}
	sort.Slice(s.all, func(i, j int) bool {
		return s.all[i].Name < s.all[j].Name
	})
	return s
}

// cleanRow normalizes whitespace in every string field of a row.
func cleanRow(row ChecklistRow) ChecklistRow {
	row.Name = NormalizeName(row.Name)
	row.AcceptedName = NormalizeName(row.AcceptedName)
	row.Author = CleanString(row.Author)
	row.Status = CleanString(row.Status)
	row.Level = CleanString(row.Level)
	row.Habit = CleanString(row.Habit)
	row.Family = CleanString(row.Family)
	row.Category = CleanString(row.Category)
	row.Source = CleanString(row.Source)
	row.Link = CleanString(row.Link)
	return row
}

// selectHomonyms keeps one row per name. When a name appears more than
// once, the row with the strongest status wins; ties settle on the
// lexically smaller author string.
func selectHomonyms(
	rows []ChecklistRow,
) (map[string]ChecklistRow, error) {
	selected := make(map[string]ChecklistRow, len(rows))
	for _, row := range rows {
		if row.Name == "" {
			return nil, ChecklistFormatError("row with empty taxon name")
		}
		prev, ok := selected[row.Name]
		if !ok {
			selected[row.Name] = row
			continue
		}
		if statusRank(row.Status) < statusRank(prev.Status) ||
			(statusRank(row.Status) == statusRank(prev.Status) &&
				row.Author < prev.Author) {
			selected[row.Name] = row
		}
	}
	return selected, nil
}

// flatten replaces accepted name pointers with one-hop accepted
// codes, following synonym chains to their terminal accepted concept.
func (s *Store) flatten(acceptedName map[*Concept]string) error {
	for _, c := range s.all {
		terminal, err := s.terminalAccepted(c, acceptedName)
		if err != nil {
			return err
		}
		c.AcceptedCode = terminal.Code
	}
	return nil
}

// terminalAccepted walks the accepted chain of a concept until it
// reaches a concept that points at itself. Missing targets and cycles
// are build errors.
func (s *Store) terminalAccepted(
	c *Concept,
	acceptedName map[*Concept]string,
) (*Concept, error) {
	visited := map[*Concept]bool{}
	cur := c
	for {
		if visited[cur] {
			return nil, SynonymChainError(c.Name, cur.Name)
		}
		visited[cur] = true

		target := acceptedName[cur]
		if target == "" || target == cur.Name {
			return cur, nil
		}
		next, ok := s.byName[target]
		if !ok {
			return nil, SynonymChainError(c.Name, target)
		}
		cur = next
	}
}

// checkHierarchy verifies that every accepted concept anchors to a
// genus present in the store.
func (s *Store) checkHierarchy(canonical func(string) string) error {
	for _, c := range s.all {
		if !c.IsAccepted() {
			continue
		}
		if _, err := s.GenusAnchor(c, canonical); err != nil {
			return err
		}
	}
	return nil
}

// ByCode returns the concept with the given short code.
func (s *Store) ByCode(code string) (*Concept, bool) {
	c, ok := s.byCode[code]
	return c, ok
}

// ByName returns the concept with the given normalized name.
func (s *Store) ByName(name string) (*Concept, bool) {
	c, ok := s.byName[name]
	return c, ok
}

// All returns every concept in name order.
func (s *Store) All() []*Concept {
	return s.all
}

// Accepted returns accepted concepts in name order.
func (s *Store) Accepted() []*Concept {
	var res []*Concept
	for _, c := range s.all {
		if c.IsAccepted() {
			res = append(res, c)
		}
	}
	return res
}

// Len returns the number of concepts in the store.
func (s *Store) Len() int {
	return len(s.all)
}
