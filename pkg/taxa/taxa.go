// Package taxa builds the taxon concept store from the comprehensive
// checklist and resolves recorded plant names against it. This is a
// pure package - all I/O happens in internal packages.
package taxa

// Taxonomic statuses recognized in the checklist.
const (
	StatusAccepted   = "accepted"
	StatusSynonym    = "synonym"
	StatusHistorical = "historical"
	StatusUnresolved = "taxonomy unresolved"
)

// Taxonomic levels recognized in the checklist. Concepts at genus
// level and below anchor to a genus in the hierarchy; unknown and
// functional group concepts anchor to themselves.
const (
	LevelGenus           = "genus"
	LevelSpecies         = "species"
	LevelSubspecies      = "subspecies"
	LevelVariety         = "variety"
	LevelHybrid          = "hybrid"
	LevelUnknown         = "unknown"
	LevelFunctionalGroup = "functional group"
)

// ChecklistRow is one row of the comprehensive checklist source file.
type ChecklistRow struct {
	Name         string
	Author       string
	Status       string
	AcceptedName string
	Level        string
	Habit        string
	Family       string
	Category     string
	Source       string
	Link         string
	Native       bool
	NonNative    bool
}

// Concept is one taxon name with its generated short code and its
// one-hop pointer to the accepted concept.
type Concept struct {
	Code         string
	Name         string
	Author       string
	Status       string
	AcceptedCode string
	Level        string
	Habit        string
	Family       string
	Category     string
	Source       string
	Link         string
	Native       bool
	NonNative    bool
}

// IsAccepted reports whether the concept is its own accepted concept,
// i.e. its flattened accepted pointer terminates at itself. Status
// alone does not decide: a self-terminal concept of any status (for
// example "taxonomy unresolved") is accepted-eligible and gets its own
// accepted row, so every accepted pointer stays resolvable.
func (c *Concept) IsAccepted() bool {
	return c.AcceptedCode == c.Code
}

// statusRank orders statuses for homonym selection. Lower rank wins.
func statusRank(status string) int {
	switch status {
	case StatusAccepted:
		return 0
	case StatusHistorical:
		return 1
	case StatusUnresolved:
		return 2
	default:
		return 3
	}
}
