package taxa_test

import (
	"testing"

	"github.com/accs-uaa/avdb/pkg/taxa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checklistFixture returns a small but structurally complete
// checklist: genera, species, an infraspecies, a synonym, and a
// two-hop synonym chain through a historical name.
func checklistFixture() []taxa.ChecklistRow {
	accepted := func(name, level, family, category string) taxa.ChecklistRow {
		return taxa.ChecklistRow{
			Name:         name,
			Status:       taxa.StatusAccepted,
			AcceptedName: name,
			Level:        level,
			Family:       family,
			Category:     category,
			Habit:        "forb",
			Source:       "FNA",
			Native:       true,
		}
	}

	return []taxa.ChecklistRow{
		accepted("Betula", taxa.LevelGenus, "Betulaceae", "eudicot"),
		accepted("Betula nana", taxa.LevelSpecies, "Betulaceae", "eudicot"),
		accepted("Betula nana ssp. exilis", taxa.LevelSubspecies,
			"Betulaceae", "eudicot"),
		accepted("Oxycoccus", taxa.LevelGenus, "Ericaceae", "eudicot"),
		accepted("Oxycoccus microcarpus", taxa.LevelSpecies,
			"Ericaceae", "eudicot"),
		accepted("Vaccinium", taxa.LevelGenus, "Ericaceae", "eudicot"),
		{
			Name:         "Vaccinium oxycoccos",
			Status:       taxa.StatusSynonym,
			AcceptedName: "Oxycoccus microcarpus",
			Level:        taxa.LevelSpecies,
			Family:       "Ericaceae",
			Category:     "eudicot",
		},
		{
			// Historical name pointing at the synonym; flattening
			// must reach the accepted concept in one hop.
			Name:         "Vaccinium microcarpum",
			Status:       taxa.StatusHistorical,
			AcceptedName: "Vaccinium oxycoccos",
			Level:        taxa.LevelSpecies,
			Family:       "Ericaceae",
			Category:     "eudicot",
		},
	}
}

func mustBuild(t *testing.T, rows []taxa.ChecklistRow) *taxa.Store {
	t.Helper()
	store, err := taxa.Build(rows, nil)
	require.Nil(t, err)
	return store
}

func TestCleanString(t *testing.T) {
	tests := []struct {
		msg, input, want string
	}{
		{"nbsp", "Betula nana", "Betula nana"},
		{"multi space", "Betula   nana", "Betula nana"},
		{"trim", "  Betula nana ", "Betula nana"},
		{"plain", "Betula nana", "Betula nana"},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, taxa.CleanString(v.input), v.msg)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		msg, input, want string
	}{
		{
			"subsp marker",
			"Betula nana subsp. exilis",
			"Betula nana ssp. exilis",
		},
		{
			"already normalized",
			"Betula nana ssp. exilis",
			"Betula nana ssp. exilis",
		},
		{
			"nbsp and marker",
			"Betula nana  subsp. exilis",
			"Betula nana ssp. exilis",
		},
	}

	for _, v := range tests {
		got := taxa.NormalizeName(v.input)
		assert.Equal(t, v.want, got, v.msg)
		// Idempotence.
		assert.Equal(t, v.want, taxa.NormalizeName(got), v.msg)
	}
}

func TestCodeGeneration(t *testing.T) {
	assert := assert.New(t)
	store := mustBuild(t, checklistFixture())

	tests := []struct {
		msg, name, code string
	}{
		{"genus 6 chars", "Betula", "betula"},
		{"genus under 6 chars", "Oxycoccus", "oxycoc"},
		{"binomial", "Betula nana", "betnan"},
		{"infraspecies", "Betula nana ssp. exilis", "betnansexi"},
	}

	for _, v := range tests {
		c, ok := store.ByName(v.name)
		assert.True(ok, v.msg)
		assert.Equal(v.code, c.Code, v.msg)
	}
}

func TestCodeCollisionCounter(t *testing.T) {
	assert := assert.New(t)
	rows := checklistFixture()
	rows = append(rows,
		taxa.ChecklistRow{
			Name: "Salix", Status: taxa.StatusAccepted,
			AcceptedName: "Salix", Level: taxa.LevelGenus,
			Family: "Salicaceae", Category: "eudicot",
		},
		taxa.ChecklistRow{
			Name: "Salvia", Status: taxa.StatusAccepted,
			AcceptedName: "Salvia", Level: taxa.LevelGenus,
			Family: "Lamiaceae", Category: "eudicot",
		},
		// Both generate "salpul"; every group member gets a counter
		// in name order.
		taxa.ChecklistRow{
			Name: "Salix pulchra", Status: taxa.StatusAccepted,
			AcceptedName: "Salix pulchra", Level: taxa.LevelSpecies,
			Family: "Salicaceae", Category: "eudicot",
		},
		taxa.ChecklistRow{
			Name: "Salvia pulchella", Status: taxa.StatusAccepted,
			AcceptedName: "Salvia pulchella", Level: taxa.LevelSpecies,
			Family: "Lamiaceae", Category: "eudicot",
		},
	)

	store := mustBuild(t, rows)

	c1, _ := store.ByName("Salix pulchra")
	c2, _ := store.ByName("Salvia pulchella")
	assert.Equal("salpul1", c1.Code)
	assert.Equal("salpul2", c2.Code)
}

func TestInfraspeciesCollisionFails(t *testing.T) {
	rows := checklistFixture()
	rows = append(rows, taxa.ChecklistRow{
		// Generates "betnansexi", same as Betula nana ssp. exilis.
		Name: "Betula nanella ssp. exigua", Status: taxa.StatusAccepted,
		AcceptedName: "Betula nanella ssp. exigua",
		Level:        taxa.LevelSubspecies,
		Family:       "Betulaceae", Category: "eudicot",
	})

	_, err := taxa.Build(rows, nil)
	assert.NotNil(t, err)
}

func TestSynonymFlattening(t *testing.T) {
	assert := assert.New(t)
	store := mustBuild(t, checklistFixture())

	accepted, ok := store.ByName("Oxycoccus microcarpus")
	require.True(t, ok)

	// Direct synonym.
	syn, _ := store.ByName("Vaccinium oxycoccos")
	assert.Equal(accepted.Code, syn.AcceptedCode)

	// Two-hop chain flattens to one hop.
	hist, _ := store.ByName("Vaccinium microcarpum")
	assert.Equal(accepted.Code, hist.AcceptedCode)

	// Accepted concepts point at themselves.
	assert.Equal(accepted.Code, accepted.AcceptedCode)
}

func TestSynonymChainCycle(t *testing.T) {
	rows := []taxa.ChecklistRow{
		{
			Name: "Aus", Status: taxa.StatusAccepted,
			AcceptedName: "Aus", Level: taxa.LevelGenus,
			Family: "Fake", Category: "eudicot",
		},
		{
			Name: "Aus bus", Status: taxa.StatusSynonym,
			AcceptedName: "Aus cus", Level: taxa.LevelSpecies,
		},
		{
			Name: "Aus cus", Status: taxa.StatusSynonym,
			AcceptedName: "Aus bus", Level: taxa.LevelSpecies,
		},
	}

	_, err := taxa.Build(rows, nil)
	assert.NotNil(t, err)
}

func TestSynonymTargetMissing(t *testing.T) {
	rows := []taxa.ChecklistRow{
		{
			Name: "Aus bus", Status: taxa.StatusSynonym,
			AcceptedName: "Aus missing", Level: taxa.LevelSpecies,
		},
	}

	_, err := taxa.Build(rows, nil)
	assert.NotNil(t, err)
}

func TestUnresolvedSelfTerminalIsAccepted(t *testing.T) {
	assert := assert.New(t)
	rows := checklistFixture()
	rows = append(rows,
		taxa.ChecklistRow{
			Name: "Eritrichium", Status: taxa.StatusAccepted,
			AcceptedName: "Eritrichium", Level: taxa.LevelGenus,
			Family: "Boraginaceae", Category: "eudicot",
		},
		taxa.ChecklistRow{
			// Self-pointing concept with unresolved taxonomy; it is
			// still its own accepted concept.
			Name:         "Eritrichium splendens",
			Status:       taxa.StatusUnresolved,
			AcceptedName: "Eritrichium splendens",
			Level:        taxa.LevelSpecies,
			Family:       "Boraginaceae", Category: "eudicot",
		},
		taxa.ChecklistRow{
			// A synonym pointing at the unresolved concept must still
			// find its accepted target.
			Name:         "Eritrichium aretioides",
			Status:       taxa.StatusSynonym,
			AcceptedName: "Eritrichium splendens",
			Level:        taxa.LevelSpecies,
			Family:       "Boraginaceae", Category: "eudicot",
		},
	)

	store := mustBuild(t, rows)

	c, ok := store.ByName("Eritrichium splendens")
	require.True(t, ok)
	assert.True(c.IsAccepted())

	found := false
	for _, a := range store.Accepted() {
		if a.Code == c.Code {
			found = true
		}
	}
	assert.True(found, "self-terminal concept gets an accepted row")

	syn, _ := store.ByName("Eritrichium aretioides")
	assert.Equal(c.Code, syn.AcceptedCode)
	assert.False(syn.IsAccepted())
}

func TestHomonymPrecedence(t *testing.T) {
	assert := assert.New(t)
	rows := checklistFixture()
	// The same name appears as a synonym in a second source; the
	// accepted row must win.
	rows = append(rows, taxa.ChecklistRow{
		Name: "Betula nana", Status: taxa.StatusSynonym,
		AcceptedName: "Betula", Level: taxa.LevelSpecies,
	})

	store := mustBuild(t, rows)
	c, _ := store.ByName("Betula nana")
	assert.Equal(taxa.StatusAccepted, c.Status)
	assert.Equal(c.Code, c.AcceptedCode)
}

func TestOrphanGenusFails(t *testing.T) {
	rows := []taxa.ChecklistRow{
		{
			Name: "Carex aquatilis", Status: taxa.StatusAccepted,
			AcceptedName: "Carex aquatilis", Level: taxa.LevelSpecies,
			Family: "Cyperaceae", Category: "monocot",
		},
	}

	_, err := taxa.Build(rows, nil)
	assert.NotNil(t, err)
}

func TestHierarchy(t *testing.T) {
	assert := assert.New(t)
	store := mustBuild(t, checklistFixture())

	entries, err := store.Hierarchy(nil)
	require.Nil(t, err)

	byGenus := make(map[string]taxa.HierarchyEntry)
	for _, e := range entries {
		byGenus[e.GenusCode] = e
	}

	betula, _ := store.ByName("Betula")
	e, ok := byGenus[betula.Code]
	assert.True(ok)
	assert.Equal("Betulaceae", e.Family)
	assert.Equal("eudicot", e.Category)

	// Species must not create their own hierarchy entries.
	betnan, _ := store.ByName("Betula nana")
	_, ok = byGenus[betnan.Code]
	assert.False(ok)
}

func TestHierarchySelfAnchors(t *testing.T) {
	assert := assert.New(t)
	rows := checklistFixture()
	rows = append(rows, taxa.ChecklistRow{
		Name: "crustose lichen", Status: taxa.StatusAccepted,
		AcceptedName: "crustose lichen",
		Level:        taxa.LevelFunctionalGroup,
		Family:       "none", Category: "lichen",
	})

	store := mustBuild(t, rows)
	c, _ := store.ByName("crustose lichen")

	anchor, err := store.GenusAnchor(c, nil)
	require.Nil(t, err)
	assert.Equal(c.Code, anchor.Code)
}

func TestResolver(t *testing.T) {
	assert := assert.New(t)
	store := mustBuild(t, checklistFixture())

	ov := &taxa.Overrides{
		Replace: map[string]string{
			"VAOX": "Oxycoccus microcarpus",
		},
		Exclude: []string{"Water"},
	}
	r := taxa.NewResolver(store, ov)

	accepted, _ := store.ByName("Oxycoccus microcarpus")

	tests := []struct {
		msg, name string
		outcome   taxa.Outcome
		code      string
	}{
		{
			"direct match", "Betula nana",
			taxa.Resolved, "betnan",
		},
		{
			"subsp normalization",
			"Betula nana subsp. exilis",
			taxa.Resolved, "betnansexi",
		},
		{
			"nbsp cleanup", "Betula nana",
			taxa.Resolved, "betnan",
		},
		{
			"override replace", "VAOX",
			taxa.Resolved, accepted.Code,
		},
		{
			"excluded entry", "Water",
			taxa.Excluded, "",
		},
		{
			"unknown name", "Pinus ponderosa",
			taxa.Unresolved, "",
		},
	}

	for _, v := range tests {
		res := r.Resolve(v.name)
		assert.Equal(v.outcome, res.Outcome, v.msg)
		assert.Equal(v.code, res.Code, v.msg)
	}
}

func TestResolverExactMatchBeatsOverride(t *testing.T) {
	assert := assert.New(t)
	store := mustBuild(t, checklistFixture())

	// A replace entry for a name that is already in the checklist
	// never fires; the exact match wins.
	ov := &taxa.Overrides{
		Replace: map[string]string{
			"Vaccinium oxycoccos": "Betula nana",
		},
	}
	r := taxa.NewResolver(store, ov)

	res := r.Resolve("Vaccinium oxycoccos")
	require.Equal(t, taxa.Resolved, res.Outcome)

	syn, _ := store.ByName("Vaccinium oxycoccos")
	accepted, _ := store.ByName("Oxycoccus microcarpus")
	assert.Equal(syn.Code, res.Code)
	assert.Equal(accepted.Code, res.AcceptedCode)
}

func TestResolverIdempotent(t *testing.T) {
	store := mustBuild(t, checklistFixture())
	r := taxa.NewResolver(store, nil)

	first := r.Resolve("Betula nana subsp. exilis")
	require.Equal(t, taxa.Resolved, first.Outcome)

	// Resolving the cleaned output again yields the same concept.
	second := r.Resolve(first.NameCleaned)
	assert.Equal(t, first.Code, second.Code)
}

func TestResolverWithoutOverrides(t *testing.T) {
	store := mustBuild(t, checklistFixture())
	r := taxa.NewResolver(store, nil)

	res := r.Resolve("Vaccinium oxycoccos")
	assert.Equal(t, taxa.Resolved, res.Outcome)

	// Without the override, the synonym resolves to its own concept,
	// and the accepted pointer carries the accepted code.
	syn, _ := store.ByName("Vaccinium oxycoccos")
	accepted, _ := store.ByName("Oxycoccus microcarpus")
	assert.Equal(t, syn.Code, res.Code)
	assert.Equal(t, accepted.Code, res.AcceptedCode)
}
