package registry_test

import (
	"testing"

	"github.com/accs-uaa/avdb/pkg/registry"
	"github.com/stretchr/testify/assert"
)

func TestEnsureNewDomain(t *testing.T) {
	assert := assert.New(t)
	r := registry.New()

	// First build sorts alphabetically regardless of input order.
	r.Ensure("physiography", []string{"upland", "alpine", "lowland"})

	id, ok := r.ID("physiography", "alpine")
	assert.True(ok)
	assert.Equal(1, id)

	id, _ = r.ID("physiography", "lowland")
	assert.Equal(2, id)

	id, _ = r.ID("physiography", "upland")
	assert.Equal(3, id)

	_, ok = r.ID("physiography", "riparian")
	assert.False(ok)
}

func TestEnsureAppendOnly(t *testing.T) {
	assert := assert.New(t)
	r := registry.New()
	r.Ensure("moisture", []string{"mesic", "hydric", "xeric"})

	before := make(map[string]int)
	for _, term := range r.Terms("moisture") {
		id, _ := r.ID("moisture", term)
		before[term] = id
	}

	// A later release adds a term that sorts before existing ones.
	// Existing keys must not move.
	r.Ensure("moisture", []string{"aquatic", "mesic"})

	for term, id := range before {
		got, ok := r.ID("moisture", term)
		assert.True(ok, term)
		assert.Equal(id, got, term)
	}

	id, ok := r.ID("moisture", "aquatic")
	assert.True(ok)
	assert.Equal(4, id)
}

func TestEnsureDeduplicates(t *testing.T) {
	r := registry.New()
	r.Ensure("drainage", []string{"well drained", "well drained"})
	assert.Equal(t, 1, len(r.Terms("drainage")))
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)
	r := registry.New()
	r.Ensure("taxon_status", []string{"accepted", "synonym", "historical"})
	r.Ensure("taxon_level", []string{"species", "genus"})

	data, err := r.Bytes()
	assert.Nil(err)

	r2, err := registry.Parse(data)
	assert.Nil(err)

	for _, domain := range r.Domains() {
		for _, term := range r.Terms(domain) {
			want, _ := r.ID(domain, term)
			got, ok := r2.ID(domain, term)
			assert.True(ok)
			assert.Equal(want, got)
		}
	}
}

func TestParseBadYAML(t *testing.T) {
	_, err := registry.Parse([]byte("domains: [not: a: map"))
	assert.NotNil(t, err)
}

func TestTerm(t *testing.T) {
	assert := assert.New(t)
	r := registry.New()
	r.Ensure("cover_type", []string{"top cover", "absolute foliar cover"})

	term, ok := r.Term("cover_type", 1)
	assert.True(ok)
	assert.Equal("absolute foliar cover", term)

	_, ok = r.Term("cover_type", 3)
	assert.False(ok)

	_, ok = r.Term("missing", 1)
	assert.False(ok)
}
