package avdb_test

import (
	"testing"

	"github.com/accs-uaa/avdb/internal/ioload"
	"github.com/accs-uaa/avdb/internal/ioschema"
	"github.com/accs-uaa/avdb/internal/iotaxa"
	"github.com/accs-uaa/avdb/pkg/avdb"
	"github.com/stretchr/testify/assert"
)

// TestSchemaManagerContract ensures that the ioschema implementation
// satisfies the avdb.SchemaManager interface. The constructor return
// type is the compile-time check; the test will not build if the
// contract is broken.
func TestSchemaManagerContract(t *testing.T) {
	var sm avdb.SchemaManager = ioschema.NewManager(nil)
	assert.NotNil(t, sm,
		"ioschema should implement avdb.SchemaManager")
}

// TestTaxaBuilderContract ensures that the iotaxa implementation
// satisfies the avdb.TaxaBuilder interface.
func TestTaxaBuilderContract(t *testing.T) {
	var tb avdb.TaxaBuilder = iotaxa.NewBuilder(nil, nil)
	assert.NotNil(t, tb,
		"iotaxa should implement avdb.TaxaBuilder")
}

// TestLoaderContract ensures that the ioload implementation satisfies
// the avdb.Loader interface.
func TestLoaderContract(t *testing.T) {
	var l avdb.Loader = ioload.NewLoader(nil, nil)
	assert.NotNil(t, l,
		"ioload should implement avdb.Loader")
}
