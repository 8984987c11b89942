package datasets_test

import (
	"testing"

	"github.com/accs-uaa/avdb/pkg/datasets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goodYAML = []byte(`
datasets:
  - id: 25
    code: 25_nps_swan_2024
    parent: /data/plots/25_nps_swan_2024
    generation: 3
    overrides: /data/plots/25_nps_swan_2024/overrides.yaml
  - id: 3
    code: 03_fia_interior_2018
    parent: /data/plots/03_fia_interior_2018.sqlite
    generation: 1
`)

func TestParse(t *testing.T) {
	assert := assert.New(t)
	l, err := datasets.Parse(goodYAML)
	require.Nil(t, err)

	// Sorted by ID regardless of file order.
	assert.Equal(2, len(l.Datasets))
	assert.Equal(3, l.Datasets[0].ID)
	assert.Equal(25, l.Datasets[1].ID)

	d, ok := l.ByID(25)
	assert.True(ok)
	assert.Equal("25_nps_swan_2024", d.Code)
	assert.Equal(3, d.Generation)
	assert.NotEmpty(d.Overrides)

	_, ok = l.ByID(99)
	assert.False(ok)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		msg  string
		yaml string
	}{
		{"not yaml", "datasets: [}"},
		{
			"duplicate id",
			`
datasets:
  - {id: 1, code: a, parent: /x, generation: 1}
  - {id: 1, code: b, parent: /y, generation: 1}
`,
		},
		{
			"duplicate code",
			`
datasets:
  - {id: 1, code: a, parent: /x, generation: 1}
  - {id: 2, code: a, parent: /y, generation: 1}
`,
		},
		{
			"bad generation",
			`
datasets:
  - {id: 1, code: a, parent: /x, generation: 4}
`,
		},
		{
			"missing parent",
			`
datasets:
  - {id: 1, code: a, generation: 1}
`,
		},
		{
			"zero id",
			`
datasets:
  - {id: 0, code: a, parent: /x, generation: 1}
`,
		},
	}

	for _, v := range tests {
		_, err := datasets.Parse([]byte(v.yaml))
		assert.NotNil(t, err, v.msg)
	}
}

func TestSelect(t *testing.T) {
	assert := assert.New(t)
	l, err := datasets.Parse(goodYAML)
	require.Nil(t, err)

	// Empty selection means everything.
	all, err := l.Select(nil)
	assert.Nil(err)
	assert.Equal(2, len(all))

	// Explicit IDs come back in ID order.
	some, err := l.Select([]int{25, 3})
	assert.Nil(err)
	assert.Equal(3, some[0].ID)
	assert.Equal(25, some[1].ID)

	_, err = l.Select([]int{7})
	assert.NotNil(err)
}
