package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBeverages_Catalog(t *testing.T) {
	bs := DefaultBeverages()
	require.Len(t, bs, 6)

	names := make([]string, 0, len(bs))
	for _, b := range bs {
		names = append(names, b.Name)
		assert.True(t, IsReservedID(b.ID))
	}
	assert.Equal(t, []string{"Beer", "Guinness", "Wine", "Cidra", "Shots", "Cocktails"}, names)

	assert.Equal(t, []string{"20cl", "33cl", "Pint"}, bs[0].Variants)
	assert.Equal(t, []string{"Red", "White", "Rosé"}, bs[2].Variants)
	assert.Nil(t, bs[1].Variants)
}

func TestDefaultBeverages_CopyIsolation(t *testing.T) {
	a := DefaultBeverages()
	a[0].Name = "Lager"
	a[0].Variants[0] = "10cl"

	b := DefaultBeverages()
	assert.Equal(t, "Beer", b[0].Name)
	assert.Equal(t, "20cl", b[0].Variants[0])
}

func TestDefaultData(t *testing.T) {
	d := DefaultData()
	assert.Len(t, d.Beverages, 6)
	assert.NotNil(t, d.Logs)
	assert.Empty(t, d.Logs)
	assert.Equal(t, SchemaVersion, d.Version)
}
