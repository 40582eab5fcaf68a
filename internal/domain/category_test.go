package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCategoryTables(t *testing.T) {
	require.NoError(t, ValidateCategoryTables())
}

func TestCanonicalSubcategory(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Cars", "cars"},
		{"car", "cars"},
		{"CARS", "cars"},
		{"Bicycles & Scooters", "bicycles_scooters"},
		{"TVs", "televisions"},
		{"flat", "apartments"},
	}
	for _, tc := range cases {
		key, ok := CanonicalSubcategory(tc.raw)
		assert.True(t, ok, "expected %q to resolve", tc.raw)
		assert.Equal(t, tc.want, key)
	}

	_, ok := CanonicalSubcategory("hoverboard")
	assert.False(t, ok)
}

func TestDatabaseCategory(t *testing.T) {
	assert.Equal(t, "Vehicle & Transportation", DatabaseCategory("transport"))
	assert.Equal(t, "Electronics", DatabaseCategory("electronics"))
	assert.Equal(t, "real", DatabaseCategory("real"))
	assert.Equal(t, "unknown", DatabaseCategory("unknown"))
}

func TestGroupBySubcategory(t *testing.T) {
	items := []Item{
		{Name: "Toyota Axio", Subcategory: "Cars"},
		{Name: "Mazda Demio", Subcategory: "cars"},
		{Name: "School Bus", Subcategory: "bus"},
		{Name: "Mystery Ride", Subcategory: "hoverboard"},
	}

	groups, unmatched := GroupBySubcategory(items, CategorySubcategories["transport"])

	assert.Len(t, groups["cars"], 2)
	assert.Len(t, groups["buses"], 1)
	assert.Equal(t, []string{"hoverboard"}, unmatched)
}

func TestGroupBySubcategory_KeyOutsideCategoryIsUnmatched(t *testing.T) {
	items := []Item{{Name: "Canon EOS R5", Subcategory: "Cameras"}}

	groups, unmatched := GroupBySubcategory(items, CategorySubcategories["transport"])

	assert.Empty(t, groups)
	assert.Equal(t, []string{"Cameras"}, unmatched)
}
