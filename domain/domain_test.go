package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidVariantTypes_ContainsAll(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{VariantTypeSize, VariantTypeColor, VariantTypeMaterial},
		ValidVariantTypes(),
	)
}

func TestIsValidVariantType(t *testing.T) {
	for _, vt := range ValidVariantTypes() {
		assert.True(t, IsValidVariantType(vt), "expected %q to be valid", vt)
	}
	assert.False(t, IsValidVariantType("finish"))
	assert.False(t, IsValidVariantType(""))
	assert.False(t, IsValidVariantType("SIZE"))
}

func TestIsValidTheme(t *testing.T) {
	for _, th := range ValidThemes() {
		assert.True(t, IsValidTheme(th), "expected %q to be valid", th)
	}
	assert.False(t, IsValidTheme("midnight"))
	assert.False(t, IsValidTheme(""))
}

func TestProduct_WireFormat(t *testing.T) {
	raw := `{
		"id": "p-1",
		"name": "Premium Wireless Headphones",
		"description": "Noise cancelling over-ears",
		"price": 299.99,
		"originalPrice": 399.99,
		"images": ["https://cdn.example.com/p-1.jpg"],
		"category": "Electronics",
		"subcategory": "Audio",
		"brand": "AudioTech",
		"rating": 4.8,
		"reviewCount": 1247,
		"stock": 45,
		"features": ["ANC", "30hr battery"],
		"tags": ["audio"],
		"isFeatured": true,
		"isNew": false,
		"createdAt": "2024-01-15T10:00:00Z",
		"updatedAt": "2024-01-20T14:30:00Z"
	}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, "p-1", p.ID)
	require.NotNil(t, p.OriginalPrice)
	assert.InDelta(t, 399.99, *p.OriginalPrice, 1e-9)
	assert.Equal(t, "Audio", p.Subcategory)
	assert.True(t, p.IsFeatured)
	assert.Nil(t, p.Variants)
	assert.Nil(t, p.Specifications)
}

func TestProduct_OmitsOptionalFields(t *testing.T) {
	out, err := json.Marshal(Product{ID: "p-2", Name: "Basic"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "originalPrice")
	assert.NotContains(t, string(out), "subcategory")
	assert.NotContains(t, string(out), "variants")
}
