package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"storefront-assistant-service/internal/models"
)

func TestAllProductsIdempotent(t *testing.T) {
	svc := New()

	first := svc.AllProducts()
	second := svc.AllProducts()

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)

	// The memoized slice is reference-stable, not a fresh copy
	assert.Equal(t, &first[0], &second[0])
}

func TestAllProductsInvariants(t *testing.T) {
	svc := New()

	validGenders := map[models.Gender]bool{
		models.GenderMale:   true,
		models.GenderFemale: true,
		models.GenderUnisex: true,
	}

	for _, p := range svc.AllProducts() {
		assert.GreaterOrEqual(t, p.Price, 0.0, "product %s", p.ID)
		assert.True(t, validGenders[p.Gender], "product %s has gender %q", p.ID, p.Gender)
		assert.NotEmpty(t, p.Category, "product %s", p.ID)
		assert.NotEmpty(t, p.ProductType, "product %s", p.ID)
	}
}

func TestFlattenOrdering(t *testing.T) {
	svc := New()
	products := svc.AllProducts()
	require.NotEmpty(t, products)

	// Gender buckets come out in male, female, unisex order
	rank := map[models.Gender]int{models.GenderMale: 0, models.GenderFemale: 1, models.GenderUnisex: 2}
	for i := 1; i < len(products); i++ {
		assert.LessOrEqual(t, rank[products[i-1].Gender], rank[products[i].Gender])
	}
}

func TestFlattenPreservesGroupOrder(t *testing.T) {
	svc := New()

	// Product-type groups come out exactly as authored per bucket, no
	// alphabetical sorting
	var maleTypes, unisexTypes []string
	for _, p := range svc.AllProducts() {
		switch p.Gender {
		case models.GenderMale:
			if len(maleTypes) == 0 || maleTypes[len(maleTypes)-1] != p.ProductType {
				maleTypes = append(maleTypes, p.ProductType)
			}
		case models.GenderUnisex:
			if len(unisexTypes) == 0 || unisexTypes[len(unisexTypes)-1] != p.ProductType {
				unisexTypes = append(unisexTypes, p.ProductType)
			}
		}
	}

	assert.Equal(t, []string{"clothing", "footwear", "watches", "sunglasses", "accessories"}, maleTypes)
	assert.Equal(t, []string{"sunglasses", "accessories", "watches"}, unisexTypes)
}

func TestFlattenGroupOrderNotAlphabetical(t *testing.T) {
	svc, err := newFromBytes([]byte(`{"male": {"watches": [{"id": "w"}], "accessories": [{"id": "a"}], "clothing": [{"id": "c"}]}}`))
	require.NoError(t, err)

	products := svc.AllProducts()
	require.Len(t, products, 3)
	assert.Equal(t, "w", products[0].ID)
	assert.Equal(t, "a", products[1].ID)
	assert.Equal(t, "c", products[2].ID)
}

func TestCategoryFallsBackToProductType(t *testing.T) {
	svc := New()

	byID := make(map[string]models.Product)
	for _, p := range svc.AllProducts() {
		byID[p.ID] = p
	}

	// No explicit category in the source, grouping key is used
	assert.Equal(t, "clothing", byID["m-cl-001"].Category)
	assert.Equal(t, "clothing", byID["m-cl-001"].ProductType)

	// Explicit category wins but the grouping key is preserved
	assert.Equal(t, "ethnic wear", byID["m-cl-004"].Category)
	assert.Equal(t, "clothing", byID["m-cl-004"].ProductType)
}

func TestPriceCoercion(t *testing.T) {
	svc := New()

	byID := make(map[string]models.Product)
	for _, p := range svc.AllProducts() {
		byID[p.ID] = p
	}

	// String-typed price in the source data
	assert.Equal(t, 2650.0, byID["m-cl-004"].Price)

	// Zero-priced promotional item stays at zero
	assert.Equal(t, 0.0, byID["u-ac-002"].Price)
}

func TestCompatibilityTagShapes(t *testing.T) {
	svc := New()

	byID := make(map[string]models.Product)
	for _, p := range svc.AllProducts() {
		byID[p.ID] = p
	}

	// List-shaped tags
	assert.Equal(t, models.TagList{"oval", "round", "heart"}, byID["m-sg-001"].FaceShapeCompatibility)

	// Single-string tag becomes a one-element list
	assert.Equal(t, models.TagList{"heart"}, byID["f-sg-002"].FaceShapeCompatibility)

	// Absent tags stay nil
	assert.Nil(t, byID["u-ac-002"].SkinToneCompatibility)
}

func TestMissingBucketsTreatedAsEmpty(t *testing.T) {
	svc, err := newFromBytes([]byte(`{"male": {"clothing": [{"id": "x", "name": "Tee", "price": 100}]}}`))
	require.NoError(t, err)

	products := svc.AllProducts()
	require.Len(t, products, 1)
	assert.Equal(t, models.GenderMale, products[0].Gender)
}

func TestNonArrayGroupSkipped(t *testing.T) {
	svc, err := newFromBytes([]byte(`{"male": {"clothing": {"not": "an array"}, "watches": [{"id": "w", "name": "Dial", "price": 5000}]}}`))
	require.NoError(t, err)

	products := svc.AllProducts()
	require.Len(t, products, 1)
	assert.Equal(t, "w", products[0].ID)
}

func TestProductByID(t *testing.T) {
	svc := New()

	p := svc.ProductByID("m-cl-001")
	require.NotNil(t, p)
	assert.Equal(t, "Blue Shirt", p.Name)

	assert.Nil(t, svc.ProductByID("does-not-exist"))
}

func TestCategories(t *testing.T) {
	svc := New()

	categories := svc.Categories()
	assert.Contains(t, categories, "clothing")
	assert.Contains(t, categories, "watches")
	assert.Contains(t, categories, "ethnic wear")
}
