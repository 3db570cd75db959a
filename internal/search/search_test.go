package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"storefront-assistant-service/internal/catalog"
	"storefront-assistant-service/internal/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(catalog.New())
}

func floatPtr(v float64) *float64 { return &v }

func TestSearchNoCriteriaReturnsAll(t *testing.T) {
	engine := newTestEngine(t)
	cat := catalog.New()

	results := engine.Search(models.FilterCriteria{})
	assert.Len(t, results, len(cat.AllProducts()))
}

func TestSearchReturnsCopy(t *testing.T) {
	cat := catalog.New()
	engine := NewEngine(cat)

	results := engine.Search(models.FilterCriteria{})
	require.NotEmpty(t, results)

	results[0].Name = "mutated"
	assert.NotEqual(t, "mutated", cat.AllProducts()[0].Name)
}

func TestGenderInclusionRules(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("male includes unisex", func(t *testing.T) {
		results := engine.Search(models.FilterCriteria{Gender: "male"})
		require.NotEmpty(t, results)
		for _, p := range results {
			assert.Contains(t, []models.Gender{models.GenderMale, models.GenderUnisex}, p.Gender)
		}
	})

	t.Run("female includes unisex", func(t *testing.T) {
		results := engine.Search(models.FilterCriteria{Gender: "female"})
		require.NotEmpty(t, results)
		for _, p := range results {
			assert.Contains(t, []models.Gender{models.GenderFemale, models.GenderUnisex}, p.Gender)
		}
	})

	t.Run("unisex matches exactly", func(t *testing.T) {
		results := engine.Search(models.FilterCriteria{Gender: "unisex"})
		require.NotEmpty(t, results)
		for _, p := range results {
			assert.Equal(t, models.GenderUnisex, p.Gender)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t,
			engine.Search(models.FilterCriteria{Gender: "male"}),
			engine.Search(models.FilterCriteria{Gender: "MALE"}))
	})
}

func TestCategorySubstringMatch(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("filter in field", func(t *testing.T) {
		results := engine.Search(models.FilterCriteria{Category: "watch"})
		require.NotEmpty(t, results)
		for _, p := range results {
			assert.Equal(t, "watches", p.ProductType)
		}
	})

	t.Run("field in filter", func(t *testing.T) {
		// "watches online" contains the field value "watches"
		results := engine.Search(models.FilterCriteria{Category: "watches online"})
		assert.NotEmpty(t, results)
	})

	t.Run("explicit item category matches", func(t *testing.T) {
		results := engine.Search(models.FilterCriteria{Category: "ethnic"})
		require.NotEmpty(t, results)
		for _, p := range results {
			assert.Equal(t, "ethnic wear", p.Category)
		}
	})
}

func TestPriceBounds(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("band", func(t *testing.T) {
		results := engine.Search(models.FilterCriteria{MinPrice: floatPtr(1000), MaxPrice: floatPtr(2000)})
		require.NotEmpty(t, results)
		for _, p := range results {
			assert.GreaterOrEqual(t, p.Price, 1000.0)
			assert.LessOrEqual(t, p.Price, 2000.0)
		}
	})

	t.Run("zero min price still applies and includes free items", func(t *testing.T) {
		results := engine.Search(models.FilterCriteria{MinPrice: floatPtr(0)})
		ids := make([]string, 0, len(results))
		for _, p := range results {
			ids = append(ids, p.ID)
		}
		assert.Contains(t, ids, "u-ac-002")
	})

	t.Run("zero max price keeps only free items", func(t *testing.T) {
		results := engine.Search(models.FilterCriteria{MaxPrice: floatPtr(0)})
		require.NotEmpty(t, results)
		for _, p := range results {
			assert.Equal(t, 0.0, p.Price)
		}
	})

	t.Run("impossible band is empty not nil", func(t *testing.T) {
		results := engine.Search(models.FilterCriteria{MinPrice: floatPtr(500000)})
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}

func TestFreeTextQuery(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("all tokens must match", func(t *testing.T) {
		results := engine.Search(models.FilterCriteria{Query: "blue oxford"})
		require.NotEmpty(t, results)
		for _, p := range results {
			text := searchableText(p)
			assert.Contains(t, text, "blue")
			assert.Contains(t, text, "oxford")
		}
	})

	t.Run("short tokens ignored", func(t *testing.T) {
		// Every token is too short, so the query filters nothing
		all := engine.Search(models.FilterCriteria{})
		results := engine.Search(models.FilterCriteria{Query: "a of in"})
		assert.Len(t, results, len(all))
	})

	t.Run("short non-ascii tokens ignored", func(t *testing.T) {
		// Two runes but six bytes; still below the token length cutoff
		all := engine.Search(models.FilterCriteria{})
		results := engine.Search(models.FilterCriteria{Query: "है"})
		assert.Len(t, results, len(all))
	})

	t.Run("no match yields empty", func(t *testing.T) {
		results := engine.Search(models.FilterCriteria{Query: "zeppelin"})
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}

func TestFiltersCombine(t *testing.T) {
	engine := newTestEngine(t)

	results := engine.Search(models.FilterCriteria{
		Gender:   "male",
		Category: "clothing",
		MaxPrice: floatPtr(1500),
		Query:    "blue shirts for",
	})

	require.NotEmpty(t, results)
	assert.Equal(t, "m-cl-001", results[0].ID)
}

func TestOrderPreserved(t *testing.T) {
	cat := catalog.New()
	engine := NewEngine(cat)

	all := cat.AllProducts()
	results := engine.Search(models.FilterCriteria{Gender: "male"})

	// Filtered results appear in the same relative order as the catalog
	pos := make(map[string]int)
	for i, p := range all {
		pos[p.ID] = i
	}
	for i := 1; i < len(results); i++ {
		assert.Less(t, pos[results[i-1].ID], pos[results[i].ID])
	}
}
