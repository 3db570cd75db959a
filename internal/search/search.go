package search

import (
	"strings"
	"unicode/utf8"

	"storefront-assistant-service/internal/catalog"
	"storefront-assistant-service/internal/models"
)

// minTokenLength filters out very short free-text tokens ("a", "in", "of")
// before matching.
const minTokenLength = 3

// Engine filters the flattened catalog by structured criteria. It is a
// pure, synchronous layer over the catalog service and never fails: an
// empty result is returned for "nothing matched".
type Engine struct {
	catalog *catalog.Service
}

func NewEngine(cat *catalog.Service) *Engine {
	return &Engine{catalog: cat}
}

// Search applies the criteria filters in sequence. Filters are independent
// and commutative; the order is for readability, not correctness. The
// returned slice preserves catalog order and is freshly allocated.
func (e *Engine) Search(criteria models.FilterCriteria) []models.Product {
	results := e.catalog.AllProducts()

	if criteria.Gender != "" {
		results = filterGender(results, criteria.Gender)
	}
	if criteria.Category != "" {
		results = filterCategory(results, criteria.Category)
	}
	if criteria.MinPrice != nil {
		results = filter(results, func(p models.Product) bool {
			return p.Price >= *criteria.MinPrice
		})
	}
	if criteria.MaxPrice != nil {
		results = filter(results, func(p models.Product) bool {
			return p.Price <= *criteria.MaxPrice
		})
	}
	if criteria.Query != "" {
		results = filterQuery(results, criteria.Query)
	}

	// Always hand back a fresh slice so callers cannot mutate the
	// memoized catalog through an unfiltered result.
	out := make([]models.Product, len(results))
	copy(out, results)
	return out
}

// filterGender applies the gender inclusion rules: a male or female
// request also includes unisex items, anything else matches exactly.
func filterGender(products []models.Product, gender string) []models.Product {
	g := models.Gender(strings.ToLower(gender))
	switch g {
	case models.GenderMale, models.GenderFemale:
		return filter(products, func(p models.Product) bool {
			return p.Gender == g || p.Gender == models.GenderUnisex
		})
	default:
		return filter(products, func(p models.Product) bool {
			return p.Gender == g
		})
	}
}

// filterCategory keeps items whose category or product type matches the
// requested category as a substring in either direction, so "watch"
// matches "watches" and "formal wear" matches "wear".
func filterCategory(products []models.Product, category string) []models.Product {
	cat := strings.ToLower(category)
	return filter(products, func(p models.Product) bool {
		return substringEither(strings.ToLower(p.Category), cat) ||
			substringEither(strings.ToLower(p.ProductType), cat)
	})
}

// filterQuery keeps items whose searchable text contains every token of
// length >= minTokenLength. AND semantics, not phrase matching.
func filterQuery(products []models.Product, query string) []models.Product {
	var terms []string
	for _, t := range strings.Fields(strings.ToLower(query)) {
		// Rune count, not byte length, so short non-ASCII tokens are
		// discarded too
		if utf8.RuneCountInString(t) >= minTokenLength {
			terms = append(terms, t)
		}
	}
	if len(terms) == 0 {
		return products
	}

	return filter(products, func(p models.Product) bool {
		text := searchableText(p)
		for _, term := range terms {
			if !strings.Contains(text, term) {
				return false
			}
		}
		return true
	})
}

// searchableText concatenates the fields free-text matching runs over.
func searchableText(p models.Product) string {
	return strings.ToLower(p.Name + " " + p.Description + " " + p.Category + " " + p.ProductType)
}

func substringEither(field, needle string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(field, needle) || strings.Contains(needle, field)
}

func filter(products []models.Product, keep func(models.Product) bool) []models.Product {
	var out []models.Product
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
