package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"storefront-assistant-service/internal/models"
)

//go:embed catalog.json
var catalogData []byte

// genderOrder fixes the bucket iteration order so flattening is
// deterministic across runs.
var genderOrder = []models.Gender{models.GenderMale, models.GenderFemale, models.GenderUnisex}

// rawItem mirrors a catalog entry as authored in the source data. Prices
// and compatibility tags are loosely typed there, the model types absorb
// the coercion.
type rawItem struct {
	ID                     string         `json:"id"`
	Name                   string         `json:"name"`
	Description            string         `json:"description"`
	Price                  models.Price   `json:"price"`
	Category               string         `json:"category"`
	Brand                  string         `json:"brand"`
	Image                  string         `json:"image"`
	Rating                 float64        `json:"rating"`
	Reviews                int            `json:"reviews"`
	Colors                 []string       `json:"colors"`
	SkinToneCompatibility  models.TagList `json:"skinToneCompatibility"`
	FaceShapeCompatibility models.TagList `json:"faceShapeCompatibility"`
}

// group is one product-type entry of a gender bucket, kept in the order it
// was authored in the source file.
type group struct {
	productType string
	items       json.RawMessage
}

// Service owns the static product catalog. The nested source structure is
// flattened lazily on first access and the result is memoized for the
// process lifetime; callers must treat the returned slice as read-only.
type Service struct {
	source map[string][]group

	once      sync.Once
	flattened []models.Product
}

// New builds a catalog service from the embedded catalog data.
func New() *Service {
	svc, err := newFromBytes(catalogData)
	if err != nil {
		// The embedded catalog is validated by tests; an unparseable
		// catalog degrades to an empty one rather than failing startup.
		return &Service{source: map[string][]group{}}
	}
	return svc
}

// NewFromFile builds a catalog service from an operator-supplied JSON file.
func NewFromFile(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	svc, err := newFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return svc, nil
}

func newFromBytes(data []byte) (*Service, error) {
	var buckets map[string]json.RawMessage
	if err := json.Unmarshal(data, &buckets); err != nil {
		return nil, err
	}

	source := make(map[string][]group, len(buckets))
	for gender, raw := range buckets {
		groups, err := parseGroups(raw)
		if err != nil {
			// Non-object bucket, treat as empty
			continue
		}
		source[gender] = groups
	}
	return &Service{source: source}, nil
}

// parseGroups walks a gender bucket with a token decoder so the
// product-type groups come out in the order they were authored; a plain
// map unmarshal would lose that order.
func parseGroups(raw json.RawMessage) ([]group, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("gender bucket is not an object")
	}

	var groups []group
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected group key %v", keyTok)
		}

		var items json.RawMessage
		if err := dec.Decode(&items); err != nil {
			return nil, err
		}
		groups = append(groups, group{productType: key, items: items})
	}
	return groups, nil
}

// AllProducts returns the flattened catalog. The first call computes the
// flattening; later calls return the same cached slice. Ordering mirrors
// the source file: gender buckets in male, female, unisex order,
// product-type groups and their items in authored order, no sorting.
func (s *Service) AllProducts() []models.Product {
	s.once.Do(func() {
		s.flattened = s.flatten()
	})
	return s.flattened
}

func (s *Service) flatten() []models.Product {
	var flattened []models.Product

	for _, gender := range genderOrder {
		for _, grp := range s.source[string(gender)] {
			var items []rawItem
			if err := json.Unmarshal(grp.items, &items); err != nil {
				// Non-array group, treat as empty
				continue
			}

			for _, item := range items {
				category := item.Category
				if category == "" {
					category = grp.productType
				}

				flattened = append(flattened, models.Product{
					ID:                     item.ID,
					Name:                   item.Name,
					Description:            item.Description,
					Price:                  float64(item.Price),
					Gender:                 gender,
					ProductType:            grp.productType,
					Category:               category,
					Brand:                  item.Brand,
					Image:                  item.Image,
					Rating:                 item.Rating,
					Reviews:                item.Reviews,
					Colors:                 item.Colors,
					SkinToneCompatibility:  item.SkinToneCompatibility,
					FaceShapeCompatibility: item.FaceShapeCompatibility,
				})
			}
		}
	}

	return flattened
}

// ProductByID returns the first product with the given id, or nil. IDs are
// treated as opaque keys; the source data does not guarantee uniqueness.
func (s *Service) ProductByID(id string) *models.Product {
	products := s.AllProducts()
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

// Categories returns the distinct category values of the flattened
// catalog, in first-seen order.
func (s *Service) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range s.AllProducts() {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// ProductsByType returns the products stored under a grouping key (e.g.
// "sunglasses"), preserving flattened order.
func (s *Service) ProductsByType(productType string) []models.Product {
	var out []models.Product
	for _, p := range s.AllProducts() {
		if p.ProductType == productType {
			out = append(out, p)
		}
	}
	return out
}
