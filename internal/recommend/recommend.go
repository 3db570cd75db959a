package recommend

import (
	"strings"

	"github.com/sirupsen/logrus"
	"storefront-assistant-service/internal/catalog"
	"storefront-assistant-service/internal/models"
)

// perCategoryLimit caps each recommendation section.
const perCategoryLimit = 4

// Recommender picks catalog items compatible with a style analysis:
// sunglasses by face shape, everything else by skin tone. When the
// analysis attributes are missing it falls back to the first items of
// each section so the caller always has something to show.
type Recommender struct {
	catalog *catalog.Service
	logger  *logrus.Logger
}

func NewRecommender(cat *catalog.Service, logger *logrus.Logger) *Recommender {
	return &Recommender{catalog: cat, logger: logger}
}

// ForAnalysis builds a recommendation set for the given attributes.
// Gender narrows each section to that gender plus unisex; face shape and
// skin tone select by compatibility tags.
func (r *Recommender) ForAnalysis(req models.RecommendationRequest) *models.RecommendationSet {
	faceShape := strings.ToLower(req.FaceShape)
	skinTone := strings.ToLower(req.SkinTone)

	if faceShape == "" && skinTone == "" {
		return r.fallback(req.Gender)
	}

	set := &models.RecommendationSet{
		Sunglasses:  r.byFaceShape("sunglasses", req.Gender, faceShape),
		Clothing:    r.bySkinTone("clothing", req.Gender, skinTone),
		Accessories: r.bySkinTone("accessories", req.Gender, skinTone),
		Watches:     r.bySkinTone("watches", req.Gender, skinTone),
		Footwear:    r.bySkinTone("footwear", req.Gender, skinTone),
	}

	r.logger.WithFields(logrus.Fields{
		"faceShape":  faceShape,
		"skinTone":   skinTone,
		"sunglasses": len(set.Sunglasses),
		"clothing":   len(set.Clothing),
	}).Debug("Built recommendations")

	return set
}

func (r *Recommender) byFaceShape(productType, gender, faceShape string) []models.Product {
	if faceShape == "" {
		return r.firstOf(productType, gender)
	}

	picks := make([]models.Product, 0, perCategoryLimit)
	for _, p := range r.section(productType, gender) {
		if p.FaceShapeCompatibility.ContainsFold(faceShape) {
			picks = append(picks, p)
			if len(picks) == perCategoryLimit {
				break
			}
		}
	}
	return picks
}

func (r *Recommender) bySkinTone(productType, gender, skinTone string) []models.Product {
	if skinTone == "" {
		return r.firstOf(productType, gender)
	}

	picks := make([]models.Product, 0, perCategoryLimit)
	for _, p := range r.section(productType, gender) {
		if p.SkinToneCompatibility.ContainsFold(skinTone) {
			picks = append(picks, p)
			if len(picks) == perCategoryLimit {
				break
			}
		}
	}
	return picks
}

// fallback returns the leading items of every section when no analysis
// attributes are available.
func (r *Recommender) fallback(gender string) *models.RecommendationSet {
	return &models.RecommendationSet{
		Sunglasses:  r.firstOf("sunglasses", gender),
		Clothing:    r.firstOf("clothing", gender),
		Accessories: r.firstOf("accessories", gender),
		Watches:     r.firstOf("watches", gender),
		Footwear:    r.firstOf("footwear", gender),
	}
}

func (r *Recommender) firstOf(productType, gender string) []models.Product {
	section := r.section(productType, gender)
	if len(section) > perCategoryLimit {
		section = section[:perCategoryLimit]
	}
	out := make([]models.Product, len(section))
	copy(out, section)
	return out
}

// section returns a product-type slice optionally narrowed by gender
// (requested gender plus unisex).
func (r *Recommender) section(productType, gender string) []models.Product {
	products := r.catalog.ProductsByType(productType)
	if gender == "" {
		return products
	}

	g := models.Gender(strings.ToLower(gender))
	var out []models.Product
	for _, p := range products {
		if p.Gender == g || p.Gender == models.GenderUnisex {
			out = append(out, p)
		}
	}
	return out
}
