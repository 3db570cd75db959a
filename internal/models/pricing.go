package models

// PriceComparison is one row in a simulated cross-platform price check
type PriceComparison struct {
	Platform               string   `json:"platform"`
	PlatformKey            string   `json:"platformKey"`
	Logo                   string   `json:"logo"`
	Price                  float64  `json:"price"`
	PriceFormatted         string   `json:"priceFormatted"`
	OriginalPrice          float64  `json:"originalPrice"`
	OriginalPriceFormatted string   `json:"originalPriceFormatted,omitempty"`
	Discount               int      `json:"discount"`
	Delivery               string   `json:"delivery"`
	DeliveryDays           int      `json:"deliveryDays"`
	Rating                 float64  `json:"rating"`
	Reviews                int      `json:"reviews"`
	InStock                bool     `json:"inStock"`
	IsOfficial             bool     `json:"isOfficial,omitempty"`
	IsSponsored            bool     `json:"isSponsored,omitempty"`
	URL                    string   `json:"url"`
	LastUpdated            string   `json:"lastUpdated"`
	TrustScore             int      `json:"trustScore"`
	Benefits               []string `json:"benefits,omitempty"`
}

type PriceComparisonResponse struct {
	Success bool              `json:"success"`
	Data    []PriceComparison `json:"data"`
	Cached  bool              `json:"cached,omitempty"`
}

// RecommendationRequest carries the style-analysis attributes used to pick
// compatible products. All fields are optional; missing attributes fall
// back to generic picks.
type RecommendationRequest struct {
	Gender    string `json:"gender,omitempty"`
	FaceShape string `json:"faceShape,omitempty"`
	SkinTone  string `json:"skinTone,omitempty"`
}

// RecommendationSet groups recommended products by catalog section
type RecommendationSet struct {
	Sunglasses  []Product `json:"sunglasses"`
	Clothing    []Product `json:"clothing"`
	Accessories []Product `json:"accessories"`
	Watches     []Product `json:"watches"`
	Footwear    []Product `json:"footwear"`
}

type RecommendationsResponse struct {
	Success bool               `json:"success"`
	Data    *RecommendationSet `json:"data"`
}
