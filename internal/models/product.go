package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Gender identifies which top-level catalog bucket a product was read from.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

// JSON type for loosely structured payloads in responses
type JSON map[string]interface{}

// TagList holds compatibility tags that may appear in the source catalog as
// a single string, a list of strings, or not at all.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*t = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = TagList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = TagList(list)
		return nil
	}

	// Unknown shape, treat as absent
	*t = nil
	return nil
}

// ContainsFold reports whether any tag contains s, case-insensitively.
func (t TagList) ContainsFold(s string) bool {
	needle := strings.ToLower(s)
	for _, tag := range t {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// Price accepts both numeric and string-typed prices from the source
// catalog. Anything that does not parse as a non-negative number becomes 0.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*p = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		*p = 0
		return nil
	}
	*p = Price(v)
	return nil
}

// Product represents a single flattened catalog item
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Gender      Gender   `json:"gender"`
	ProductType string   `json:"productType"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand,omitempty"`
	Image       string   `json:"image,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	Reviews     int      `json:"reviews,omitempty"`
	Colors      []string `json:"colors,omitempty"`

	// Compatibility tags used by the recommendation filters. The source
	// data is inconsistent about their shape, TagList absorbs that.
	SkinToneCompatibility  TagList `json:"skinToneCompatibility,omitempty"`
	FaceShapeCompatibility TagList `json:"faceShapeCompatibility,omitempty"`
}

// FilterCriteria narrows a catalog search. Price bounds are pointers so a
// legitimate zero bound is still treated as provided.
type FilterCriteria struct {
	Query    string   `json:"query,omitempty"`
	Gender   string   `json:"gender,omitempty"`
	Category string   `json:"category,omitempty"`
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
}

// Response types
type PaginationInfo struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}

type ProductResponse struct {
	Success bool     `json:"success"`
	Data    *Product `json:"data"`
	Message *string  `json:"message,omitempty"`
}

type ProductListResponse struct {
	Success    bool            `json:"success"`
	Data       []Product       `json:"data"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
}

type CategoryListResponse struct {
	Success bool     `json:"success"`
	Data    []string `json:"data"`
}

type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     Error  `json:"error"`
	Timestamp string `json:"timestamp,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Details *JSON  `json:"details,omitempty"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message *string     `json:"message,omitempty"`
}
