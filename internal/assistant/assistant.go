package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"storefront-assistant-service/internal/models"
	"storefront-assistant-service/internal/search"
)

// Intent is the coarse classification of a user utterance.
type Intent string

const (
	IntentGreeting    Intent = "greeting"
	IntentFindProduct Intent = "find_product"
	IntentHelp        Intent = "help"
	IntentUnknown     Intent = "unknown"
)

const maxResults = 5

// Canned response texts
const (
	greetingText = "Hello! I'm your AI Shopping Assistant. I can help you find products based on your budget, style, and preferences. Try saying 'Show me men's formal shirts under 2000'."
	helpText     = "I can help you discover products. You can ask for things like:\n- 'Red shirts for men'\n- 'Watches under 5000'\n- 'Formal shoes'\n- 'Summer collection'"
	noMatchText  = "I couldn't find any products matching those specific criteria. Try adjusting the price range or using different keywords."
	unknownText  = "I'm not sure I understood that. Could you try asking for a specific product type, like 'sunglasses' or 'shoes'?"
)

var greetingKeywords = []string{"hi", "hello", "hey", "start", "begin", "good morning", "good afternoon"}

var helpKeywords = []string{"help", "what can you do", "guide", "support"}

// Gender synonyms. Male is checked before female, so an utterance
// mentioning both resolves to male.
var (
	maleKeywords   = []string{"men", "man", "male", "boy", "guy", "gentleman"}
	femaleKeywords = []string{"women", "woman", "female", "girl", "lady"}
)

// categoryTerm maps a user-facing term to a catalog category. The table is
// an ordered slice, not a map: terms are checked in this exact order and
// the first term found in the message wins.
type categoryTerm struct {
	term     string
	category string
}

var categoryTerms = []categoryTerm{
	{"shirt", "clothing"},
	{"t-shirt", "clothing"},
	{"jeans", "clothing"},
	{"pant", "clothing"},
	{"trousers", "clothing"},
	{"suit", "clothing"},
	{"blazer", "clothing"},
	{"jacket", "clothing"},
	{"hoodie", "clothing"},
	{"sweater", "clothing"},
	{"dress", "clothing"},
	{"kurta", "clothing"},
	{"sherwani", "clothing"},
	{"shoe", "footwear"},
	{"boot", "footwear"},
	{"sandal", "footwear"},
	{"sneaker", "footwear"},
	{"loafer", "footwear"},
	{"watch", "watches"},
	{"sunglass", "sunglasses"},
	{"bag", "accessories"},
	{"wallet", "accessories"},
	{"belt", "accessories"},
	{"hat", "accessories"},
	{"cap", "accessories"},
	{"jewelry", "accessories"},
	{"necklace", "accessories"},
	{"ring", "accessories"},
	{"bracelet", "accessories"},
}

var (
	maxPriceRe    = regexp.MustCompile(`(?:under|below|less than|max)[\s₹]*(\d+)`)
	minPriceRe    = regexp.MustCompile(`(?:above|over|more than|min)[\s₹]*(\d+)`)
	fillerRe      = regexp.MustCompile(`show me|i want|looking for|find|search`)
	genderWordRe  = regexp.MustCompile(`men|women|male|female`)
	possessiveRe  = regexp.MustCompile(`'s`)
	productWordRe = regexp.MustCompile(`products?`)
)

// Router classifies free-text shopping messages, extracts filter slots and
// answers with matching products. It is stateless: classification is a
// pure function of the input string and no session memory is kept.
type Router struct {
	engine *search.Engine
	logger *logrus.Logger
}

func NewRouter(engine *search.Engine, logger *logrus.Logger) *Router {
	return &Router{engine: engine, logger: logger}
}

// ProcessMessage turns one utterance into a reply. Total function: absence
// of matches yields a canned text with an empty product list, never an
// error.
func (r *Router) ProcessMessage(message string) models.AssistantReply {
	lowerMsg := strings.ToLower(message)

	switch r.classify(lowerMsg) {
	case IntentGreeting:
		return models.AssistantReply{Text: greetingText, Products: []models.Product{}}
	case IntentHelp:
		return models.AssistantReply{Text: helpText, Products: []models.Product{}}
	case IntentFindProduct:
		return r.findProducts(lowerMsg)
	default:
		return models.AssistantReply{Text: unknownText, Products: []models.Product{}}
	}
}

// Classify returns the intent of a message without executing it. Exposed
// for analytics.
func (r *Router) Classify(message string) Intent {
	return r.classify(strings.ToLower(message))
}

// classify picks the intent. A greeting needs a greeting keyword AND a
// short message (under 4 tokens) so "hi, show me black hoodies" still
// routes to product search. Anything that is not a greeting or a help
// request is treated as a product search.
func (r *Router) classify(lowerMsg string) Intent {
	if containsAny(lowerMsg, greetingKeywords) && len(strings.Fields(lowerMsg)) < 4 {
		return IntentGreeting
	}
	if containsAny(lowerMsg, helpKeywords) {
		return IntentHelp
	}
	return IntentFindProduct
}

// ExtractCriteria pulls the structured slots and the residual free-text
// query out of a lowercased message.
func (r *Router) ExtractCriteria(lowerMsg string) models.FilterCriteria {
	criteria := models.FilterCriteria{}

	// Gender slot, first match wins, male checked before female
	if containsAny(lowerMsg, maleKeywords) {
		criteria.Gender = string(models.GenderMale)
	} else if containsAny(lowerMsg, femaleKeywords) {
		criteria.Gender = string(models.GenderFemale)
	}

	if m := maxPriceRe.FindStringSubmatch(lowerMsg); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			price := float64(v)
			criteria.MaxPrice = &price
		}
	}
	if m := minPriceRe.FindStringSubmatch(lowerMsg); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			price := float64(v)
			criteria.MinPrice = &price
		}
	}

	for _, ct := range categoryTerms {
		if strings.Contains(lowerMsg, ct.term) {
			criteria.Category = ct.category
			break
		}
	}

	// Residual query: strip filler phrases, gender words, the matched
	// price phrases, possessives and the literal word "product(s)". The
	// category term itself is deliberately kept so it still narrows
	// results by text match.
	clean := fillerRe.ReplaceAllString(lowerMsg, "")
	clean = genderWordRe.ReplaceAllString(clean, "")
	clean = maxPriceRe.ReplaceAllString(clean, "")
	clean = minPriceRe.ReplaceAllString(clean, "")
	clean = possessiveRe.ReplaceAllString(clean, "")
	clean = productWordRe.ReplaceAllString(clean, "")
	criteria.Query = strings.TrimSpace(clean)

	return criteria
}

func (r *Router) findProducts(lowerMsg string) models.AssistantReply {
	criteria := r.ExtractCriteria(lowerMsg)

	r.logger.WithFields(logrus.Fields{
		"query":    criteria.Query,
		"gender":   criteria.Gender,
		"category": criteria.Category,
		"minPrice": criteria.MinPrice,
		"maxPrice": criteria.MaxPrice,
	}).Debug("Extracted filters")

	products := r.engine.Search(criteria)
	if len(products) > 0 {
		return models.AssistantReply{
			Text:     fmt.Sprintf("I found %d products that match your request. Here are the top ones:", len(products)),
			Products: top(products, maxResults),
		}
	}

	// Relaxed retry: drop only the category slot, keep gender, price
	// bounds and the free-text query.
	if criteria.Category != "" {
		relaxed := criteria
		relaxed.Category = ""
		if fallback := r.engine.Search(relaxed); len(fallback) > 0 {
			return models.AssistantReply{
				Text:     "I didn't find exactly what you asked for in that category, but here are some similar items found by searching:",
				Products: top(fallback, maxResults),
			}
		}
	}

	return models.AssistantReply{Text: noMatchText, Products: []models.Product{}}
}

func top(products []models.Product, n int) []models.Product {
	if len(products) > n {
		return products[:n]
	}
	return products
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
