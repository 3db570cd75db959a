package pricing

import (
	"fmt"
	"math"
	"strconv"
)

// FormatCurrency renders an amount as rupees with Indian digit grouping
// and no decimals, e.g. 125000 -> "₹1,25,000".
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "₹0"
	}

	n := int64(math.Round(amount))
	negative := n < 0
	if negative {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		// Last group of three, then groups of two
		grouped := s[len(s)-3:]
		rest := s[:len(s)-3]
		for len(rest) > 2 {
			grouped = rest[len(rest)-2:] + "," + grouped
			rest = rest[:len(rest)-2]
		}
		if rest != "" {
			grouped = rest + "," + grouped
		}
		s = grouped
	}

	if negative {
		return fmt.Sprintf("-₹%s", s)
	}
	return "₹" + s
}

// SavingsPercentage returns the rounded percentage saved when buying at
// discountedPrice instead of originalPrice, clamped to 0-100. Invalid
// inputs yield 0.
func SavingsPercentage(originalPrice, discountedPrice float64) int {
	if originalPrice <= 0 || discountedPrice <= 0 || originalPrice <= discountedPrice {
		return 0
	}
	percentage := (originalPrice - discountedPrice) / originalPrice * 100
	return int(math.Round(math.Max(0, math.Min(100, percentage))))
}
