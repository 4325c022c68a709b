// Package pricing maps free-text service descriptions to labor-only price
// estimates via an ordered keyword decision table. The table is the single
// source of pricing truth: explainable, auditable, O(1) per item, and free of
// runtime dependencies. Same text in, same price out, always.
package pricing

import (
	"fmt"
	"strings"
)

// Estimate returns the labor-only price in cents for a service described by
// title and description. The lowered concatenation is tested against the
// category rules in priority order; the first matching category wins, then its
// first matching sub-rule (or the category default). Text matching no category
// gets DefaultPriceCents. Total and deterministic; never negative.
func Estimate(title, description string) int64 {
	text := strings.ToLower(title + " " + description)

	for _, rule := range priceRules {
		if !containsAny(text, rule.keywords) {
			continue
		}
		for _, sub := range rule.subRules {
			if containsAny(text, sub.keywords) {
				return sub.cents
			}
		}
		return rule.defaultCents
	}
	return DefaultPriceCents
}

// Category returns the name of the pricing category the text falls into, or
// empty when no category keyword matches.
func Category(title, description string) string {
	text := strings.ToLower(title + " " + description)
	for _, rule := range priceRules {
		if containsAny(text, rule.keywords) {
			return rule.name
		}
	}
	return ""
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// FormatUSD renders cents as a dollar string, e.g. 2500000 -> "$25,000.00".
// This is the only place cents are converted for display; the engine carries
// integer cents end-to-end.
func FormatUSD(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	dollars := cents / 100
	rem := cents % 100

	s := fmt.Sprintf("%d", dollars)
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, b.String(), rem)
}
