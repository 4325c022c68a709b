// Package textvec provides bag-of-words term-frequency vectors and cosine
// similarity over free text. Vectors are built fresh per call and never
// persisted; the catalog is small enough to re-vectorize on every request.
package textvec

import (
	"math"
	"strings"
)

// Vector is a sparse term-frequency vector: normalized term -> occurrence count.
type Vector map[string]int

// Tokenize lower-cases text, replaces every rune outside [a-z0-9\s] with a
// space, splits on whitespace, and drops tokens of length <= 1.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Vectorize counts occurrences per token.
func Vectorize(tokens []string) Vector {
	v := make(Vector, len(tokens))
	for _, t := range tokens {
		v[t]++
	}
	return v
}

// FromText is Vectorize(Tokenize(text)).
func FromText(text string) Vector {
	return Vectorize(Tokenize(text))
}

// Cosine returns dot(a,b) / (|a| * |b|). A zero magnitude on either side is
// replaced by 1 in the denominator, so vectors carrying no signal score 0
// instead of producing NaN. For non-negative term-frequency vectors the result
// is in [0, 1].
func Cosine(a, b Vector) float64 {
	var dot float64
	// Iterate over the smaller vector.
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	for term, n := range small {
		if m, ok := large[term]; ok {
			dot += float64(n) * float64(m)
		}
	}

	normA := magnitude(a)
	normB := magnitude(b)
	if normA == 0 {
		normA = 1
	}
	if normB == 0 {
		normB = 1
	}
	return dot / (normA * normB)
}

func magnitude(v Vector) float64 {
	var sum float64
	for _, n := range v {
		sum += float64(n) * float64(n)
	}
	return math.Sqrt(sum)
}
