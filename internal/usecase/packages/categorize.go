package packages

import (
	"strings"

	"github.com/renolab/quotient/internal/domain/catalog"
)

// bucket is one category of related services, in catalog order.
type bucket struct {
	name  string
	items []catalog.Item
}

// bucketDefs drive categorization, in output order. Membership is not
// exclusive: a "kitchen renovation" service lands in both kitchen and
// renovation. An item matching no keywords appears in no bucket but still
// participates in the Best Value bundle.
var bucketDefs = []struct {
	name     string
	keywords []string
}{
	{name: "kitchen", keywords: []string{"kitchen"}},
	{name: "bathroom", keywords: []string{"bathroom", "bath"}},
	{name: "outdoor", keywords: []string{"deck", "patio", "outdoor", "landscap", "fence"}},
	{name: "renovation", keywords: []string{"remodel", "renovation", "addition", "extension", "basement"}},
	{name: "maintenance", keywords: []string{"repair", "maintenance", "inspection", "cleaning", "tune-up"}},
}

// categorize partitions active items into keyword buckets over their full
// text (title, description, features), preserving catalog order within each
// bucket.
func categorize(items []catalog.Item) []bucket {
	buckets := make([]bucket, len(bucketDefs))
	for i, def := range bucketDefs {
		buckets[i].name = def.name
	}

	for _, item := range items {
		text := strings.ToLower(item.SearchText())
		for i, def := range bucketDefs {
			for _, kw := range def.keywords {
				if strings.Contains(text, kw) {
					buckets[i].items = append(buckets[i].items, item)
					break
				}
			}
		}
	}
	return buckets
}
