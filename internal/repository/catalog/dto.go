package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"

	domcat "github.com/renolab/quotient/internal/domain/catalog"
)

// itemToHash converts a domain Item to a map for HSET.
func itemToHash(item domcat.Item) (map[string]string, error) {
	featuresJSON, err := json.Marshal(item.Features)
	if err != nil {
		return nil, fmt.Errorf("marshal features: %w", err)
	}
	return map[string]string{
		"id":            item.ID,
		"title":         item.Title,
		"description":   item.Description,
		"features_json": string(featuresJSON),
		"active":        strconv.FormatBool(item.Active),
		"order":         strconv.Itoa(item.Order),
		"created_at":    strconv.FormatInt(item.CreatedAt, 10),
		"updated_at":    strconv.FormatInt(item.UpdatedAt, 10),
	}, nil
}

// itemFromHash hydrates a domain Item from an HGETALL result map. Store rows
// pass through the validating constructor: this is the ingestion boundary, and
// the engine only ever sees items that parsed cleanly.
func itemFromHash(m map[string]string) (domcat.Item, error) {
	var features []string
	if fj := m["features_json"]; fj != "" {
		if err := json.Unmarshal([]byte(fj), &features); err != nil {
			return domcat.Item{}, fmt.Errorf("unmarshal features: %w", err)
		}
	}

	active := m["active"] == "true"

	order := 0
	if s := m["order"]; s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil {
			return domcat.Item{}, fmt.Errorf("invalid order: %w", err)
		}
		order = parsed
	}

	item, err := domcat.New(m["id"], m["title"], m["description"], features, active, order)
	if err != nil {
		return domcat.Item{}, err
	}

	if s := m["created_at"]; s != "" {
		if parsed, err := strconv.ParseInt(s, 10, 64); err == nil {
			item.CreatedAt = parsed
		}
	}
	if s := m["updated_at"]; s != "" {
		if parsed, err := strconv.ParseInt(s, 10, 64); err == nil {
			item.UpdatedAt = parsed
		}
	}
	return item, nil
}
