package sdk

// Service is a priced catalog service.
type Service struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Features            []string `json:"features"`
	Order               int      `json:"order"`
	EstimatedPriceCents int64    `json:"estimated_price_cents"`
	EstimatedPrice      string   `json:"estimated_price"`
}

// ScoredResult is one search hit.
type ScoredResult struct {
	Service Service `json:"service"`
	Score   float64 `json:"score"`
}

// SearchResponse is the GET /api/v1/services/search payload.
type SearchResponse struct {
	Results []ScoredResult `json:"results"`
}

// ServicesResponse is the GET /api/v1/services payload.
type ServicesResponse struct {
	Services []Service `json:"services"`
}

// IncludedService is one line of a package breakdown.
type IncludedService struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	EstimatedPriceCents int64  `json:"estimated_price_cents"`
}

// Package is a synthesized service bundle.
type Package struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	PriceCents        int64             `json:"price_cents"`
	Category          string            `json:"category"`
	IncludedServices  []IncludedService `json:"included_services"`
	EstimatedTimeline string            `json:"estimated_timeline"`
	Complexity        string            `json:"complexity"`
}

// PackagesResponse is the GET /api/v1/packages payload.
type PackagesResponse struct {
	Packages []Package `json:"packages"`
}

// HealthResponse is the GET /health payload.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
