package chi

import (
	"github.com/renolab/quotient/internal/domain/bundle"
	"github.com/renolab/quotient/internal/domain/catalog"
	"github.com/renolab/quotient/internal/domain/pricing"
	discoveryuc "github.com/renolab/quotient/internal/usecase/discovery"
	healthuc "github.com/renolab/quotient/internal/usecase/health"
)

// serviceDTO is the wire shape of a priced catalog service. Prices travel as
// integer cents; the formatted string is a display convenience.
type serviceDTO struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Features            []string `json:"features"`
	Order               int      `json:"order"`
	EstimatedPriceCents int64    `json:"estimated_price_cents"`
	EstimatedPrice      string   `json:"estimated_price"`
}

type servicesResponse struct {
	Services []serviceDTO `json:"services"`
}

type scoredResultDTO struct {
	Service serviceDTO `json:"service"`
	Score   float64    `json:"score"`
}

type searchResponse struct {
	Results []scoredResultDTO `json:"results"`
}

type packagesResponse struct {
	Packages []bundle.Package `json:"packages"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func serviceFromDomain(p discoveryuc.PricedItem) serviceDTO {
	return pricedService(p.Item, p.EstimatedPriceCents)
}

func pricedService(item catalog.Item, cents int64) serviceDTO {
	return serviceDTO{
		ID:                  item.ID,
		Title:               item.Title,
		Description:         item.Description,
		Features:            item.Features,
		Order:               item.Order,
		EstimatedPriceCents: cents,
		EstimatedPrice:      pricing.FormatUSD(cents),
	}
}

func searchResponseFromDomain(results []catalog.ScoredItem) searchResponse {
	out := make([]scoredResultDTO, len(results))
	for i, r := range results {
		out[i] = scoredResultDTO{
			Service: pricedService(r.Item, r.EstimatedPriceCents),
			Score:   r.Score,
		}
	}
	return searchResponse{Results: out}
}

func packagesFromDomain(pkgs []bundle.Package) []bundle.Package {
	if pkgs == nil {
		return []bundle.Package{}
	}
	return pkgs
}

func healthResponseFromDomain(report healthuc.Report) healthResponse {
	checks := make(map[string]string, len(report.Checks))
	for name, result := range report.Checks {
		checks[name] = string(result)
	}
	return healthResponse{Status: string(report.Status), Checks: checks}
}
