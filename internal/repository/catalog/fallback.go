package catalog

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/renolab/quotient/internal/domain"
	domcat "github.com/renolab/quotient/internal/domain/catalog"
)

// FallbackSource serves the static baseline catalog when the primary fetch
// fails. The engine itself never retries; substituting a baseline is this
// collaborator's job.
type FallbackSource struct {
	primary       Source
	fallback      Source
	fallbackTotal prometheus.Counter
	logger        *zap.Logger
}

// WithFallback wraps primary so that List/Get errors fall through to the
// baseline source. fallbackTotal counts substitutions and may be nil.
func WithFallback(primary, fallback Source, fallbackTotal prometheus.Counter, logger *zap.Logger) *FallbackSource {
	return &FallbackSource{
		primary:       primary,
		fallback:      fallback,
		fallbackTotal: fallbackTotal,
		logger:        logger,
	}
}

// List returns the primary catalog, or the baseline when the primary fails.
func (f *FallbackSource) List(ctx context.Context) ([]domcat.Item, error) {
	items, err := f.primary.List(ctx)
	if err != nil {
		f.substituted("list", err)
		return f.fallback.List(ctx)
	}
	return items, nil
}

// Get returns the service from the primary store, or from the baseline when
// the primary fails. A genuine not-found is passed through as-is: the
// baseline only substitutes for store failures.
func (f *FallbackSource) Get(ctx context.Context, id string) (domcat.Item, error) {
	item, err := f.primary.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			return domcat.Item{}, err
		}
		f.substituted("get", err)
		return f.fallback.Get(ctx, id)
	}
	return item, nil
}

func (f *FallbackSource) substituted(op string, err error) {
	if f.fallbackTotal != nil {
		f.fallbackTotal.Inc()
	}
	f.logger.Warn("Primary catalog fetch failed, serving static baseline",
		zap.String("op", op),
		zap.Error(err),
	)
}
