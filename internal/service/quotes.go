package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/RoGogDBD/parcelrate/internal/models"
	"github.com/RoGogDBD/parcelrate/internal/pricing"
)

// Quote рассчитывает стоимость доставки по одному тарифу.
func (s *Service) Quote(ctx context.Context, tierID string, dims models.PackageDimensions) (models.Quote, error) {
	tier, err := s.GetTier(ctx, tierID)
	if err != nil {
		return models.Quote{}, err
	}
	q, err := pricing.Quote(dims, *tier)
	if err != nil {
		return models.Quote{}, err
	}
	total, _ := q.Total.Float64()
	s.metrics.QuoteComputed(ctx, tier.Name, total)
	return q, nil
}

// QuoteAll рассчитывает стоимость по всем тарифам, от дешевого к дорогому.
func (s *Service) QuoteAll(ctx context.Context, dims models.PackageDimensions) ([]models.Quote, error) {
	if err := pricing.ValidateDimensions(dims); err != nil {
		return nil, err
	}
	tiers, err := s.ListTiers(ctx)
	if err != nil {
		return nil, err
	}

	quotes := make([]models.Quote, 0, len(tiers))
	for _, tier := range tiers {
		q, err := pricing.Quote(dims, tier)
		if err != nil {
			return nil, fmt.Errorf("quote tier %s: %w", tier.ID, err)
		}
		quotes = append(quotes, q)
	}
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].Total.LessThan(quotes[j].Total)
	})
	return quotes, nil
}
