// README: Pricing service computes delivery fee quotes (base fare + distance add-on).
package pricing

import (
	"context"
	"errors"
	"math"
	"time"
)

// RouteEstimator supplies the driving distance and duration between two
// addresses. A nil estimator degrades quotes to the base fare only.
type RouteEstimator interface {
	EstimateRoute(ctx context.Context, origin, destination string) (distanceKm float64, duration time.Duration, err error)
}

type Service struct {
	rates  RateSource
	routes RouteEstimator
}

func NewService(rates RateSource, routes RouteEstimator) *Service {
	return &Service{rates: rates, routes: routes}
}

// Quote prices a delivery: the category base fare plus a per-km add-on for
// every started kilometre of the route. The returned split satisfies the
// booking creation invariant (Total = Base + Addons).
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (Quote, error) {
	rate := DefaultRate
	if s.rates != nil && req.ItemCategoryID != "" {
		r, err := s.rates.GetRate(ctx, req.ItemCategoryID)
		switch {
		case err == nil:
			rate = r
		case errors.Is(err, ErrNoRate):
			// keep the default
		default:
			return Quote{}, err
		}
	}

	q := Quote{
		Base:     rate.BaseFare,
		Currency: rate.Currency,
	}
	if s.routes != nil && req.PickupAddress != "" && req.DropoffAddress != "" {
		km, dur, err := s.routes.EstimateRoute(ctx, req.PickupAddress, req.DropoffAddress)
		if err != nil {
			return Quote{}, err
		}
		q.DistanceKm = km
		q.DurationMins = int(dur / time.Minute)
		q.Addons = int64(math.Ceil(km)) * rate.PerKm
	}
	q.Total = q.Base + q.Addons
	return q, nil
}
