// README: Quote computation tests with stub rates and routes.
package pricing

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubRates struct {
	rates map[string]Rate
	err   error
}

func (s *stubRates) GetRate(_ context.Context, id string) (Rate, error) {
	if s.err != nil {
		return Rate{}, s.err
	}
	r, ok := s.rates[id]
	if !ok {
		return Rate{}, ErrNoRate
	}
	return r, nil
}

type stubRoutes struct {
	km  float64
	dur time.Duration
	err error
}

func (s *stubRoutes) EstimateRoute(context.Context, string, string) (float64, time.Duration, error) {
	return s.km, s.dur, s.err
}

func TestQuote(t *testing.T) {
	rates := &stubRates{rates: map[string]Rate{
		"electronics": {ItemCategoryID: "electronics", BaseFare: 250000, PerKm: 30000, Currency: "NGN"},
	}}

	cases := []struct {
		name   string
		routes RouteEstimator
		req    QuoteRequest
		want   Quote
	}{
		{
			name: "default rate, no route estimator",
			req:  QuoteRequest{ItemCategoryID: "documents"},
			want: Quote{Base: 150000, Addons: 0, Total: 150000, Currency: "NGN"},
		},
		{
			name:   "category rate with distance add-on",
			routes: &stubRoutes{km: 7.2, dur: 25 * time.Minute},
			req: QuoteRequest{
				PickupAddress:  "12 Allen Avenue, Ikeja",
				DropoffAddress: "4 Marina Road, Lagos Island",
				ItemCategoryID: "electronics",
			},
			// 7.2 km bills as 8 started kilometres.
			want: Quote{Base: 250000, Addons: 240000, Total: 490000, Currency: "NGN", DistanceKm: 7.2, DurationMins: 25},
		},
		{
			name:   "whole-km distance is not rounded up",
			routes: &stubRoutes{km: 3, dur: 12 * time.Minute},
			req: QuoteRequest{
				PickupAddress:  "12 Allen Avenue, Ikeja",
				DropoffAddress: "4 Marina Road, Lagos Island",
			},
			want: Quote{Base: 150000, Addons: 60000, Total: 210000, Currency: "NGN", DistanceKm: 3, DurationMins: 12},
		},
		{
			name:   "missing addresses skip the route leg",
			routes: &stubRoutes{km: 7.2, dur: 25 * time.Minute},
			req:    QuoteRequest{ItemCategoryID: "electronics"},
			want:   Quote{Base: 250000, Addons: 0, Total: 250000, Currency: "NGN"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(rates, tc.routes)
			got, err := svc.Quote(context.Background(), tc.req)
			if err != nil {
				t.Fatalf("quote: %v", err)
			}
			if got != tc.want {
				t.Fatalf("quote = %+v, want %+v", got, tc.want)
			}
			if got.Total != got.Base+got.Addons {
				t.Fatalf("price split broken: %+v", got)
			}
		})
	}
}

func TestQuoteRateSourceFailure(t *testing.T) {
	svc := NewService(&stubRates{err: errors.New("rates unavailable")}, nil)
	_, err := svc.Quote(context.Background(), QuoteRequest{ItemCategoryID: "electronics"})
	if err == nil {
		t.Fatal("expected rate source error to propagate")
	}
}

func TestQuoteRouteFailure(t *testing.T) {
	svc := NewService(nil, &stubRoutes{err: errors.New("maps unavailable")})
	_, err := svc.Quote(context.Background(), QuoteRequest{
		PickupAddress:  "12 Allen Avenue, Ikeja",
		DropoffAddress: "4 Marina Road, Lagos Island",
	})
	if err == nil {
		t.Fatal("expected route error to propagate")
	}
}
