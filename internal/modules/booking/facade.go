// README: Query facade; status and free-text filtering over the booking collection.
package booking

import (
	"context"
	"strings"
)

// List returns bookings matching the optional status filter and search term.
func (s *Service) List(ctx context.Context, status Status, term string) ([]*Booking, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return Filter(all, status, term), nil
}

// CountByStatus returns how many bookings sit in each status.
func (s *Service) CountByStatus(ctx context.Context) (map[Status]int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	counts := make(map[Status]int, len(AllStatuses))
	for _, b := range all {
		counts[b.Status]++
	}
	return counts, nil
}

// Filter applies the status filter and a case-insensitive substring match on
// tracking code, sender name, or sender phone.
func Filter(bs []*Booking, status Status, term string) []*Booking {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]*Booking, 0, len(bs))
	for _, b := range bs {
		if status != "" && b.Status != status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(b.TrackingID), term) &&
			!strings.Contains(strings.ToLower(b.SenderName), term) &&
			!strings.Contains(b.SenderPhone, term) {
			continue
		}
		out = append(out, b)
	}
	return out
}
