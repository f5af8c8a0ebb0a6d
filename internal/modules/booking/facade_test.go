// README: Query facade tests (filtering and counting, no database).
package booking

import (
	"context"
	"testing"
	"time"
)

func sampleBookings() []*Booking {
	now := time.Now().UTC()
	return []*Booking{
		{
			ID: "b1", TrackingID: "CR-A1B2C3D4E5",
			SenderName: "Ada Obi", SenderPhone: "08031112222",
			Status: StatusPending, CreatedAt: now,
		},
		{
			ID: "b2", TrackingID: "CR-F6E5D4C3B2",
			SenderName: "Ben Eze", SenderPhone: "08043334444",
			Status: StatusConfirmed, CreatedAt: now.Add(time.Minute),
		},
		{
			ID: "b3", TrackingID: "CR-99887766AA",
			SenderName: "Adaeze Kalu", SenderPhone: "08155556666",
			Status: StatusPending, CreatedAt: now.Add(2 * time.Minute),
		},
	}
}

func TestFilter(t *testing.T) {
	bs := sampleBookings()
	cases := []struct {
		name   string
		status Status
		term   string
		want   []string
	}{
		{"no filters", "", "", []string{"b1", "b2", "b3"}},
		{"by status", StatusPending, "", []string{"b1", "b3"}},
		{"by tracking substring, case-insensitive", "", "cr-a1b2", []string{"b1"}},
		{"by sender name, case-insensitive", "", "ADA", []string{"b1", "b3"}},
		{"by sender phone", "", "0804333", []string{"b2"}},
		{"status and term combined", StatusPending, "ada", []string{"b1", "b3"}},
		{"term excludes non-matching status", StatusConfirmed, "ada", nil},
		{"receiver fields are not searched", "", "nonexistent", nil},
		{"whitespace-only term matches all", "", "   ", []string{"b1", "b2", "b3"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(bs, tc.status, tc.term)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d results, want %d", len(got), len(tc.want))
			}
			for i, b := range got {
				if string(b.ID) != tc.want[i] {
					t.Errorf("result[%d] = %s, want %s", i, b.ID, tc.want[i])
				}
			}
		})
	}
}

func TestListNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	for _, b := range sampleBookings() {
		if err := repo.Create(context.Background(), b); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	svc := NewService(repo, Config{})

	got, err := svc.List(context.Background(), "", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("list not ordered newest first at %d", i)
		}
	}
}

func TestCountByStatus(t *testing.T) {
	repo := NewMemoryRepository()
	for _, b := range sampleBookings() {
		if err := repo.Create(context.Background(), b); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	svc := NewService(repo, Config{})

	counts, err := svc.CountByStatus(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts[StatusPending] != 2 || counts[StatusConfirmed] != 1 {
		t.Fatalf("unexpected counts %v", counts)
	}
	if counts[StatusDelivered] != 0 {
		t.Fatalf("delivered should be zero, got %d", counts[StatusDelivered])
	}
}
