// README: Transition policy tests (pure, no database).
package booking

import (
	"reflect"
	"testing"
)

// TestAllowedNextStatuses pins the full adjacency table.
func TestAllowedNextStatuses(t *testing.T) {
	want := map[Status][]Status{
		StatusPending:     {StatusConfirmed, StatusNotAccepted, StatusCancelled},
		StatusConfirmed:   {StatusInProgress, StatusNotAccepted, StatusCancelled},
		StatusInProgress:  {StatusDelivered, StatusCancelled},
		StatusDelivered:   {},
		StatusNotAccepted: {StatusCancelled, StatusPending},
		StatusCancelled:   {StatusPending},
	}
	for _, s := range AllStatuses {
		got := AllowedNextStatuses(s)
		if len(got) == 0 && len(want[s]) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, want[s]) {
			t.Errorf("AllowedNextStatuses(%s) = %v, want %v", s, got, want[s])
		}
	}
	if got := AllowedNextStatuses(StatusDelivered); len(got) != 0 {
		t.Errorf("delivered must be terminal, got %v", got)
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		// happy-path forward transitions
		{StatusPending, StatusConfirmed, true},
		{StatusConfirmed, StatusInProgress, true},
		{StatusInProgress, StatusDelivered, true},
		// rejection and cancellation
		{StatusPending, StatusNotAccepted, true},
		{StatusConfirmed, StatusNotAccepted, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusInProgress, StatusCancelled, true},
		// recoverable re-entry points
		{StatusNotAccepted, StatusCancelled, true},
		{StatusNotAccepted, StatusPending, true},
		{StatusCancelled, StatusPending, true},
		// delivered is terminal
		{StatusDelivered, StatusPending, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusDelivered, StatusInProgress, false},
		// invalid: skipping states
		{StatusPending, StatusInProgress, false},
		{StatusPending, StatusDelivered, false},
		{StatusConfirmed, StatusDelivered, false},
		{StatusNotAccepted, StatusConfirmed, false},
		{StatusCancelled, StatusConfirmed, false},
		// no self-loops in the graph; same-status updates are an engine carve-out
		{StatusPending, StatusPending, false},
		{StatusInProgress, StatusInProgress, false},
	}
	for _, tc := range cases {
		got := CanTransition(tc.from, tc.to)
		if got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestStatusLabels(t *testing.T) {
	want := map[Status]string{
		StatusPending:     "Pending",
		StatusConfirmed:   "Confirmed",
		StatusInProgress:  "In Progress",
		StatusDelivered:   "Delivered",
		StatusNotAccepted: "Not Accepted",
		StatusCancelled:   "Cancelled",
	}
	for s, label := range want {
		if got := s.Label(); got != label {
			t.Errorf("Label(%s) = %q, want %q", s, got, label)
		}
	}
	if Status("shipped").Valid() {
		t.Error("unknown status must not be valid")
	}
	if !StatusDelivered.Terminal() {
		t.Error("delivered must be terminal")
	}
	if StatusCancelled.Terminal() {
		t.Error("cancelled is a re-entry point, not terminal")
	}
}
