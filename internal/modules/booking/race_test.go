// README: Concurrent transition tests over the in-memory repository.
package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// TestConcurrentExclusiveTransitions races delivery against cancellation on
// an in-progress booking. The two targets are mutually exclusive, so exactly
// one writer may win; the loser must see a conflict or, after its retry
// re-reads the winner's state, an invalid transition.
func TestConcurrentExclusiveTransitions(t *testing.T) {
	svc, _ := newTestService(t)
	b := mustCreateBooking(t, svc)
	mustTransition(t, svc, b.ID, StatusConfirmed)
	mustTransition(t, svc, b.ID, StatusInProgress)

	targets := []Status{StatusDelivered, StatusCancelled}
	errs := make([]error, len(targets))

	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target Status) {
			defer wg.Done()
			_, errs[i] = svc.ApplyTransition(context.Background(), TransitionCommand{
				BookingID: b.ID,
				Status:    target,
				Actor:     "admin",
			})
		}(i, target)
	}
	wg.Wait()

	wins := 0
	for i, err := range errs {
		if err == nil {
			wins++
			continue
		}
		if !errors.Is(err, ErrConflict) && !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("loser %d got unexpected error: %v", i, err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winner, got %d (errs=%v)", wins, errs)
	}

	got, err := svc.Get(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != StatusDelivered && got.Status != StatusCancelled {
		t.Fatalf("final status %s is neither target", got.Status)
	}

	// Exactly one new history entry for the winning transition.
	entries, err := svc.History(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 history entries (create + 3 transitions), got %d", len(entries))
	}
	if last := entries[len(entries)-1]; last.Status != got.Status {
		t.Fatalf("last entry %s does not match booking status %s", last.Status, got.Status)
	}
}

// TestConcurrentRiderReassignments hammers the same-status carve-out. Every
// successful call must serialize through the version check and leave its own
// history entry; contenders that lose both the first attempt and the retry
// surface ErrConflict rather than silently dropping the update.
func TestConcurrentRiderReassignments(t *testing.T) {
	svc, _ := newTestService(t)
	b := mustCreateBooking(t, svc)

	riders := []string{"Musa Bello", "Jane Doe", "Chidi Okafor", "Amaka Nwosu"}
	errs := make([]error, len(riders))

	var wg sync.WaitGroup
	for i, rider := range riders {
		wg.Add(1)
		go func(i int, rider string) {
			defer wg.Done()
			_, errs[i] = svc.ApplyTransition(context.Background(), TransitionCommand{
				BookingID: b.ID,
				Status:    StatusPending,
				RiderName: rider,
				Actor:     "admin",
			})
		}(i, rider)
	}
	wg.Wait()

	successes := 0
	for i, err := range errs {
		if err == nil {
			successes++
			continue
		}
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("contender %d got unexpected error: %v", i, err)
		}
	}
	if successes == 0 {
		t.Fatal("at least one reassignment must win")
	}

	got, _ := svc.Get(context.Background(), b.ID)
	if got.Status != StatusPending {
		t.Fatalf("status changed by rider-only updates: %s", got.Status)
	}
	if got.StatusVersion != successes {
		t.Fatalf("version %d does not match %d successful writes", got.StatusVersion, successes)
	}
	entries, _ := svc.History(context.Background(), b.ID)
	if len(entries) != successes+1 {
		t.Fatalf("expected %d history entries, got %d", successes+1, len(entries))
	}
}
