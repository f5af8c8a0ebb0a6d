// README: Booking service implements creation and validated status transitions.
package booking

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"courier/internal/types"
)

var (
	ErrBadRequest            = errors.New("bad request")
	ErrNotFound              = errors.New("booking not found")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrConflict              = errors.New("booking state conflict")
	ErrPartialUpdate         = errors.New("status updated but history append failed")
	ErrRepositoryUnavailable = errors.New("booking repository unavailable")
)

type Config struct {
	// PreserveRiderOnReopen keeps the previous rider assignment when a
	// cancelled or not-accepted booking is re-opened to pending and the
	// request carries no rider. When false the rider fields follow the
	// request verbatim: absent means cleared.
	PreserveRiderOnReopen bool
}

type Service struct {
	repo     Repository
	recorder *Recorder
	cfg      Config
}

func NewService(repo Repository, cfg Config) *Service {
	return &Service{repo: repo, recorder: NewRecorder(repo), cfg: cfg}
}

type CreateCommand struct {
	SenderName       string
	SenderPhone      string
	SenderWhatsApp   string
	ReceiverName     string
	ReceiverPhone    string
	ReceiverWhatsApp string
	PickupAddress    string
	PickupLandmark   string
	DropoffAddress   string
	DropoffLandmark  string
	ItemCategoryID   string
	ItemNotes        string
	PriceBase        int64
	PriceAddons      int64
	PriceTotal       int64
	Currency         string
	Actor            string
}

type TransitionCommand struct {
	BookingID  types.ID
	Status     Status
	RiderName  string
	RiderPhone string
	Note       string
	Actor      string
}

// Create stores a new booking in pending and writes its first history entry.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Booking, error) {
	switch {
	case cmd.SenderName == "", cmd.SenderPhone == "",
		cmd.ReceiverName == "", cmd.ReceiverPhone == "",
		cmd.PickupAddress == "", cmd.DropoffAddress == "",
		cmd.Actor == "":
		return nil, ErrBadRequest
	}
	if cmd.PriceTotal != cmd.PriceBase+cmd.PriceAddons {
		return nil, fmt.Errorf("%w: price total must equal base plus add-ons", ErrBadRequest)
	}
	currency := cmd.Currency
	if currency == "" {
		currency = "NGN"
	}

	var categoryID *types.ID
	if cmd.ItemCategoryID != "" {
		id := types.ID(cmd.ItemCategoryID)
		categoryID = &id
	}

	b := &Booking{
		ID:               types.NewID(),
		TrackingID:       newTrackingID(),
		SenderName:       cmd.SenderName,
		SenderPhone:      cmd.SenderPhone,
		SenderWhatsApp:   strPtr(cmd.SenderWhatsApp),
		ReceiverName:     cmd.ReceiverName,
		ReceiverPhone:    cmd.ReceiverPhone,
		ReceiverWhatsApp: strPtr(cmd.ReceiverWhatsApp),
		PickupAddress:    cmd.PickupAddress,
		PickupLandmark:   strPtr(cmd.PickupLandmark),
		DropoffAddress:   cmd.DropoffAddress,
		DropoffLandmark:  strPtr(cmd.DropoffLandmark),
		ItemCategoryID:   categoryID,
		ItemNotes:        strPtr(cmd.ItemNotes),
		PriceBase:        cmd.PriceBase,
		PriceAddons:      cmd.PriceAddons,
		PriceTotal:       cmd.PriceTotal,
		Currency:         currency,
		Status:           StatusPending,
		StatusVersion:    0,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, mapStoreErr(err)
	}
	if _, err := s.recorder.RecordTransition(context.WithoutCancel(ctx), b.ID, StatusPending, "Booking created", cmd.Actor); err != nil {
		return b, fmt.Errorf("%w: %v", ErrPartialUpdate, err)
	}
	return b, nil
}

// ApplyTransition validates the requested status against the policy, applies
// it with the rider assignment, and records one history entry. Requesting the
// current status is allowed so a rider can be reassigned without a status
// change; every successful call appends a new entry.
//
// A stale compare-and-swap is retried once against a fresh read before the
// conflict is surfaced. Once the status write has committed the audit append
// is no longer cancellable with the caller's context; if it still fails the
// caller gets ErrPartialUpdate together with the updated booking.
func (s *Service) ApplyTransition(ctx context.Context, cmd TransitionCommand) (*Booking, error) {
	if cmd.BookingID == "" || !cmd.Status.Valid() || cmd.Actor == "" {
		return nil, ErrBadRequest
	}

	b, err := s.repo.Get(ctx, cmd.BookingID)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	riderName := strPtr(cmd.RiderName)
	riderPhone := strPtr(cmd.RiderPhone)

	applied := false
	var setName, setPhone *string
	for attempt := 0; attempt < 2; attempt++ {
		if cmd.Status != b.Status && !CanTransition(b.Status, cmd.Status) {
			return nil, fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidTransition, b.Status, cmd.Status)
		}

		setName, setPhone = riderName, riderPhone
		if s.cfg.PreserveRiderOnReopen && riderName == nil && riderPhone == nil && isReopen(b.Status, cmd.Status) {
			setName, setPhone = b.RiderName, b.RiderPhone
		}

		ok, err := s.repo.UpdateStatusAndRider(ctx, b.ID, b.Status, cmd.Status, b.StatusVersion, setName, setPhone)
		if err != nil {
			return nil, mapStoreErr(err)
		}
		if ok {
			applied = true
			break
		}

		// Stale read: a concurrent transition committed first. Reload and
		// re-validate against the fresh state.
		b, err = s.repo.Get(ctx, cmd.BookingID)
		if err != nil {
			return nil, mapStoreErr(err)
		}
	}
	if !applied {
		return nil, ErrConflict
	}

	b.Status = cmd.Status
	b.StatusVersion++
	b.RiderName = setName
	b.RiderPhone = setPhone

	note := cmd.Note
	if note == "" {
		note = autoNote(cmd.Status, setName)
	}
	if _, err := s.recorder.RecordTransition(context.WithoutCancel(ctx), b.ID, b.Status, note, cmd.Actor); err != nil {
		return b, fmt.Errorf("%w: %v", ErrPartialUpdate, err)
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Booking, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return b, nil
}

// History returns the booking's audit trail oldest first.
func (s *Service) History(ctx context.Context, id types.ID) ([]StatusHistoryEntry, error) {
	entries, err := s.recorder.History(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return entries, nil
}

// isReopen reports whether the transition re-opens a recoverable booking.
func isReopen(from, to Status) bool {
	return to == StatusPending && (from == StatusCancelled || from == StatusNotAccepted)
}

func autoNote(status Status, riderName *string) string {
	note := "Status changed to " + status.Label()
	if riderName != nil {
		note += " and assigned to " + *riderName
	}
	return note
}

// mapStoreErr translates a repository timeout into the retryable
// infrastructure error; everything else passes through.
func mapStoreErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrRepositoryUnavailable, err)
	}
	return err
}

func strPtr(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func newTrackingID() string {
	var b [5]byte
	_, _ = rand.Read(b[:])
	return "CR-" + strings.ToUpper(hex.EncodeToString(b[:]))
}
