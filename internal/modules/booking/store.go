// README: Booking store backed by PostgreSQL; CAS status updates serialize writers.
package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"courier/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

var _ Repository = (*Store)(nil)

func (s *Store) Create(ctx context.Context, b *Booking) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO bookings (
			id, tracking_id,
			sender_name, sender_phone, sender_whatsapp,
			receiver_name, receiver_phone, receiver_whatsapp,
			pickup_address, pickup_landmark, dropoff_address, dropoff_landmark,
			item_category_id, item_notes,
			price_base, price_addons, price_total, currency,
			rider_name, rider_phone,
			status, status_version, created_at
		) VALUES (
			$1, $2,
			$3, $4, $5,
			$6, $7, $8,
			$9, $10, $11, $12,
			$13, $14,
			$15, $16, $17, $18,
			$19, $20,
			$21, $22, $23
		)`,
		string(b.ID), b.TrackingID,
		b.SenderName, b.SenderPhone, b.SenderWhatsApp,
		b.ReceiverName, b.ReceiverPhone, b.ReceiverWhatsApp,
		b.PickupAddress, b.PickupLandmark, b.DropoffAddress, b.DropoffLandmark,
		toStringPtr(b.ItemCategoryID), b.ItemNotes,
		b.PriceBase, b.PriceAddons, b.PriceTotal, b.Currency,
		b.RiderName, b.RiderPhone,
		string(b.Status), b.StatusVersion, b.CreatedAt,
	)
	return err
}

const bookingColumns = `
	id, tracking_id,
	sender_name, sender_phone, sender_whatsapp,
	receiver_name, receiver_phone, receiver_whatsapp,
	pickup_address, pickup_landmark, dropoff_address, dropoff_landmark,
	item_category_id, item_notes,
	price_base, price_addons, price_total, currency,
	rider_name, rider_phone,
	status, status_version, created_at`

func (s *Store) Get(ctx context.Context, id types.ID) (*Booking, error) {
	row := s.db.QueryRow(ctx, `SELECT`+bookingColumns+` FROM bookings WHERE id = $1`, string(id))
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Store) List(ctx context.Context) ([]*Booking, error) {
	rows, err := s.db.Query(ctx, `SELECT`+bookingColumns+` FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *Store) UpdateStatusAndRider(ctx context.Context, id types.ID, from, to Status, version int, riderName, riderPhone *string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE bookings
		SET status = $1,
		    status_version = status_version + 1,
		    rider_name = $2,
		    rider_phone = $3
		WHERE id = $4 AND status = $5 AND status_version = $6`,
		string(to), riderName, riderPhone,
		string(id), string(from), version,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Store) AppendHistory(ctx context.Context, e *StatusHistoryEntry) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO booking_status_history (
			id, booking_id, status, note, created_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)`,
		string(e.ID), string(e.BookingID), string(e.Status), e.Note, e.CreatedBy, e.CreatedAt,
	)
	return err
}

func (s *Store) ListHistory(ctx context.Context, bookingID types.ID) ([]StatusHistoryEntry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, booking_id, status, note, created_by, created_at
		FROM booking_status_history
		WHERE booking_id = $1
		ORDER BY created_at ASC`, string(bookingID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StatusHistoryEntry
	for rows.Next() {
		var e StatusHistoryEntry
		var id, bid, status string
		if err := rows.Scan(&id, &bid, &status, &e.Note, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.ID = types.ID(id)
		e.BookingID = types.ID(bid)
		e.Status = Status(status)
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	var id, status string
	var categoryID sql.NullString
	var createdAt time.Time

	err := row.Scan(
		&id, &b.TrackingID,
		&b.SenderName, &b.SenderPhone, &b.SenderWhatsApp,
		&b.ReceiverName, &b.ReceiverPhone, &b.ReceiverWhatsApp,
		&b.PickupAddress, &b.PickupLandmark, &b.DropoffAddress, &b.DropoffLandmark,
		&categoryID, &b.ItemNotes,
		&b.PriceBase, &b.PriceAddons, &b.PriceTotal, &b.Currency,
		&b.RiderName, &b.RiderPhone,
		&status, &b.StatusVersion, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	b.ID = types.ID(id)
	b.Status = Status(status)
	b.CreatedAt = createdAt
	if categoryID.Valid {
		c := types.ID(categoryID.String)
		b.ItemCategoryID = &c
	}
	return &b, nil
}

func toStringPtr(v *types.ID) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
