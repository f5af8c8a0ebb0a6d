// README: Booking handlers for create/get/list, status transitions, history, and notify.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courier/internal/modules/booking"
	"courier/internal/modules/notify"
	"courier/internal/types"
)

type BookingHandler struct {
	booking *booking.Service
	notify  *notify.Service
}

func NewBookingHandler(bookingSvc *booking.Service, notifySvc *notify.Service) *BookingHandler {
	return &BookingHandler{booking: bookingSvc, notify: notifySvc}
}

type createBookingReq struct {
	SenderName       string `json:"sender_name"`
	SenderPhone      string `json:"sender_phone"`
	SenderWhatsApp   string `json:"sender_whatsapp"`
	ReceiverName     string `json:"receiver_name"`
	ReceiverPhone    string `json:"receiver_phone"`
	ReceiverWhatsApp string `json:"receiver_whatsapp"`
	PickupAddress    string `json:"pickup_address"`
	PickupLandmark   string `json:"pickup_landmark"`
	DropoffAddress   string `json:"dropoff_address"`
	DropoffLandmark  string `json:"dropoff_landmark"`
	ItemCategoryID   string `json:"item_category_id"`
	ItemNotes        string `json:"item_notes"`
	PriceBase        int64  `json:"price_base"`
	PriceAddons      int64  `json:"price_addons"`
	PriceTotal       int64  `json:"price_total"`
	Currency         string `json:"currency"`
	Actor            string `json:"actor"`
}

type updateStatusReq struct {
	Status     string `json:"status"`
	RiderName  string `json:"rider_name"`
	RiderPhone string `json:"rider_phone"`
	Note       string `json:"note"`
	Actor      string `json:"actor"`
}

type bookingView struct {
	ID             string  `json:"id"`
	TrackingID     string  `json:"tracking_id"`
	SenderName     string  `json:"sender_name"`
	SenderPhone    string  `json:"sender_phone"`
	ReceiverName   string  `json:"receiver_name"`
	ReceiverPhone  string  `json:"receiver_phone"`
	PickupAddress  string  `json:"pickup_address"`
	DropoffAddress string  `json:"dropoff_address"`
	PriceBase      int64   `json:"price_base"`
	PriceAddons    int64   `json:"price_addons"`
	PriceTotal     int64   `json:"price_total"`
	Currency       string  `json:"currency"`
	RiderName      *string `json:"rider_name"`
	RiderPhone     *string `json:"rider_phone"`
	Status         string  `json:"status"`
	StatusLabel    string  `json:"status_label"`
	CreatedAt      string  `json:"created_at"`
}

type historyView struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
	Note      string `json:"note"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

func viewOf(b *booking.Booking) bookingView {
	return bookingView{
		ID:             string(b.ID),
		TrackingID:     b.TrackingID,
		SenderName:     b.SenderName,
		SenderPhone:    b.SenderPhone,
		ReceiverName:   b.ReceiverName,
		ReceiverPhone:  b.ReceiverPhone,
		PickupAddress:  b.PickupAddress,
		DropoffAddress: b.DropoffAddress,
		PriceBase:      b.PriceBase,
		PriceAddons:    b.PriceAddons,
		PriceTotal:     b.PriceTotal,
		Currency:       b.Currency,
		RiderName:      b.RiderName,
		RiderPhone:     b.RiderPhone,
		Status:         string(b.Status),
		StatusLabel:    b.Status.Label(),
		CreatedAt:      b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	b, err := h.booking.Create(c.Request.Context(), booking.CreateCommand{
		SenderName:       req.SenderName,
		SenderPhone:      req.SenderPhone,
		SenderWhatsApp:   req.SenderWhatsApp,
		ReceiverName:     req.ReceiverName,
		ReceiverPhone:    req.ReceiverPhone,
		ReceiverWhatsApp: req.ReceiverWhatsApp,
		PickupAddress:    req.PickupAddress,
		PickupLandmark:   req.PickupLandmark,
		DropoffAddress:   req.DropoffAddress,
		DropoffLandmark:  req.DropoffLandmark,
		ItemCategoryID:   req.ItemCategoryID,
		ItemNotes:        req.ItemNotes,
		PriceBase:        req.PriceBase,
		PriceAddons:      req.PriceAddons,
		PriceTotal:       req.PriceTotal,
		Currency:         req.Currency,
		Actor:            actorOrDefault(req.Actor),
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, viewOf(b))
}

func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	b, err := h.booking.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, viewOf(b))
}

func (h *BookingHandler) List(c *gin.Context) {
	status := booking.Status(c.Query("status"))
	if status != "" && !status.Valid() {
		writeError(c, http.StatusBadRequest, "unknown status filter")
		return
	}
	bs, err := h.booking.List(c.Request.Context(), status, c.Query("q"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	views := make([]bookingView, len(bs))
	for i, b := range bs {
		views[i] = viewOf(b)
	}
	writeJSON(c, http.StatusOK, gin.H{"bookings": views})
}

func (h *BookingHandler) History(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	entries, err := h.booking.History(c.Request.Context(), types.ID(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	views := make([]historyView, len(entries))
	for i, e := range entries {
		views[i] = historyView{
			ID:        string(e.ID),
			BookingID: string(e.BookingID),
			Status:    string(e.Status),
			Note:      e.Note,
			CreatedBy: e.CreatedBy,
			CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	writeJSON(c, http.StatusOK, gin.H{"history": views})
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	status := booking.Status(req.Status)
	if !status.Valid() {
		writeError(c, http.StatusBadRequest, "unknown status")
		return
	}
	b, err := h.booking.ApplyTransition(c.Request.Context(), booking.TransitionCommand{
		BookingID:  types.ID(id),
		Status:     status,
		RiderName:  req.RiderName,
		RiderPhone: req.RiderPhone,
		Note:       req.Note,
		Actor:      actorOrDefault(req.Actor),
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, viewOf(b))
}

type notifyReq struct {
	Actor string `json:"actor"`
}

// Notify queues the tracking SMS for the booking's sender. It is decoupled
// from any transition: a failure here never affects booking state.
func (h *BookingHandler) Notify(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid booking id")
		return
	}
	var req notifyReq
	_ = c.ShouldBindJSON(&req)

	b, err := h.booking.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	n, err := h.notify.Dispatch(c.Request.Context(), b, actorOrDefault(req.Actor))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusAccepted, gin.H{
		"message_id": n.ID,
		"recipient":  n.Recipient,
		"status":     n.Status,
	})
}

func actorOrDefault(actor string) string {
	if actor == "" {
		return "admin"
	}
	return actor
}
