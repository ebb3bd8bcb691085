package http

import (
	"github.com/nekogravitycat/locker-booking-backend/internal/booking"
	"github.com/nekogravitycat/locker-booking-backend/internal/pkg/request"
)

// GetSlotsRequest is the JSON body of POST /get_slots.
type GetSlotsRequest struct {
	Station string `json:"station"`
}

type GetSlotsResponse struct {
	AvailableSlots []int `json:"available_slots"`
}

// BookForm holds the fields of the booking form. Days and Slot stay as
// text; the service decides how to read them.
type BookForm struct {
	Name        string `form:"name"`
	Mobile      string `form:"mobile"`
	City        string `form:"city"`
	StationType string `form:"stationType"`
	Station     string `form:"station"`
	Day         string `form:"day"`
	Date        string `form:"date"`
	Days        string `form:"days"`
	Slot        string `form:"slot"`
}

func (f BookForm) ToSubmitRequest() booking.SubmitRequest {
	return booking.SubmitRequest{
		Name:        f.Name,
		Mobile:      f.Mobile,
		City:        f.City,
		StationType: f.StationType,
		Station:     f.Station,
		Day:         f.Day,
		Date:        f.Date,
		Days:        f.Days,
		Slot:        f.Slot,
	}
}

// ListBookingsRequest defines query parameters of the admin listing.
type ListBookingsRequest struct {
	request.ListParams
}

type BookingResponse struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name"`
	Mobile      string       `json:"mobile"`
	City        string       `json:"city"`
	StationType string       `json:"station_type"`
	Station     string       `json:"station"`
	Day         string       `json:"day"`
	Date        string       `json:"date"`
	Days        int          `json:"days"`
	Price       int          `json:"price"`
	PIN         booking.PIN  `json:"pin"`
	Slot        booking.Slot `json:"slot"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		Name:        b.Name,
		Mobile:      b.Mobile,
		City:        b.City,
		StationType: b.StationType,
		Station:     b.Station,
		Day:         b.Day,
		Date:        b.Date,
		Days:        b.Days,
		Price:       b.Price,
		PIN:         b.PIN,
		Slot:        b.Slot,
	}
}
