package booking

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/nekogravitycat/locker-booking-backend/internal/pkg/apperror"
)

var (
	ErrInvalidMobile    = apperror.New(http.StatusBadRequest, "Invalid mobile number")
	ErrInvalidDate      = apperror.New(http.StatusBadRequest, "Invalid date format")
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrDuplicateBooking = apperror.New(http.StatusConflict, "booking already exists")
)

const (
	// PricePerDay is the locker rent for one day.
	PricePerDay = 50

	// DateLayout is the only accepted booking date format.
	DateLayout = "2006-01-02"

	// Sentinels stored in place of a slot or PIN when the station is full.
	NoSlotsAvailable = "No slots available"
	NoPIN            = "N/A"
)

// Booking is one persisted locker reservation. Records are append-only.
// JSON field names match the lockers.json layout.
type Booking struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	City        string `json:"city"`
	StationType string `json:"station_type"`
	Station     string `json:"station"`
	Day         string `json:"day"`
	Date        string `json:"date"`
	Days        int    `json:"days"`
	Price       int    `json:"price"`
	PIN         PIN    `json:"pin"`
	Slot        Slot   `json:"slot"`
}

// HasSlot reports whether a real locker was assigned.
func (b *Booking) HasSlot() bool {
	return b.Slot.Assigned
}

// Slot is a locker number, or the "No slots available" sentinel when
// Assigned is false.
type Slot struct {
	Number   int
	Assigned bool
}

// SlotNumber returns an assigned slot.
func SlotNumber(n int) Slot {
	return Slot{Number: n, Assigned: true}
}

func (s Slot) String() string {
	if !s.Assigned {
		return NoSlotsAvailable
	}
	return strconv.Itoa(s.Number)
}

func (s Slot) MarshalJSON() ([]byte, error) {
	return marshalSentinel(s.Number, s.Assigned, NoSlotsAvailable)
}

func (s *Slot) UnmarshalJSON(data []byte) error {
	n, ok, err := unmarshalSentinel(data)
	if err != nil {
		return err
	}
	*s = Slot{Number: n, Assigned: ok}
	return nil
}

// PIN is the 4-digit locker access code, or "N/A" when Set is false.
type PIN struct {
	Code int
	Set  bool
}

// PINCode returns a set PIN.
func PINCode(code int) PIN {
	return PIN{Code: code, Set: true}
}

func (p PIN) String() string {
	if !p.Set {
		return NoPIN
	}
	return strconv.Itoa(p.Code)
}

func (p PIN) MarshalJSON() ([]byte, error) {
	return marshalSentinel(p.Code, p.Set, NoPIN)
}

func (p *PIN) UnmarshalJSON(data []byte) error {
	n, ok, err := unmarshalSentinel(data)
	if err != nil {
		return err
	}
	*p = PIN{Code: n, Set: ok}
	return nil
}

func marshalSentinel(n int, ok bool, sentinel string) ([]byte, error) {
	if !ok {
		return json.Marshal(sentinel)
	}
	return json.Marshal(n)
}

// unmarshalSentinel accepts a JSON number, or a string. Strings holding
// an integer are read as that integer; null and any other string mean
// "not assigned".
func unmarshalSentinel(data []byte) (int, bool, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return 0, false, nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, false, err
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, true, nil
		}
		return 0, false, nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return 0, false, err
	}
	return n, true, nil
}
