package booking

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingJSONSentinels(t *testing.T) {
	full := Booking{Station: "Charbagh", Days: 1, Price: 50}

	raw, err := json.Marshal(full)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"pin":"N/A"`)
	assert.Contains(t, string(raw), `"slot":"No slots available"`)
	assert.NotContains(t, string(raw), `"id"`)

	booked := Booking{Station: "Charbagh", PIN: PINCode(4821), Slot: SlotNumber(7)}
	raw, err = json.Marshal(booked)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"pin":4821`)
	assert.Contains(t, string(raw), `"slot":7`)
}

func TestBookingReadsExistingFileLayout(t *testing.T) {
	// Records written before ids were introduced, including a fallback
	// booking and a slot stored as text.
	raw := `[
  {"name": "Asha", "mobile": "9876543210", "city": "Delhi", "station_type": "Railway",
   "station": "New Delhi", "day": "Monday", "date": "2024-05-06", "days": 2,
   "price": 100, "pin": 1234, "slot": 3},
  {"name": "Ravi", "mobile": "9876543211", "city": "Lucknow", "station_type": "Bus",
   "station": "Alambagh", "day": "Tuesday", "date": "2024-05-07", "days": 1,
   "price": 50, "pin": "N/A", "slot": "No slots available"},
  {"name": "Meena", "station": "Alambagh", "pin": null, "slot": "4"}
]`

	var bookings []*Booking
	require.NoError(t, json.Unmarshal([]byte(raw), &bookings))
	require.Len(t, bookings, 3)

	assert.Equal(t, PINCode(1234), bookings[0].PIN)
	assert.Equal(t, SlotNumber(3), bookings[0].Slot)
	assert.Empty(t, bookings[0].ID)

	assert.False(t, bookings[1].HasSlot())
	assert.Equal(t, NoSlotsAvailable, bookings[1].Slot.String())
	assert.Equal(t, NoPIN, bookings[1].PIN.String())

	assert.Equal(t, SlotNumber(4), bookings[2].Slot)
	assert.False(t, bookings[2].PIN.Set)
}

func TestSlotRejectsBadJSON(t *testing.T) {
	var s Slot
	assert.Error(t, json.Unmarshal([]byte(`{"n":1}`), &s))
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &s))
}
