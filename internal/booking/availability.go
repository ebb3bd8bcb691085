package booking

import "github.com/nekogravitycat/locker-booking-backend/internal/station"

// Available returns the station's configured slots that no booking at that
// station holds, in inventory order. Unknown stations use the fallback
// inventory. Never returns nil.
func Available(inv station.Inventory, stationName string, bookings []*Booking) []int {
	taken := make(map[int]struct{})
	for _, b := range bookings {
		if b.Station == stationName && b.Slot.Assigned {
			taken[b.Slot.Number] = struct{}{}
		}
	}

	free := make([]int, 0)
	for _, s := range inv.Slots(stationName) {
		if _, ok := taken[s]; !ok {
			free = append(free, s)
		}
	}
	return free
}
