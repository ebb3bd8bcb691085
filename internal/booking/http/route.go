package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the booking routes. None of them require
// authentication, the admin listing included.
func RegisterRoutes(r gin.IRoutes, h *Handler) {
	r.POST("/get_slots", h.GetSlots) // Free slots of a station
	r.POST("/book", h.Book)          // Submit booking form
	r.GET("/admin", h.Admin)         // All bookings, newest first
	r.GET("/bookings/:id/receipt", h.Receipt)
}
