package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/locker-booking-backend/internal/booking"
	"github.com/nekogravitycat/locker-booking-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/locker-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/locker-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
	logger  *zap.Logger
}

func NewHandler(service booking.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetSlots lists the free slots of a station. A missing or unreadable
// body is treated as an empty station name.
func (h *Handler) GetSlots(c *gin.Context) {
	var req GetSlotsRequest
	_ = c.ShouldBindJSON(&req)

	slots, err := h.service.AvailableSlots(c.Request.Context(), req.Station)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, GetSlotsResponse{AvailableSlots: slots})
}

// Book submits the booking form and renders the confirmation page.
// Validation failures are answered in plain text.
func (h *Handler) Book(c *gin.Context) {
	var form BookForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "Invalid form data")
		return
	}

	b, err := h.service.Submit(c.Request.Context(), form.ToSubmitRequest())
	if err != nil {
		if apperror.StatusOf(err, http.StatusInternalServerError) >= http.StatusInternalServerError {
			h.logger.Error("booking failed", zap.String("station", form.Station), zap.Error(err))
		}
		response.Text(c, err)
		return
	}

	c.HTML(http.StatusOK, "confirm.html", gin.H{
		"Booking": NewBookingResponse(b),
	})
}

// Admin lists every booking, newest first. HTML by default, JSON when the
// client asks for it.
func (h *Handler) Admin(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	page := response.Paginate(bookings, req.Page, req.PageSize)
	items := make([]BookingResponse, len(page))
	for i, b := range page {
		items[i] = NewBookingResponse(b)
	}

	switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEJSON:
		pageSize := req.PageSize
		if pageSize == 0 {
			pageSize = len(bookings)
		}
		c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, pageSize, len(bookings)))
	default:
		c.HTML(http.StatusOK, "admin.html", gin.H{
			"Bookings": items,
			"Total":    len(bookings),
		})
	}
}

// Receipt serves the PDF confirmation slip of a booking.
func (h *Handler) Receipt(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	pdf, filename, err := booking.RenderReceipt(b)
	if err != nil {
		h.logger.Error("receipt rendering failed", zap.String("id", b.ID), zap.Error(err))
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
