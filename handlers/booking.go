package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medbook/models"
	"medbook/services/booking"
	"medbook/utils"
)

// BookingHandler exposes the reservation endpoints.
type BookingHandler struct {
	Service booking.Service
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// GetSlots handles GET /api/slots: the full-day occupancy snapshot for the
// requested date. The department parameter is accepted but plays no part in
// counting.
func (h *BookingHandler) GetSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date parameter", "")
		return
	}

	snapshot, err := h.Service.Availability(c.Request.Context(), date)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SubmitBooking handles POST /api/booking. The three non-success outcomes
// are distinguishable by status: 400 validation, 409 slot full, 502 store
// failure.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	receipt, err := h.Service.Reserve(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   receipt.Message,
		"reference": receipt.Reference,
	})
}

// GetReceipt handles GET /api/booking/:reference.
func (h *BookingHandler) GetReceipt(c *gin.Context) {
	reference := c.Param("reference")
	receipt, err := h.Service.Receipt(c.Request.Context(), reference)
	if err != nil {
		h.renderError(c, err)
		return
	}
	if receipt == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "No receipt found for this reference",
		})
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *BookingHandler) renderError(c *gin.Context, err error) {
	var verr *booking.ValidationError
	var full *booking.SlotFullError
	var serr *booking.StoreError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Incomplete or invalid reservation details",
			"details": verr.Error(),
		})
	case errors.As(err, &full):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"message": "Sorry, this time slot is fully booked. Please choose another slot.",
		})
	case errors.As(err, &serr):
		h.Logger.Error("reservation store failure", zap.String("op", serr.Op), zap.Error(serr.Err))
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"message": "The reservation store is unavailable. Please try again later.",
		})
	default:
		h.Logger.Error("unexpected booking error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "An unexpected error occurred",
		})
	}
}
