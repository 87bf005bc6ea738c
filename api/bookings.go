package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mintusarker/shopping-site-server-code/internal/domain"
	"github.com/mintusarker/shopping-site-server-code/internal/repository"
)

type BookingHandler struct {
	bookings repository.BookingRepository
}

func NewBookingHandler(bookings repository.BookingRepository) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) Register(r *gin.Engine) {
	r.POST("/bookings", h.create)
	r.GET("/bookings", h.listByOwner)
	// Static segment wins over :id, so this alias coexists with get-by-id.
	r.GET("/bookings/email", h.listByOwner)
	r.GET("/all_bookings", h.list)
	r.GET("/bookings/:id", h.get)
	r.DELETE("/bookings/:id", h.delete)
}

func (h *BookingHandler) create(c *gin.Context) {
	var b domain.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := h.bookings.Create(c.Request.Context(), b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.bookings.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) listByOwner(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}
	bookings, err := h.bookings.ListByOwner(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) get(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	booking, err := h.bookings.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) delete(c *gin.Context) {
	id, err := domain.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	res, err := h.bookings.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
