package api

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mintusarker/shopping-site-server-code/internal/billing"
	"github.com/mintusarker/shopping-site-server-code/internal/domain"
	"github.com/mintusarker/shopping-site-server-code/internal/repository"
	"github.com/mintusarker/shopping-site-server-code/internal/service/payment"
)

type PaymentHandler struct {
	service  *payment.Service
	payments repository.PaymentRepository
	intents  billing.IntentCreator
}

func NewPaymentHandler(service *payment.Service, payments repository.PaymentRepository, intents billing.IntentCreator) *PaymentHandler {
	return &PaymentHandler{service: service, payments: payments, intents: intents}
}

func (h *PaymentHandler) Register(r *gin.Engine, gate gin.HandlerFunc) {
	r.POST("/payments", gate, h.create)
	r.GET("/payment", h.list)
	r.GET("/paymentDone", h.listByOwner)
	r.GET("/payment-by-user/:email", h.listByUser)
	r.POST("/create-payment-intent", gate, h.createIntent)
}

func (h *PaymentHandler) create(c *gin.Context) {
	var p domain.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if _, err := domain.ParseID(p.BookingID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bookingId"})
		return
	}
	insert, update, err := h.service.Record(c.Request.Context(), p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertResult": insert, "updateResult": update})
}

func (h *PaymentHandler) list(c *gin.Context) {
	payments, err := h.payments.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) listByOwner(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}
	h.respondByOwner(c, email)
}

func (h *PaymentHandler) listByUser(c *gin.Context) {
	h.respondByOwner(c, c.Param("email"))
}

func (h *PaymentHandler) respondByOwner(c *gin.Context, email string) {
	payments, err := h.payments.ListByOwner(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}

type intentRequest struct {
	Price float64 `json:"price"`
}

func (h *PaymentHandler) createIntent(c *gin.Context) {
	var req intentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
		return
	}
	// Minor units: price 20 becomes amount 2000.
	amount := int64(math.Round(req.Price * 100))
	secret, err := h.intents.CreateIntent(c.Request.Context(), amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
