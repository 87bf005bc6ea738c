package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mintusarker/shopping-site-server-code/internal/auth"
)

type Handlers struct {
	Auth        *AuthHandler
	Products    *ProductHandler
	Bookings    *BookingHandler
	Payments    *PaymentHandler
	Users       *UserHandler
	NewArrivals *CatalogHandler
	TopSelling  *CatalogHandler
}

func NewRouter(allowOrigins []string, tokens *auth.TokenService, h Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "server running")
	})

	gate := tokens.Middleware
	h.Auth.Register(r)
	h.Products.Register(r, gate)
	h.Bookings.Register(r)
	h.Payments.Register(r, gate)
	h.Users.Register(r)
	h.NewArrivals.Register(r, NewArrivalRoutes)
	h.TopSelling.Register(r, TopSellingRoutes)

	return r
}
