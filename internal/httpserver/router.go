package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"freshstock/internal/flow"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps flow.Deps, allowOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(allowOrigins)))

	router.GET("/healthz", healthHandler)

	ch := &catalogHandlers{ledger: deps.Ledger}
	cat := router.Group("/catalog")
	cat.GET("/stock", ch.stock)
	cat.GET("/stores", ch.stores)
	cat.GET("/vendor-types", ch.vendorTypes)
	cat.GET("/baskets", ch.baskets)
	cat.GET("/pickup-slots", ch.pickupSlots)

	vh := newVendorHandlers(deps)
	vendor := router.Group("/vendor/sessions")
	vendor.POST("", vh.create)
	vendor.GET("/:id", vh.snapshot)
	vendor.POST("/:id/start", vh.start)
	vendor.POST("/:id/store", vh.selectStore)
	vendor.POST("/:id/vendor-type", vh.selectVendorType)
	vendor.POST("/:id/cart", vh.updateCart)
	vendor.POST("/:id/checkout", vh.checkout)
	vendor.POST("/:id/place", vh.placeOrder)
	vendor.POST("/:id/past-orders", vh.pastOrders)
	vendor.POST("/:id/reorder", vh.reorder)
	vendor.POST("/:id/callback-request", vh.callbackRequest)
	vendor.POST("/:id/back", vh.back)
	vendor.POST("/:id/home", vh.home)

	eh := newEmployeeHandlers(deps)
	employee := router.Group("/employee/sessions")
	employee.POST("", eh.create)
	employee.GET("/:id", eh.snapshot)
	employee.POST("/:id/login", eh.login)
	employee.POST("/:id/logout", eh.logout)
	employee.POST("/:id/navigate", eh.navigate)
	employee.POST("/:id/basket", eh.selectBasket)
	employee.POST("/:id/cart", eh.updateCart)
	employee.POST("/:id/book", eh.book)
	employee.POST("/:id/complete", eh.completeOrder)
	employee.POST("/:id/stock", eh.updateStock)
	employee.POST("/:id/done", eh.done)
	employee.POST("/:id/back", eh.back)

	return router
}

func corsConfig(allowOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(allowOrigins) == 1 && allowOrigins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowOrigins
	}
	return cfg
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
