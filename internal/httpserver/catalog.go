package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freshstock/internal/catalog"
	stockrepo "freshstock/internal/repository/stock"
)

// catalogHandlers serves the read-only reference data plus the live
// stock table.
type catalogHandlers struct {
	ledger stockrepo.Reader
}

func (h *catalogHandlers) stock(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledger.List())
}

func (h *catalogHandlers) stores(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Stores())
}

func (h *catalogHandlers) vendorTypes(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.VendorTypes())
}

func (h *catalogHandlers) baskets(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Baskets())
}

func (h *catalogHandlers) pickupSlots(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.PickupSlots())
}
