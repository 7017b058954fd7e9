package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freshstock/internal/flow"
)

// vendorHandlers is the view over vendor flow sessions. Each handler
// binds the request, forwards exactly one named action to the flow and
// returns the refreshed snapshot.
type vendorHandlers struct {
	deps     flow.Deps
	sessions *sessions[*flow.Vendor]
}

func newVendorHandlers(deps flow.Deps) *vendorHandlers {
	return &vendorHandlers{deps: deps, sessions: newSessions[*flow.Vendor]()}
}

type vendorSessionResponse struct {
	SessionID string              `json:"sessionId"`
	Snapshot  flow.VendorSnapshot `json:"snapshot"`
}

func (h *vendorHandlers) create(c *gin.Context) {
	v := flow.NewVendor(h.deps)
	id := h.sessions.create(v)
	c.JSON(http.StatusCreated, vendorSessionResponse{SessionID: id, Snapshot: v.Snapshot()})
}

func (h *vendorHandlers) snapshot(c *gin.Context) {
	h.act(c, func(*flow.Vendor) error { return nil })
}

func (h *vendorHandlers) start(c *gin.Context) {
	h.act(c, (*flow.Vendor).StartNewOrder)
}

type selectStoreRequest struct {
	StoreID string `json:"storeId" binding:"required"`
}

func (h *vendorHandlers) selectStore(c *gin.Context) {
	var req selectStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.act(c, func(v *flow.Vendor) error { return v.SelectStore(req.StoreID) })
}

type selectVendorTypeRequest struct {
	VendorTypeID string `json:"vendorTypeId" binding:"required"`
}

func (h *vendorHandlers) selectVendorType(c *gin.Context) {
	var req selectVendorTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.act(c, func(v *flow.Vendor) error { return v.SelectVendorType(req.VendorTypeID) })
}

// cartRequest carries either an absolute quantity or a +/- delta.
type cartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity"`
	Delta     *int   `json:"delta"`
}

func (h *vendorHandlers) updateCart(c *gin.Context) {
	req, ok := bindCartRequest(c)
	if !ok {
		return
	}
	h.act(c, func(v *flow.Vendor) error {
		if req.Quantity != nil {
			return v.SetQuantity(req.ProductID, *req.Quantity)
		}
		return v.Adjust(req.ProductID, *req.Delta)
	})
}

func (h *vendorHandlers) checkout(c *gin.Context) {
	h.act(c, (*flow.Vendor).ProceedToPickup)
}

type placeOrderRequest struct {
	PickupSlot string `json:"pickupSlot"`
}

func (h *vendorHandlers) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.act(c, func(v *flow.Vendor) error { return v.PlaceOrder(req.PickupSlot) })
}

func (h *vendorHandlers) pastOrders(c *gin.Context) {
	h.act(c, (*flow.Vendor).ShowPastOrders)
}

type reorderRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

func (h *vendorHandlers) reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.act(c, func(v *flow.Vendor) error { return v.Reorder(req.OrderID) })
}

func (h *vendorHandlers) callbackRequest(c *gin.Context) {
	h.act(c, (*flow.Vendor).RequestCallback)
}

func (h *vendorHandlers) back(c *gin.Context) {
	h.act(c, (*flow.Vendor).Back)
}

func (h *vendorHandlers) home(c *gin.Context) {
	h.act(c, (*flow.Vendor).GoHome)
}

// act runs one action under the session lock and renders the resulting
// snapshot.
func (h *vendorHandlers) act(c *gin.Context, fn func(*flow.Vendor) error) {
	var snap flow.VendorSnapshot
	err := h.sessions.with(c.Param("id"), func(v *flow.Vendor) error {
		if err := fn(v); err != nil {
			return err
		}
		snap = v.Snapshot()
		return nil
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func bindCartRequest(c *gin.Context) (cartRequest, bool) {
	var req cartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return req, false
	}
	if req.Quantity == nil && req.Delta == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: errorBody{
			Code:    "bad_request",
			Message: "either quantity or delta is required",
		}})
		return req, false
	}
	return req, true
}
