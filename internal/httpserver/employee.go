package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freshstock/internal/flow"
)

type employeeHandlers struct {
	deps     flow.Deps
	sessions *sessions[*flow.Employee]
}

func newEmployeeHandlers(deps flow.Deps) *employeeHandlers {
	return &employeeHandlers{deps: deps, sessions: newSessions[*flow.Employee]()}
}

type employeeSessionResponse struct {
	SessionID string                `json:"sessionId"`
	Snapshot  flow.EmployeeSnapshot `json:"snapshot"`
}

func (h *employeeHandlers) create(c *gin.Context) {
	e := flow.NewEmployee(h.deps)
	id := h.sessions.create(e)
	c.JSON(http.StatusCreated, employeeSessionResponse{SessionID: id, Snapshot: e.Snapshot()})
}

func (h *employeeHandlers) snapshot(c *gin.Context) {
	h.act(c, func(*flow.Employee) error { return nil })
}

// loginRequest deliberately has no required bindings; blank fields are
// the flow's ErrEmptyCredentials case, not a malformed request.
type loginRequest struct {
	OutletID string `json:"outletId"`
	Passkey  string `json:"passkey"`
}

func (h *employeeHandlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.act(c, func(e *flow.Employee) error { return e.Login(req.OutletID, req.Passkey) })
}

func (h *employeeHandlers) logout(c *gin.Context) {
	h.act(c, (*flow.Employee).Logout)
}

type navigateRequest struct {
	Screen flow.EmployeeScreen `json:"screen" binding:"required"`
}

func (h *employeeHandlers) navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.act(c, func(e *flow.Employee) error { return e.Navigate(req.Screen) })
}

type selectBasketRequest struct {
	BasketID string `json:"basketId" binding:"required"`
}

func (h *employeeHandlers) selectBasket(c *gin.Context) {
	var req selectBasketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.act(c, func(e *flow.Employee) error { return e.SelectBasket(req.BasketID) })
}

func (h *employeeHandlers) updateCart(c *gin.Context) {
	req, ok := bindCartRequest(c)
	if !ok {
		return
	}
	h.act(c, func(e *flow.Employee) error {
		if req.Quantity != nil {
			return e.SetQuantity(req.ProductID, *req.Quantity)
		}
		return e.Adjust(req.ProductID, *req.Delta)
	})
}

type bookOrderRequest struct {
	BookingTime string `json:"bookingTime"`
}

func (h *employeeHandlers) book(c *gin.Context) {
	var req bookOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.act(c, func(e *flow.Employee) error { return e.Book(req.BookingTime) })
}

type completeOrderRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

func (h *employeeHandlers) completeOrder(c *gin.Context) {
	var req completeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	h.act(c, func(e *flow.Employee) error { return e.CompleteOrder(req.OrderID) })
}

// stockRequest carries either an absolute count or a signed delta.
type stockRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Count     *int   `json:"count"`
	Delta     *int   `json:"delta"`
}

func (h *employeeHandlers) updateStock(c *gin.Context) {
	var req stockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if req.Count == nil && req.Delta == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: errorBody{
			Code:    "bad_request",
			Message: "either count or delta is required",
		}})
		return
	}
	h.act(c, func(e *flow.Employee) error {
		if req.Count != nil {
			return e.SetStockCount(req.ProductID, *req.Count)
		}
		return e.AdjustStock(req.ProductID, *req.Delta)
	})
}

func (h *employeeHandlers) done(c *gin.Context) {
	h.act(c, (*flow.Employee).Done)
}

func (h *employeeHandlers) back(c *gin.Context) {
	h.act(c, (*flow.Employee).Back)
}

func (h *employeeHandlers) act(c *gin.Context, fn func(*flow.Employee) error) {
	var snap flow.EmployeeSnapshot
	err := h.sessions.with(c.Param("id"), func(e *flow.Employee) error {
		if err := fn(e); err != nil {
			return err
		}
		snap = e.Snapshot()
		return nil
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
