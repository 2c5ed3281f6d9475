package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// /api/order のリクエストボディ。
// totalと各明細のpriceはクライアント申告値（サーバーで再計算しない）。
type orderRequest struct {
	Total float64            `json:"total"`
	Items []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	ID       int64   `json:"id"` //vinyl_id
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
}

type orderResponse struct {
	Success bool  `json:"success"`
	OrderID int64 `json:"order_id"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, sessionMW echo.MiddlewareFunc) {
	e.POST("/api/order", h.place, sessionMW)
}

// POST /api/order
func (h *OrderHandler) place(c echo.Context) error {
	userID, ok := c.Get(middleware.CtxUserIDKey).(int64)
	if !ok || userID <= 0 {
		return fail(c, "not authenticated")
	}

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, "invalid request")
	}

	items := make([]usecase.OrderLineInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.OrderLineInput{
			VinylID:  it.ID,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}

	orderID, err := h.uc.PlaceOrder(c.Request().Context(), userID, usecase.PlaceOrderInput{
		Total: req.Total,
		Items: items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponse{Success: true, OrderID: orderID})
}
