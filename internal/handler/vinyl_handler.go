package handler

import (
	"net/http"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type VinylHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewVinylHandler(uc *usecase.CatalogUsecase) *VinylHandler {
	return &VinylHandler{uc: uc}
}

// カタログAPIのレスポンス1件分
type vinylJSON struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Artist string  `json:"artist"`
	Genre  string  `json:"genre"`
	Price  float64 `json:"price"`
	Stock  int64   `json:"stock"`
}

// /api/add_vinyl のリクエストボディ。stockは受け取らない（常に固定値）。
type addVinylRequest struct {
	Title  string  `json:"title"`
	Artist string  `json:"artist"`
	Genre  string  `json:"genre"`
	Price  float64 `json:"price"`
}

func (h *VinylHandler) RegisterRoutes(e *echo.Echo, sessionMW echo.MiddlewareFunc, adminMW echo.MiddlewareFunc) {
	e.GET("/api/vinyls", h.list)
	e.POST("/api/add_vinyl", h.add, sessionMW, adminMW)
}

// GET /api/vinyls
func (h *VinylHandler) list(c echo.Context) error {
	vinyls, err := h.uc.ListVinyls(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	out := make([]vinylJSON, 0, len(vinyls))
	for _, v := range vinyls {
		out = append(out, toVinylJSON(v))
	}
	return c.JSON(http.StatusOK, out)
}

// POST /api/add_vinyl
func (h *VinylHandler) add(c echo.Context) error {
	var req addVinylRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, "invalid request")
	}

	_, err := h.uc.AddVinyl(c.Request().Context(), usecase.AddVinylInput{
		Title:  req.Title,
		Artist: req.Artist,
		Genre:  req.Genre,
		Price:  req.Price,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OKResponse{Success: true})
}

func toVinylJSON(v model.Vinyl) vinylJSON {
	return vinylJSON{
		ID:     v.ID,
		Title:  v.Title,
		Artist: v.Artist,
		Genre:  v.Genre,
		Price:  v.Price,
		Stock:  v.Stock,
	}
}
