package reporte

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Alssex/Proyecto-salud/internal/platform/apperr"
)

// Handler serves the report routes straight from the repository; there is no
// validation or defaulting worth a service layer here.
type Handler struct {
	reportes Repository
}

func NewHandler(reportes Repository) *Handler {
	return &Handler{reportes: reportes}
}

func (h *Handler) RegisterRoutes(groups ...*echo.Group) {
	for _, g := range groups {
		g.GET("/reportes/epidemiologico", h.Epidemiologico)
		g.GET("/reportes/productividad", h.Productividad)
	}
}

func rango(c echo.Context) *Rango {
	return &Rango{
		FechaDesde: c.QueryParam("fecha_desde"),
		FechaHasta: c.QueryParam("fecha_hasta"),
	}
}

func (h *Handler) Epidemiologico(c echo.Context) error {
	e, err := h.reportes.Epidemiologico(c.Request().Context(), rango(c))
	if err != nil {
		return apperr.Persistence("reporte epidemiológico", err)
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler) Productividad(c echo.Context) error {
	var usuarioID int64
	if raw := c.QueryParam("usuario_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "usuario_id inválido")
		}
		usuarioID = id
	}
	items, err := h.reportes.Productividad(c.Request().Context(), usuarioID, rango(c))
	if err != nil {
		return apperr.Persistence("reporte productividad", err)
	}
	if items == nil {
		items = []*Productividad{}
	}
	return c.JSON(http.StatusOK, items)
}
