package bitacora

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Alssex/Proyecto-salud/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(groups ...*echo.Group) {
	for _, g := range groups {
		g.POST("/bitacoras", h.Create)
		g.GET("/bitacoras", h.Search)
	}
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.Create(c.Request().Context(), &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]int64{"bitacora_id": id})
}

func (h *Handler) Search(c echo.Context) error {
	var f Filter
	if raw := c.QueryParam("usuario_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "usuario_id inválido")
		}
		f.UsuarioID = id
	}
	f.TipoActividad = c.QueryParam("tipo_actividad")
	f.FechaDesde = c.QueryParam("fecha_desde")
	f.FechaHasta = c.QueryParam("fecha_hasta")
	if c.QueryParam("limit") != "" || c.QueryParam("offset") != "" {
		p := pagination.FromContext(c)
		f.Limit = p.Limit
		f.Offset = p.Offset
	}

	items, err := h.svc.Search(c.Request().Context(), &f)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Bitacora{}
	}
	return c.JSON(http.StatusOK, items)
}
