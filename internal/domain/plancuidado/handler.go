package plancuidado

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(groups ...*echo.Group) {
	for _, g := range groups {
		g.POST("/planes-cuidado", h.Create)
		g.GET("/pacientes/:id/planes-cuidado", h.ListByPaciente)

		// Narrative care plan kept for older clients.
		g.POST("/familias/:id/plan-cuidado", h.LegacyCreate)
	}
}

func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id inválido")
	}
	return id, nil
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
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"plan_id": id,
		"message": "Plan de cuidado creado exitosamente",
	})
}

func (h *Handler) ListByPaciente(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	items, err := h.svc.ListByPaciente(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Plan{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) LegacyCreate(c echo.Context) error {
	familiaID, err := idParam(c)
	if err != nil {
		return err
	}
	var in LegacyInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.LegacyCreate(c.Request().Context(), familiaID, &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]int64{"plan_cuidado_id": id})
}
