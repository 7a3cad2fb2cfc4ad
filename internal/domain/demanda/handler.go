package demanda

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
		g.POST("/demandas-inducidas", h.Create)
		g.GET("/pacientes/:id/demandas-inducidas", h.ListByPaciente)
		g.GET("/usuarios/:id/demandas-asignadas", h.ListAsignadas)
		g.PATCH("/demandas-inducidas/:id/estado", h.UpdateEstado)

		// Legacy Demandas surface kept for older clients.
		g.GET("/demandas/asignadas", h.LegacyListActivas)
		g.POST("/planes-cuidado/:id/demanda", h.LegacyCreate)
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
		"success":    true,
		"demanda_id": id,
		"message":    "Demanda inducida creada exitosamente",
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
		items = []*Demanda{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListAsignadas(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	items, err := h.svc.ListAsignadas(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Demanda{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateEstado(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in EstadoInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d, err := h.svc.UpdateEstado(c.Request().Context(), id, &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) LegacyListActivas(c echo.Context) error {
	if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Token requerido")
	}
	items, err := h.svc.LegacyListActivas(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*LegacyDemanda{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) LegacyCreate(c echo.Context) error {
	planID, err := idParam(c)
	if err != nil {
		return err
	}
	var in LegacyInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.LegacyCreate(c.Request().Context(), planID, &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]int64{"demanda_id": id})
}
