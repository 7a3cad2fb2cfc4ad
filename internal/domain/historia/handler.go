package historia

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
		g.POST("/demandas/:id/historia-clinica", h.Create)
		g.GET("/pacientes/:id/historias-clinicas", h.ListByPaciente)
		g.POST("/historias-clinicas/:id/orden-lab", h.CreateOrdenLab)
		g.POST("/pacientes/:id/receta", h.CreateReceta)
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
	demandaID, err := idParam(c)
	if err != nil {
		return err
	}
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.Create(c.Request().Context(), demandaID, &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]int64{"historia_clinica_id": id})
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
		items = []*Historia{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateOrdenLab(c echo.Context) error {
	historiaID, err := idParam(c)
	if err != nil {
		return err
	}
	var in OrdenLabInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.CreateOrdenLab(c.Request().Context(), historiaID, &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]int64{"orden_lab_id": id})
}

func (h *Handler) CreateReceta(c echo.Context) error {
	pacienteID, err := idParam(c)
	if err != nil {
		return err
	}
	var in RecetaInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, err := h.svc.CreateReceta(c.Request().Context(), pacienteID, &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]int64{"receta_id": id})
}
