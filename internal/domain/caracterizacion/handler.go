package caracterizacion

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
		g.POST("/caracterizaciones", h.Replace)
		g.GET("/familias/:id/caracterizacion", h.GetByFamilia)

		// Reduced survey kept for older clients.
		g.POST("/familias/:id/caracterizacion", h.LegacyCreate)
		g.PUT("/caracterizaciones/:id", h.LegacyUpdate)
	}
}

func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id inválido")
	}
	return id, nil
}

func (h *Handler) Replace(c echo.Context) error {
	var in ReplaceInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	n, err := h.svc.Replace(c.Request().Context(), &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":                true,
		"message":                "Caracterización creada exitosamente",
		"familia_id":             in.FamiliaID,
		"integrantes_procesados": n,
	})
}

func (h *Handler) GetByFamilia(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	res, err := h.svc.GetByFamilia(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
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
	return c.JSON(http.StatusCreated, map[string]int64{"caracterizacion_id": id})
}

func (h *Handler) LegacyUpdate(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var in LegacyInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.LegacyUpdate(c.Request().Context(), id, &in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"caracterizacion_id": id})
}
