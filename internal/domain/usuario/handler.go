package usuario

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Alssex/Proyecto-salud/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the user routes on each group. requireAuth is applied
// to /usuarios/me at route level so the profile lookup works on groups that
// carry no group-wide auth.
func (h *Handler) RegisterRoutes(requireAuth echo.MiddlewareFunc, groups ...*echo.Group) {
	for _, g := range groups {
		g.POST("/auth/login", h.Login)
		g.POST("/token", h.Token)
		g.GET("/usuarios", h.List)
		g.GET("/usuarios/me", h.Me, requireAuth)
		g.GET("/usuarios/:id", h.Get)
		g.GET("/usuarios/rol/:rol", h.ListByRol)
		g.GET("/roles", h.ListRoles)
		g.GET("/equipos", h.ListEquipos)
		g.GET("/equipos/:id/usuarios", h.ListByEquipo)
	}
}

func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id inválido")
	}
	return id, nil
}

func (h *Handler) Login(c echo.Context) error {
	var cred Credenciales
	if err := c.Bind(&cred); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	u, err := h.svc.Login(c.Request().Context(), &cred)
	if errors.Is(err, ErrCredencialesInvalidas) {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    u.Perfil(),
	})
}

func (h *Handler) Token(c echo.Context) error {
	var cred Credenciales
	if err := c.Bind(&cred); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	token, u, err := h.svc.IssueToken(c.Request().Context(), &cred)
	if errors.Is(err, ErrCredencialesInvalidas) {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  u.Perfil(),
	})
}

// Me returns the profile of the authenticated caller. It relies on the auth
// middleware having stored the identity on the context.
func (h *Handler) Me(c echo.Context) error {
	id, ok := auth.IdentityFromContext(c.Request().Context())
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "token requerido")
	}
	u, err := h.svc.Get(c.Request().Context(), id.UsuarioID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	u, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Usuario{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListByRol(c echo.Context) error {
	items, err := h.svc.ListByRol(c.Request().Context(), c.Param("rol"))
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Usuario{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListByEquipo(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	items, err := h.svc.ListByEquipo(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Usuario{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListRoles(c echo.Context) error {
	items, err := h.svc.ListRoles(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Rol{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListEquipos(c echo.Context) error {
	items, err := h.svc.ListEquipos(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Equipo{}
	}
	return c.JSON(http.StatusOK, items)
}
