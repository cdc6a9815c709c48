package water

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wellness/wellness/internal/platform/auth"
	"github.com/wellness/wellness/internal/platform/web"
	"github.com/wellness/wellness/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/water-intake", h.List)
	api.GET("/water-intake/latest", h.Latest)
	api.POST("/water-intake", h.Create)
	api.DELETE("/water-intake/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var draft Draft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	userID := auth.UserIDFromContext(c.Request().Context())
	w, err := h.svc.Record(c.Request().Context(), userID, draft)
	if err != nil {
		return web.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, w)
}

func (h *Handler) Latest(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	w, err := h.svc.Latest(c.Request().Context(), userID)
	if err != nil {
		return web.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]*Intake{"record": w})
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	userID := auth.UserIDFromContext(c.Request().Context())
	items, total, err := h.svc.History(c.Request().Context(), userID, pg.Limit, pg.Offset)
	if err != nil {
		return web.HTTPError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	userID := auth.UserIDFromContext(c.Request().Context())
	if err := h.svc.Delete(c.Request().Context(), userID, id); err != nil {
		return web.HTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
