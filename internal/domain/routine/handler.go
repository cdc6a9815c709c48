package routine

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wellness/wellness/internal/platform/auth"
	"github.com/wellness/wellness/internal/platform/web"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/routines", h.List)
	api.POST("/routines", h.Create)
	api.DELETE("/routines/:id", h.Delete)
	api.PATCH("/routines/:id/completed", h.SetCompleted)
	api.GET("/routines/activities", h.Activities)
}

func (h *Handler) Create(c echo.Context) error {
	var draft Draft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	userID := auth.UserIDFromContext(c.Request().Context())
	rt, err := h.svc.Add(c.Request().Context(), userID, draft)
	if err != nil {
		return web.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, rt)
}

func (h *Handler) List(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	items, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		return web.HTTPError(err)
	}
	if items == nil {
		items = []*Routine{}
	}
	return c.JSON(http.StatusOK, items)
}

type completedRequest struct {
	IsCompleted bool `json:"is_completed"`
}

func (h *Handler) SetCompleted(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req completedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	userID := auth.UserIDFromContext(c.Request().Context())
	if err := h.svc.SetCompleted(c.Request().Context(), userID, id, req.IsCompleted); err != nil {
		return web.HTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
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

// Activities serves the built-in suggestions for ?category=.
func (h *Handler) Activities(c echo.Context) error {
	category := Category(c.QueryParam("category"))
	if !category.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown category")
	}
	return c.JSON(http.StatusOK, ActivitiesFor(category))
}
