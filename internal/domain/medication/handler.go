package medication

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
	api.GET("/medications", h.List)
	api.POST("/medications", h.Create)
	api.DELETE("/medications/:id", h.Delete)
	api.GET("/medication-catalog", h.Catalog)
}

func (h *Handler) Create(c echo.Context) error {
	var draft Draft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	userID := auth.UserIDFromContext(c.Request().Context())
	m, err := h.svc.Add(c.Request().Context(), userID, draft)
	if err != nil {
		return web.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) List(c echo.Context) error {
	userID := auth.UserIDFromContext(c.Request().Context())
	items, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		return web.HTTPError(err)
	}
	if items == nil {
		items = []*Medication{}
	}
	return c.JSON(http.StatusOK, items)
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

// Catalog serves the reference options, optionally filtered by ?category=.
// An unknown category filter is a client error rather than an empty result.
func (h *Handler) Catalog(c echo.Context) error {
	category := Category(c.QueryParam("category"))
	if category != "" && !category.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown category")
	}
	userID := auth.UserIDFromContext(c.Request().Context())
	options, err := h.svc.CatalogOptions(c.Request().Context(), userID, category)
	if err != nil {
		return web.HTTPError(err)
	}
	if options == nil {
		options = []*CatalogOption{}
	}
	return c.JSON(http.StatusOK, options)
}
