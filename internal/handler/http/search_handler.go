package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"lemmy-ingestion/internal/ingest"
)

type SearchHandler struct {
	svc ingest.Service
}

func NewSearchHandler(svc ingest.Service) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search godoc
// @Summary Search the Lemmy instance
// @Description Runs an instance search over posts, comments and communities
// @Tags search
// @Accept json
// @Produce json
// @Param q query string true "Search query"
// @Param community query string false "Restrict to a community"
// @Param sort query string false "Result sort"
// @Param listing_type query string false "All, Community, Local, Subscribed"
// @Param type query string false "All, Comments, Communities, Posts, Url, Users"
// @Param limit query int false "Maximum number of results"
// @Param page query int false "Page of results"
// @Success 200 {object} models.SearchResult
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /search [get]
func (h *SearchHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `q` parameter")
	}

	opts := ingest.SearchOptions{
		Community:   c.QueryParam("community"),
		Sort:        c.QueryParam("sort"),
		ListingType: c.QueryParam("listing_type"),
		Type:        c.QueryParam("type"),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid `limit` parameter")
		}
		opts.Limit = parsed
	}
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid `page` parameter")
		}
		opts.Page = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 300*time.Second)
	defer cancel()

	startTime := time.Now()
	result, err := h.svc.Search(ctx, query, opts)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	result.Meta.Query = query
	result.Meta.Count = len(result.Posts) + len(result.Comments) + len(result.Communities)
	result.Meta.ProcessingTimeMs = time.Since(startTime).Milliseconds()

	return c.JSON(http.StatusOK, result)
}
