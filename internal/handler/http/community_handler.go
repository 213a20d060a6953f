package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"lemmy-ingestion/internal/ingest"
	"lemmy-ingestion/internal/models"
)

type CommunityHandler struct {
	svc ingest.Service
}

func NewCommunityHandler(svc ingest.Service) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

// GetCommunityPosts godoc
// @Summary Get a Lemmy community with its posts
// @Description Retrieves a community profile and a page of its posts from the configured Lemmy instance
// @Tags community
// @Accept json
// @Produce json
// @Param name query string true "Community name"
// @Param limit query int false "Maximum number of posts to return"
// @Param sort query string false "Post sort (Active, Hot, New, Old, TopDay, ...)"
// @Success 200 {object} models.CommunityPosts
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /community [get]
func (h *CommunityHandler) GetCommunityPosts(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `name` parameter")
	}

	var limit int64
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid `limit` parameter")
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 300*time.Second)
	defer cancel()

	startTime := time.Now()
	info, posts, err := h.svc.CommunityPosts(ctx, name, limit, c.QueryParam("sort"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	resp := models.CommunityPosts{
		Community: info,
		Posts:     posts,
	}
	resp.Meta.RequestedLimit = limit
	resp.Meta.ActualCount = len(posts)
	resp.Meta.ProcessingTimeMs = time.Since(startTime).Milliseconds()

	return c.JSON(http.StatusOK, resp)
}
