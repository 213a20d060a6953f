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

type PostHandler struct {
	svc ingest.Service
}

func NewPostHandler(svc ingest.Service) *PostHandler {
	return &PostHandler{svc: svc}
}

// GetPostDetail godoc
// @Summary Get a Lemmy post with comments
// @Description Retrieves a post and its comment tree. post_id may be numeric or a shortcode.
// @Tags post
// @Accept json
// @Produce json
// @Param post_id query string true "Lemmy post ID or shortcode"
// @Success 200 {object} models.PostDetail
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /post [get]
func (h *PostHandler) GetPostDetail(c echo.Context) error {
	raw := c.QueryParam("post_id")
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `post_id` parameter")
	}

	postID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		id, serr := models.IDFromShortcode(raw)
		if serr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid `post_id`: not a numeric ID or shortcode")
		}
		postID = int64(id)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 300*time.Second)
	defer cancel()

	detail, err := h.svc.PostDetail(ctx, postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, detail)
}
