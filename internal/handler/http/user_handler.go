package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"lemmy-ingestion/internal/ingest"
)

type UserHandler struct {
	svc ingest.Service
}

func NewUserHandler(svc ingest.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetUserActivity godoc
// @Summary Get a Lemmy user's profile and activity
// @Description Retrieves profile information, recent posts and recent comments for a user
// @Tags user
// @Accept json
// @Produce json
// @Param username query string true "Username"
// @Param limit query int false "Maximum number of posts/comments to return"
// @Success 200 {object} models.UserActivity
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /user [get]
func (h *UserHandler) GetUserActivity(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing `username` parameter")
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

	activity, err := h.svc.UserActivity(ctx, username, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, activity)
}
