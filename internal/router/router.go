package router

import (
	"lemmy-ingestion/internal/handler/http"
	"lemmy-ingestion/internal/ingest"

	"github.com/labstack/echo/v4"
)

func NewRouter(e *echo.Echo, svc ingest.Service) {
	com := http.NewCommunityHandler(svc)
	usr := http.NewUserHandler(svc)
	pst := http.NewPostHandler(svc)
	sch := http.NewSearchHandler(svc)

	e.GET("/community", com.GetCommunityPosts)
	e.GET("/user", usr.GetUserActivity)
	e.GET("/post", pst.GetPostDetail)
	e.GET("/search", sch.Search)
}
