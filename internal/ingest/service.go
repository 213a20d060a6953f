package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"lemmy-ingestion/internal/client"
	"lemmy-ingestion/internal/models"
	"lemmy-ingestion/internal/parser"
)

const (
	// Maximum page size accepted by the Lemmy API.
	apiPageLimit = 50
	maxPages     = 20
)

// Service defines the interface for ingesting Lemmy content.
type Service interface {
	CommunityPosts(ctx context.Context, community string, limit int64, sort string) (models.CommunityInfo, []models.Post, error)
	UserActivity(ctx context.Context, username string, limit int64) (models.UserActivity, error)
	PostDetail(ctx context.Context, postID int64) (models.PostDetail, error)
	Search(ctx context.Context, query string, opts SearchOptions) (models.SearchResult, error)
}

// SearchOptions narrows a search request; zero values mean "let the
// instance decide".
type SearchOptions struct {
	Community   string
	Sort        string
	ListingType string
	Type        string
	Limit       int64
	Page        int64
}

type ingestService struct {
	client              client.LemmyAPI
	parser              parser.Parser
	defaultPostLimit    int64
	defaultCommentLimit int64
	logger              zerolog.Logger
}

func NewService(api client.LemmyAPI, p parser.Parser, defaultPostLimit, defaultCommentLimit int64, logger zerolog.Logger) Service {
	return &ingestService{
		client:              api,
		parser:              p,
		defaultPostLimit:    defaultPostLimit,
		defaultCommentLimit: defaultCommentLimit,
		logger:              logger,
	}
}

// CommunityPosts retrieves the community profile and up to limit of its
// newest-listed posts, paging through the API as needed.
func (s *ingestService) CommunityPosts(ctx context.Context, community string, limit int64, sort string) (models.CommunityInfo, []models.Post, error) {
	startTime := time.Now()

	if limit <= 0 {
		limit = s.defaultPostLimit
	}

	raw, err := s.client.GetCommunity(ctx, nil, &community)
	if err != nil {
		return models.CommunityInfo{}, nil, fmt.Errorf("fetch community: %w", err)
	}
	info, err := s.parser.ParseCommunity(ctx, raw)
	if err != nil {
		return models.CommunityInfo{}, nil, fmt.Errorf("parse community: %w", err)
	}

	var posts []models.Post
	for page := int64(1); page <= maxPages && int64(len(posts)) < limit; page++ {
		if ctx.Err() != nil {
			return info, posts, ctx.Err()
		}

		pageLimit := limit - int64(len(posts))
		if pageLimit > apiPageLimit {
			pageLimit = apiPageLimit
		}

		form := client.GetPostsForm{
			CommunityName: &community,
			Limit:         &pageLimit,
			Page:          client.Ptr(page),
		}
		if sort != "" {
			form.Sort = &sort
		}

		raw, err := s.client.GetPosts(ctx, form)
		if err != nil {
			return info, nil, fmt.Errorf("fetch community posts: %w", err)
		}

		pagePosts, err := s.parser.ParsePosts(ctx, raw)
		if err != nil {
			return info, nil, fmt.Errorf("parse community posts: %w", err)
		}

		posts = append(posts, pagePosts...)

		s.logger.Debug().
			Str("community", community).
			Int64("page", page).
			Int("posts", len(pagePosts)).
			Msg("fetched community page")

		if int64(len(pagePosts)) < pageLimit {
			break
		}
	}

	s.logger.Info().
		Str("community", community).
		Int("posts", len(posts)).
		Dur("elapsed", time.Since(startTime)).
		Msg("community ingestion complete")

	return info, posts, nil
}

// UserActivity retrieves a user's profile together with their recent posts
// and comments.
func (s *ingestService) UserActivity(ctx context.Context, username string, limit int64) (models.UserActivity, error) {
	if limit <= 0 {
		limit = s.defaultPostLimit
	}
	if limit > apiPageLimit {
		limit = apiPageLimit
	}

	raw, err := s.client.GetPersonDetails(ctx, client.GetPersonDetailsForm{
		Username: &username,
		Limit:    &limit,
	})
	if err != nil {
		return models.UserActivity{}, fmt.Errorf("fetch user activity: %w", err)
	}

	activity, err := s.parser.ParsePersonDetails(ctx, raw)
	if err != nil {
		return models.UserActivity{}, fmt.Errorf("parse user activity: %w", err)
	}

	s.logger.Info().
		Str("username", username).
		Int("posts", len(activity.Posts)).
		Int("comments", len(activity.Comments)).
		Msg("user ingestion complete")

	return activity, nil
}

// PostDetail retrieves a post and its comment tree.
func (s *ingestService) PostDetail(ctx context.Context, postID int64) (models.PostDetail, error) {
	postRaw, err := s.client.GetPost(ctx, nil, &postID)
	if err != nil {
		return models.PostDetail{}, fmt.Errorf("fetch post: %w", err)
	}

	commentRaw, err := s.client.GetComments(ctx, client.GetCommentsForm{
		PostID:   &postID,
		Limit:    &s.defaultCommentLimit,
		MaxDepth: client.Ptr(int64(8)),
		Type:     client.Ptr("All"),
	})
	if err != nil {
		return models.PostDetail{}, fmt.Errorf("fetch post comments: %w", err)
	}

	detail, err := s.parser.ParsePost(ctx, postRaw, commentRaw)
	if err != nil {
		return models.PostDetail{}, fmt.Errorf("parse post: %w", err)
	}

	s.logger.Info().
		Int64("post_id", postID).
		Int("comments", len(detail.Comments)).
		Msg("post ingestion complete")

	return detail, nil
}

// Search runs an instance search and flattens the mixed result set.
func (s *ingestService) Search(ctx context.Context, query string, opts SearchOptions) (models.SearchResult, error) {
	form := client.SearchForm{Q: query}
	if opts.Community != "" {
		form.CommunityName = &opts.Community
	}
	if opts.Sort != "" {
		form.Sort = &opts.Sort
	}
	if opts.ListingType != "" {
		form.ListingType = &opts.ListingType
	}
	if opts.Type != "" {
		form.Type = &opts.Type
	}
	if opts.Limit > 0 {
		form.Limit = &opts.Limit
	}
	if opts.Page > 0 {
		form.Page = &opts.Page
	}

	raw, err := s.client.Search(ctx, form)
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("search: %w", err)
	}

	result, err := s.parser.ParseSearch(ctx, raw)
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("parse search: %w", err)
	}

	s.logger.Info().
		Str("query", query).
		Int("posts", len(result.Posts)).
		Msg("search complete")

	return result, nil
}
