package parser

import (
	"context"
	"encoding/json"

	"lemmy-ingestion/internal/models"
)

// Parser defines the interface for turning raw Lemmy API responses into
// ingestion models.
type Parser interface {
	ParsePosts(ctx context.Context, data json.RawMessage) ([]models.Post, error)
	ParsePost(ctx context.Context, postData, commentData json.RawMessage) (models.PostDetail, error)
	ParsePersonDetails(ctx context.Context, data json.RawMessage) (models.UserActivity, error)
	ParseCommunity(ctx context.Context, data json.RawMessage) (models.CommunityInfo, error)
	ParseSearch(ctx context.Context, data json.RawMessage) (models.SearchResult, error)
}
