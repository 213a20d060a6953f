package client

import (
	"context"
	"encoding/json"
)

// LemmyAPI is the subset of the client surface consumed by the ingestion
// service; the full endpoint set lives on *Client.
type LemmyAPI interface {
	GetPosts(ctx context.Context, form GetPostsForm) (json.RawMessage, error)
	GetPost(ctx context.Context, commentID, id *int64) (json.RawMessage, error)
	GetComments(ctx context.Context, form GetCommentsForm) (json.RawMessage, error)
	GetPersonDetails(ctx context.Context, form GetPersonDetailsForm) (json.RawMessage, error)
	GetCommunity(ctx context.Context, id *int64, name *string) (json.RawMessage, error)
	Search(ctx context.Context, form SearchForm) (json.RawMessage, error)
}
