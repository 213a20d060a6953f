package client

import (
	"context"
	"encoding/json"
)

// CreatePost creates a post in a community.
func (c *Client) CreatePost(ctx context.Context, form CreatePostForm) (json.RawMessage, error) {
	params, err := paramsFromStruct(form)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, "/post", params)
}

// CreatePostReport reports a post.
func (c *Client) CreatePostReport(ctx context.Context, postID int64, reason string) (json.RawMessage, error) {
	return c.post(ctx, "/post/report", Params{
		"post_id": postID,
		"reason":  reason,
	})
}

// DeletePost marks a post deleted (or restores it).
func (c *Client) DeletePost(ctx context.Context, deleted bool, postID int64) (json.RawMessage, error) {
	return c.post(ctx, "/post/delete", Params{
		"deleted": deleted,
		"post_id": postID,
	})
}

// EditPost edits an existing post.
func (c *Client) EditPost(ctx context.Context, form EditPostForm) (json.RawMessage, error) {
	params, err := paramsFromStruct(form)
	if err != nil {
		return nil, err
	}
	return c.put(ctx, "/post", params)
}

// FeaturePost features a post. featureType is "Community" or "Local".
func (c *Client) FeaturePost(ctx context.Context, featureType string, featured bool, postID int64) (json.RawMessage, error) {
	return c.post(ctx, "/post/feature", Params{
		"feature_type": featureType,
		"featured":     featured,
		"post_id":      postID,
	})
}

// GetPost obtains a post by its ID or by the ID of one of its comments.
func (c *Client) GetPost(ctx context.Context, commentID, id *int64) (json.RawMessage, error) {
	return c.get(ctx, "/post", Params{
		"comment_id": commentID,
		"id":         id,
	})
}

// GetPosts lists posts filtered by form.
func (c *Client) GetPosts(ctx context.Context, form GetPostsForm) (json.RawMessage, error) {
	params, err := paramsFromStruct(form)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "/post/list", params)
}

// GetSiteMetadata fetches metadata for an arbitrary URL.
func (c *Client) GetSiteMetadata(ctx context.Context, url string) (json.RawMessage, error) {
	return c.get(ctx, "/post/site_metadata", Params{"url": url})
}

// LikePost casts a vote on a post: +1, -1 or 0.
func (c *Client) LikePost(ctx context.Context, postID, score int64) (json.RawMessage, error) {
	return c.post(ctx, "/post/like", Params{
		"post_id": postID,
		"score":   score,
	})
}

// ListPostReports lists post reports.
func (c *Client) ListPostReports(ctx context.Context, communityID, limit, page *int64, unresolvedOnly *bool) (json.RawMessage, error) {
	return c.get(ctx, "/post/report/list", Params{
		"community_id":    communityID,
		"limit":           limit,
		"page":            page,
		"unresolved_only": unresolvedOnly,
	})
}

// LockPost locks or unlocks a post.
func (c *Client) LockPost(ctx context.Context, locked bool, postID int64) (json.RawMessage, error) {
	return c.post(ctx, "/post/lock", Params{
		"locked":  locked,
		"post_id": postID,
	})
}

// MarkPostAsRead marks a post as read.
func (c *Client) MarkPostAsRead(ctx context.Context, postID int64, read bool) (json.RawMessage, error) {
	return c.post(ctx, "/post/mark_as_read", Params{
		"post_id": postID,
		"read":    read,
	})
}

// RemovePost removes a post as a moderator action.
func (c *Client) RemovePost(ctx context.Context, postID int64, removed bool, reason *string) (json.RawMessage, error) {
	return c.post(ctx, "/post/remove", Params{
		"post_id": postID,
		"removed": removed,
		"reason":  reason,
	})
}

// ResolvePostReport resolves a post report.
func (c *Client) ResolvePostReport(ctx context.Context, reportID int64, resolved bool) (json.RawMessage, error) {
	return c.put(ctx, "/post/report/resolve", Params{
		"report_id": reportID,
		"resolved":  resolved,
	})
}

// SavePost saves (bookmarks) a post for the current user.
func (c *Client) SavePost(ctx context.Context, postID int64, save bool) (json.RawMessage, error) {
	return c.put(ctx, "/post/save", Params{
		"post_id": postID,
		"save":    save,
	})
}
