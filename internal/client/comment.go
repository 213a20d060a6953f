package client

import (
	"context"
	"encoding/json"
)

// CreateComment creates a comment on a post; parentID replies to an
// existing comment.
func (c *Client) CreateComment(ctx context.Context, content string, postID int64, formID *string, languageID, parentID *int64) (json.RawMessage, error) {
	return c.post(ctx, "/comment", Params{
		"content":     content,
		"post_id":     postID,
		"form_id":     formID,
		"language_id": languageID,
		"parent_id":   parentID,
	})
}

// CreateCommentReport reports a comment.
func (c *Client) CreateCommentReport(ctx context.Context, commentID int64, reason string) (json.RawMessage, error) {
	return c.post(ctx, "/comment/report", Params{
		"comment_id": commentID,
		"reason":     reason,
	})
}

// DeleteComment marks a comment deleted (or restores it).
func (c *Client) DeleteComment(ctx context.Context, commentID int64, deleted bool) (json.RawMessage, error) {
	return c.post(ctx, "/comment/delete", Params{
		"comment_id": commentID,
		"deleted":    deleted,
	})
}

// DistinguishComment highlights a comment as a moderator action.
func (c *Client) DistinguishComment(ctx context.Context, commentID int64, distinguished bool) (json.RawMessage, error) {
	return c.post(ctx, "/comment/distinguish", Params{
		"comment_id":    commentID,
		"distinguished": distinguished,
	})
}

// EditComment edits an existing comment.
func (c *Client) EditComment(ctx context.Context, commentID int64, content, formID *string, languageID *int64) (json.RawMessage, error) {
	return c.put(ctx, "/comment", Params{
		"comment_id":  commentID,
		"content":     content,
		"form_id":     formID,
		"language_id": languageID,
	})
}

// GetComment obtains a single comment by ID.
func (c *Client) GetComment(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.get(ctx, "/comment", Params{"id": id})
}

// GetComments lists comments filtered by form.
func (c *Client) GetComments(ctx context.Context, form GetCommentsForm) (json.RawMessage, error) {
	params, err := paramsFromStruct(form)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "/comment/list", params)
}

// LikeComment casts a vote on a comment: +1, -1 or 0.
func (c *Client) LikeComment(ctx context.Context, commentID, score int64) (json.RawMessage, error) {
	return c.post(ctx, "/comment/like", Params{
		"comment_id": commentID,
		"score":      score,
	})
}

// ListCommentReports lists comment reports.
func (c *Client) ListCommentReports(ctx context.Context, communityID, limit, page *int64, unresolvedOnly *bool) (json.RawMessage, error) {
	return c.get(ctx, "/comment/report/list", Params{
		"community_id":    communityID,
		"limit":           limit,
		"page":            page,
		"unresolved_only": unresolvedOnly,
	})
}

// MarkCommentReplyAsRead marks a comment reply as read.
func (c *Client) MarkCommentReplyAsRead(ctx context.Context, commentReplyID int64, read bool) (json.RawMessage, error) {
	return c.post(ctx, "/comment/mark_as_read", Params{
		"comment_reply_id": commentReplyID,
		"read":             read,
	})
}

// RemoveComment removes a comment as a moderator action.
func (c *Client) RemoveComment(ctx context.Context, commentID int64, removed bool, reason *string) (json.RawMessage, error) {
	return c.post(ctx, "/comment/remove", Params{
		"comment_id": commentID,
		"removed":    removed,
		"reason":     reason,
	})
}

// ResolveCommentReport resolves a comment report.
func (c *Client) ResolveCommentReport(ctx context.Context, reportID int64, resolved bool) (json.RawMessage, error) {
	return c.put(ctx, "/comment/report/resolve", Params{
		"report_id": reportID,
		"resolved":  resolved,
	})
}

// SaveComment saves (bookmarks) a comment for the current user.
func (c *Client) SaveComment(ctx context.Context, commentID int64, save bool) (json.RawMessage, error) {
	return c.put(ctx, "/comment/save", Params{
		"comment_id": commentID,
		"save":       save,
	})
}
