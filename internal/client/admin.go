package client

import (
	"context"
	"encoding/json"
)

// AddAdmin adds or removes an instance admin.
func (c *Client) AddAdmin(ctx context.Context, added bool, personID int64) (json.RawMessage, error) {
	return c.post(ctx, "/admin/add", Params{
		"added":     added,
		"person_id": personID,
	})
}

// ApproveRegistrationApplication approves or denies a registration
// application.
func (c *Client) ApproveRegistrationApplication(ctx context.Context, approve bool, id int64, denyReason *string) (json.RawMessage, error) {
	return c.put(ctx, "/admin/registration_application/approve", Params{
		"approve":     approve,
		"id":          id,
		"deny_reason": denyReason,
	})
}

// GetUnreadRegistrationApplicationCount returns the number of unread
// registration applications.
func (c *Client) GetUnreadRegistrationApplicationCount(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/admin/registration_application/count", nil)
}

// ListRegistrationApplications lists registration applications.
func (c *Client) ListRegistrationApplications(ctx context.Context, limit, page *int64, unreadOnly *bool) (json.RawMessage, error) {
	return c.get(ctx, "/admin/registration_application/list", Params{
		"limit":       limit,
		"page":        page,
		"unread_only": unreadOnly,
	})
}

// PurgeComment permanently deletes a comment and its data.
func (c *Client) PurgeComment(ctx context.Context, commentID int64, reason *string) (json.RawMessage, error) {
	return c.post(ctx, "/admin/purge/comment", Params{
		"comment_id": commentID,
		"reason":     reason,
	})
}

// PurgeCommunity permanently deletes a community and its data.
func (c *Client) PurgeCommunity(ctx context.Context, communityID int64, reason *string) (json.RawMessage, error) {
	return c.post(ctx, "/admin/purge/community", Params{
		"community_id": communityID,
		"reason":       reason,
	})
}

// PurgePerson permanently deletes a person and their data.
func (c *Client) PurgePerson(ctx context.Context, personID int64, reason *string) (json.RawMessage, error) {
	return c.post(ctx, "/admin/purge/person", Params{
		"person_id": personID,
		"reason":    reason,
	})
}

// PurgePost permanently deletes a post and its data.
func (c *Client) PurgePost(ctx context.Context, postID int64, reason *string) (json.RawMessage, error) {
	return c.post(ctx, "/admin/purge/post", Params{
		"post_id": postID,
		"reason":  reason,
	})
}

// CreateCustomEmoji creates a custom emoji for the site.
func (c *Client) CreateCustomEmoji(ctx context.Context, altText, category, imageURL string, keywords []string, shortcode string) (json.RawMessage, error) {
	return c.post(ctx, "/custom_emoji", Params{
		"alt_text":  altText,
		"category":  category,
		"image_url": imageURL,
		"keywords":  keywords,
		"shortcode": shortcode,
	})
}

// EditCustomEmoji edits a custom emoji.
func (c *Client) EditCustomEmoji(ctx context.Context, altText, category string, id int64, imageURL string, keywords []string) (json.RawMessage, error) {
	return c.put(ctx, "/custom_emoji", Params{
		"alt_text":  altText,
		"category":  category,
		"id":        id,
		"image_url": imageURL,
		"keywords":  keywords,
	})
}

// DeleteCustomEmoji deletes a custom emoji.
func (c *Client) DeleteCustomEmoji(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.post(ctx, "/custom_emoji/delete", Params{"id": id})
}
