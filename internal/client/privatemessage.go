package client

import (
	"context"
	"encoding/json"
)

// CreatePrivateMessage sends a private message to a user.
func (c *Client) CreatePrivateMessage(ctx context.Context, content string, recipientID int64) (json.RawMessage, error) {
	return c.post(ctx, "/private_message", Params{
		"content":      content,
		"recipient_id": recipientID,
	})
}

// CreatePrivateMessageReport reports a private message.
func (c *Client) CreatePrivateMessageReport(ctx context.Context, privateMessageID int64, reason string) (json.RawMessage, error) {
	return c.post(ctx, "/private_message_report", Params{
		"private_message_id": privateMessageID,
		"reason":             reason,
	})
}

// DeletePrivateMessage marks a private message deleted (or restores it).
func (c *Client) DeletePrivateMessage(ctx context.Context, deleted bool, privateMessageID int64) (json.RawMessage, error) {
	return c.post(ctx, "/private_message/delete", Params{
		"deleted":            deleted,
		"private_message_id": privateMessageID,
	})
}

// EditPrivateMessage edits a private message.
func (c *Client) EditPrivateMessage(ctx context.Context, content string, privateMessageID int64) (json.RawMessage, error) {
	return c.put(ctx, "/private_message", Params{
		"content":            content,
		"private_message_id": privateMessageID,
	})
}

// GetPrivateMessages lists private messages for the current user.
func (c *Client) GetPrivateMessages(ctx context.Context, limit, page *int64, unreadOnly *bool) (json.RawMessage, error) {
	return c.get(ctx, "/private_message/list", Params{
		"limit":       limit,
		"page":        page,
		"unread_only": unreadOnly,
	})
}

// ListPrivateMessageReports lists private message reports.
func (c *Client) ListPrivateMessageReports(ctx context.Context, limit, page *int64, unresolvedOnly *bool) (json.RawMessage, error) {
	return c.get(ctx, "/private_message/report/list", Params{
		"limit":           limit,
		"page":            page,
		"unresolved_only": unresolvedOnly,
	})
}

// MarkPrivateMessageAsRead marks a private message as read.
func (c *Client) MarkPrivateMessageAsRead(ctx context.Context, privateMessageID int64, read bool) (json.RawMessage, error) {
	return c.post(ctx, "/private_message/mark_as_read", Params{
		"private_message_id": privateMessageID,
		"read":               read,
	})
}

// ResolvePrivateMessageReport resolves a private message report.
func (c *Client) ResolvePrivateMessageReport(ctx context.Context, reportID int64, resolved bool) (json.RawMessage, error) {
	return c.put(ctx, "/private_message/report/resolve", Params{
		"report_id": reportID,
		"resolved":  resolved,
	})
}
