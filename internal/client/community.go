package client

import (
	"context"
	"encoding/json"
)

// AddModToCommunity adds or removes a user on a community's mod list.
func (c *Client) AddModToCommunity(ctx context.Context, added bool, communityID, personID int64) (json.RawMessage, error) {
	return c.post(ctx, "/community/mod", Params{
		"added":        added,
		"community_id": communityID,
		"person_id":    personID,
	})
}

// BanFromCommunity bans or unbans a user from a community. expires is a ban
// expiry in UNIX seconds; removeData also removes the user's content.
func (c *Client) BanFromCommunity(ctx context.Context, ban bool, communityID, personID int64, expires *int64, reason *string, removeData *bool) (json.RawMessage, error) {
	return c.post(ctx, "/community/ban_user", Params{
		"ban":          ban,
		"community_id": communityID,
		"person_id":    personID,
		"expires":      expires,
		"reason":       reason,
		"remove_data":  removeData,
	})
}

// BlockCommunity blocks a community for the current user.
func (c *Client) BlockCommunity(ctx context.Context, block bool, communityID int64) (json.RawMessage, error) {
	return c.post(ctx, "/community/block", Params{
		"block":        block,
		"community_id": communityID,
	})
}

// CreateCommunity creates a community on the instance.
func (c *Client) CreateCommunity(ctx context.Context, form CreateCommunityForm) (json.RawMessage, error) {
	params, err := paramsFromStruct(form)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, "/community", params)
}

// DeleteCommunity marks a community deleted (or restores it).
func (c *Client) DeleteCommunity(ctx context.Context, communityID int64, deleted bool) (json.RawMessage, error) {
	return c.post(ctx, "/community/delete", Params{
		"community_id": communityID,
		"deleted":      deleted,
	})
}

// EditCommunity edits a community's information.
func (c *Client) EditCommunity(ctx context.Context, form EditCommunityForm) (json.RawMessage, error) {
	params, err := paramsFromStruct(form)
	if err != nil {
		return nil, err
	}
	return c.put(ctx, "/community", params)
}

// FollowCommunity subscribes or unsubscribes the current user.
func (c *Client) FollowCommunity(ctx context.Context, communityID int64, follow bool) (json.RawMessage, error) {
	return c.post(ctx, "/community/follow", Params{
		"community_id": communityID,
		"follow":       follow,
	})
}

// GetCommunity obtains a community by ID or name.
func (c *Client) GetCommunity(ctx context.Context, id *int64, name *string) (json.RawMessage, error) {
	return c.get(ctx, "/community", Params{
		"id":   id,
		"name": name,
	})
}

// ListCommunities lists communities on the instance.
func (c *Client) ListCommunities(ctx context.Context, limit, page *int64, sort, listingType *string) (json.RawMessage, error) {
	return c.get(ctx, "/community/list", Params{
		"limit": limit,
		"page":  page,
		"sort":  sort,
		"type_": listingType,
	})
}

// RemoveCommunity removes a community as an admin action.
func (c *Client) RemoveCommunity(ctx context.Context, communityID int64, removed bool, expires *int64, reason *string) (json.RawMessage, error) {
	return c.post(ctx, "/community/remove", Params{
		"community_id": communityID,
		"removed":      removed,
		"expires":      expires,
		"reason":       reason,
	})
}

// TransferCommunity transfers ownership of a community.
func (c *Client) TransferCommunity(ctx context.Context, communityID, personID int64) (json.RawMessage, error) {
	return c.post(ctx, "/community/transfer", Params{
		"community_id": communityID,
		"person_id":    personID,
	})
}
