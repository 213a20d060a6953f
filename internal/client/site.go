package client

import (
	"context"
	"encoding/json"
)

// CreateSite initializes the instance's site configuration.
func (c *Client) CreateSite(ctx context.Context, name string, form SiteForm) (json.RawMessage, error) {
	params, err := paramsFromStruct(form)
	if err != nil {
		return nil, err
	}
	params["name"] = name
	return c.post(ctx, "/site", params)
}

// EditSite edits the instance's site configuration.
func (c *Client) EditSite(ctx context.Context, form SiteForm) (json.RawMessage, error) {
	params, err := paramsFromStruct(form)
	if err != nil {
		return nil, err
	}
	return c.put(ctx, "/site", params)
}

// GetFederatedInstances lists instances federated with this one.
func (c *Client) GetFederatedInstances(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/federated_instances", nil)
}

// GetModlog obtains the moderation log.
func (c *Client) GetModlog(ctx context.Context, form GetModlogForm) (json.RawMessage, error) {
	params, err := paramsFromStruct(form)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "/modlog", params)
}

// GetSite returns instance-level site info.
func (c *Client) GetSite(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/site", nil)
}

// ResolveObject resolves a remote ActivityPub object by query.
func (c *Client) ResolveObject(ctx context.Context, q string) (json.RawMessage, error) {
	return c.get(ctx, "/resolve_object", Params{"q": q})
}

// Search searches the instance.
func (c *Client) Search(ctx context.Context, form SearchForm) (json.RawMessage, error) {
	params, err := paramsFromStruct(form)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, "/search", params)
}
