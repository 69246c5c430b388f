package tradedesk

import (
	"context"
	"encoding/json"
)

// CreateAdGroup creates an ad group. The payload is passed through to the
// vendor unchanged.
func (c *Client) CreateAdGroup(ctx context.Context, payload any) (json.RawMessage, error) {
	return c.Post(ctx, "adgroup", payload)
}

// UpdateAdGroup updates an existing ad group.
func (c *Client) UpdateAdGroup(ctx context.Context, payload any) (json.RawMessage, error) {
	return c.Put(ctx, "adgroup", payload)
}

// DeltaAdGroups returns one page of ad group changes for an advertiser.
// Cursor semantics match DeltaCampaigns.
func (c *Client) DeltaAdGroups(ctx context.Context, advertiserID string, sinceVersion int64) (*DeltaPage, error) {
	payload := deltaPayload(advertiserID, "ReturnEntireAdgroup", sinceVersion)
	return c.deltaQuery(ctx, "delta/adgroup/query/advertiser", payload, "AdGroups")
}
