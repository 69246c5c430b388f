package tradedesk

import (
	"context"
	"encoding/json"
	"net/url"
)

// CreateCampaign creates a campaign. The payload is passed through to the
// vendor unchanged; the response body is returned verbatim.
func (c *Client) CreateCampaign(ctx context.Context, payload any) (json.RawMessage, error) {
	return c.Post(ctx, "campaign", payload)
}

// UpdateCampaign updates an existing campaign.
func (c *Client) UpdateCampaign(ctx context.Context, payload any) (json.RawMessage, error) {
	return c.Put(ctx, "campaign", payload)
}

// GetCampaignTemplate fetches the creation template for an existing campaign.
func (c *Client) GetCampaignTemplate(ctx context.Context, campaignID string) (json.RawMessage, error) {
	return c.Get(ctx, "campaign/template/"+url.PathEscape(campaignID))
}

// DeltaCampaigns returns one page of campaign changes for an advertiser.
// Pass 0 as sinceVersion to start from the beginning, or the TrackingVersion
// of the previous page to continue; keep calling while More is set.
func (c *Client) DeltaCampaigns(ctx context.Context, advertiserID string, sinceVersion int64) (*DeltaPage, error) {
	payload := deltaPayload(advertiserID, "ReturnEntireCampaign", sinceVersion)
	return c.deltaQuery(ctx, "delta/campaign/query/advertiser", payload, "Campaigns")
}
