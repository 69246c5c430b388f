package tradedesk

import (
	"context"
	"encoding/json"
	"net/url"
)

// GetSitelist fetches a single site list by id.
func (c *Client) GetSitelist(ctx context.Context, sitelistID string) (json.RawMessage, error) {
	return c.Get(ctx, "sitelist/"+url.PathEscape(sitelistID))
}

// QuerySitelists returns a Paginator over the site lists matching the query,
// typically {"AdvertiserId": "..."}.
func (c *Client) QuerySitelists(query map[string]any, opts ...PageOption) *Paginator {
	return c.NewPaginator("sitelist/query/advertiser", query, opts...)
}

// DeltaSitelists returns a Paginator over site list changes for an
// advertiser. Unlike the campaign and ad group delta endpoints, this one is
// paginated with the regular PageStartIndex/PageSize scheme.
func (c *Client) DeltaSitelists(query map[string]any, opts ...PageOption) *Paginator {
	return c.NewPaginator("delta/sitelist/query/advertiser", query, opts...)
}
