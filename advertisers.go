package tradedesk

// QueryAdvertisers returns a Paginator over the advertisers of a partner,
// typically queried with {"PartnerId": "..."}.
func (c *Client) QueryAdvertisers(query map[string]any, opts ...PageOption) *Paginator {
	return c.NewPaginator("advertiser/query/partner", query, opts...)
}
