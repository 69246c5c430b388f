package tradedesk

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
)

const defaultPageSize = 100

// PageOption configures a Paginator.
type PageOption func(*Paginator)

// WithPageSize sets the number of items requested per page. Default is 100.
func WithPageSize(n int) PageOption {
	return func(p *Paginator) {
		if n > 0 {
			p.pageSize = n
		}
	}
}

// WithPageStart sets the index the first page starts from. Default is 0.
func WithPageStart(n int) PageOption {
	return func(p *Paginator) {
		if n >= 0 {
			p.pageStart = n
		}
	}
}

// Paginator walks a POST query endpoint page by page, in the sql.Rows style:
//
//	pager := client.QuerySitelists(map[string]any{"AdvertiserId": "abc"})
//	for pager.Next(ctx) {
//	    for _, item := range pager.Items() { ... }
//	}
//	if err := pager.Err(); err != nil { ... }
//
// Each call to Next injects PageStartIndex and PageSize into the query
// payload and fetches one page. Iteration ends after a page with fewer items
// than the page size.
type Paginator struct {
	client    *Client
	path      string
	query     map[string]any
	pageStart int
	pageSize  int

	page  json.RawMessage
	items []json.RawMessage
	err   error
	done  bool
}

// NewPaginator creates a Paginator over the given POST query endpoint.
// The query payload is copied; the caller's map is not mutated.
func (c *Client) NewPaginator(path string, query map[string]any, opts ...PageOption) *Paginator {
	p := &Paginator{
		client:   c,
		path:     path,
		query:    maps.Clone(query),
		pageSize: defaultPageSize,
	}
	if p.query == nil {
		p.query = make(map[string]any)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Next fetches the next page. It returns false when iteration is finished or
// a page could not be fetched; check Err afterwards to tell the two apart.
func (p *Paginator) Next(ctx context.Context) bool {
	if p.done || p.err != nil {
		return false
	}

	p.query["PageStartIndex"] = p.pageStart
	p.query["PageSize"] = p.pageSize

	raw, err := p.client.Post(ctx, p.path, p.query)
	if err != nil {
		p.err = err
		return false
	}

	var page struct {
		Result []json.RawMessage `json:"Result"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		p.err = fmt.Errorf("tradedesk: decode page: %w", err)
		return false
	}

	p.page = raw
	p.items = page.Result
	if len(page.Result) < p.pageSize {
		p.done = true
	} else {
		p.pageStart += p.pageSize
	}
	return true
}

// Items returns the items of the current page (the Result array).
func (p *Paginator) Items() []json.RawMessage { return p.items }

// Page returns the raw JSON body of the current page, including any fields
// outside the Result array.
func (p *Paginator) Page() json.RawMessage { return p.page }

// Err returns the first error encountered during iteration, if any.
func (p *Paginator) Err() error { return p.err }
