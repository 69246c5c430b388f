package tradedesk

import (
	"context"
	"encoding/json"
	"fmt"
)

// DeltaPage is one page of a change-tracking query. TrackingVersion is the
// cursor to pass on the next call; More reports whether another page is
// available under that cursor.
type DeltaPage struct {
	Items           []json.RawMessage
	TrackingVersion int64
	More            bool
}

// deltaQuery runs one change-tracking request and decodes the common page
// envelope: the entity array, LastChangeTrackingVersion, and the
// More<Entity>Available flag.
func (c *Client) deltaQuery(ctx context.Context, path string, payload map[string]any, entity string) (*DeltaPage, error) {
	raw, err := c.Post(ctx, path, payload)
	if err != nil {
		return nil, err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("tradedesk: decode delta page: %w", err)
	}

	page := &DeltaPage{}
	if items, ok := envelope[entity]; ok {
		if err := json.Unmarshal(items, &page.Items); err != nil {
			return nil, fmt.Errorf("tradedesk: decode delta items: %w", err)
		}
	}
	if v, ok := envelope["LastChangeTrackingVersion"]; ok {
		if err := json.Unmarshal(v, &page.TrackingVersion); err != nil {
			return nil, fmt.Errorf("tradedesk: decode tracking version: %w", err)
		}
	}
	if more, ok := envelope["More"+entity+"Available"]; ok {
		if err := json.Unmarshal(more, &page.More); err != nil {
			return nil, fmt.Errorf("tradedesk: decode more flag: %w", err)
		}
	}
	return page, nil
}

// deltaPayload builds the request body shared by the delta endpoints.
// A zero sinceVersion is sent as null, which the vendor treats as "from the
// beginning".
func deltaPayload(advertiserID, returnField string, sinceVersion int64) map[string]any {
	payload := map[string]any{
		"AdvertiserId": advertiserID,
		returnField:    true,
	}
	if sinceVersion > 0 {
		payload["LastChangeTrackingVersion"] = sinceVersion
	} else {
		payload["LastChangeTrackingVersion"] = nil
	}
	return payload
}
