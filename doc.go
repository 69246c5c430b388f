// Package tradedesk is a client for The Trade Desk REST API (v3).
//
// The client maintains one reusable HTTP connection, obtains a session token
// from the vendor's authentication endpoint, and re-authenticates
// transparently whenever the token is missing or expired. Every request
// carries the current token in the TTD-Auth header.
//
// # Usage
//
//	client, err := tradedesk.New(tradedesk.Config{
//	    Login:    "api-user",
//	    Password: "secret",
//	    BaseURL:  tradedesk.SandboxBaseURL, // defaults to production
//	    TokenTTL: 90 * time.Minute,
//	})
//	if err != nil {
//	    // Handle configuration error
//	}
//	defer client.Close()
//
//	resp, err := client.CreateCampaign(ctx, map[string]any{
//	    "CampaignName": "Spring Sale",
//	    "AdvertiserId": "abc123",
//	})
//
// Credentials can also come from the environment (TTD_LOGIN, TTD_PASSWORD,
// TTD_BASE_URL) via NewFromEnv, which honors a local .env file.
//
// Endpoints without a dedicated method are reachable through the generic
// calls:
//
//	resp, err := client.Post(ctx, "contract/query/partner", payload)
//
// # Pagination
//
// Query endpoints page with PageStartIndex/PageSize. The Paginator walks
// them in the sql.Rows style:
//
//	pager := client.QueryAdvertisers(map[string]any{"PartnerId": "p1"})
//	for pager.Next(ctx) {
//	    for _, item := range pager.Items() {
//	        // item is one advertiser as raw JSON
//	    }
//	}
//	if err := pager.Err(); err != nil {
//	    // Handle error
//	}
//
// # Token lifecycle
//
// The vendor issues tokens with a caller-requested lifetime and does not
// echo an expiry back, so the client tracks expiry locally: issuance time
// plus TokenTTL, minus RefreshMargin. The validity check runs before every
// request; an expired or absent token triggers exactly one synchronous
// login. Requests themselves are never retried.
//
// # Error Handling
//
// Failures map to three types, all checkable with errors.As:
//
//   - *AuthenticationError: the login call failed
//   - *APIError: a resource call returned a non-success status
//   - *TransportError: connectivity-level failure, wrapping the cause
//
// Constructor validation failures wrap the ErrInvalidConfig sentinel.
package tradedesk
