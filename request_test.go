package tradedesk_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tradedesk"
)

func TestDo(t *testing.T) {
	t.Parallel()

	t.Run("payload and response round-trip as JSON", func(t *testing.T) {
		t.Parallel()

		var authCalls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("/v3/authentication", authHandler(&authCalls, "abc"))
		mux.HandleFunc("/v3/campaign", func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"CampaignName":"Foo","Budget":{"Amount":100,"CurrencyCode":"USD"}}`, string(body))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			fmt.Fprint(w, `{"CampaignId":"xyz","CampaignName":"Foo"}`)
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		client := newTestClient(t, srv.URL+"/v3/")

		resp, err := client.Do(context.Background(), http.MethodPost, "campaign", map[string]any{
			"CampaignName": "Foo",
			"Budget":       map[string]any{"Amount": 100, "CurrencyCode": "USD"},
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"CampaignId":"xyz","CampaignName":"Foo"}`, string(resp))
	})

	t.Run("identical requests reuse the valid token", func(t *testing.T) {
		t.Parallel()

		var authCalls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("/v3/authentication", authHandler(&authCalls, "abc"))
		mux.HandleFunc("/v3/sitelist/s1", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"SiteListId":"s1"}`)
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		client := newTestClient(t, srv.URL+"/v3/")
		ctx := context.Background()

		first, err := client.Do(ctx, http.MethodGet, "sitelist/s1", nil)
		require.NoError(t, err)
		second, err := client.Do(ctx, http.MethodGet, "sitelist/s1", nil)
		require.NoError(t, err)

		assert.Equal(t, int32(1), authCalls.Load())
		assert.JSONEq(t, string(first), string(second))
	})

	t.Run("non-success status surfaces as APIError without retry", func(t *testing.T) {
		t.Parallel()

		var authCalls, resourceCalls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("/v3/authentication", authHandler(&authCalls, "abc"))
		mux.HandleFunc("/v3/campaign", func(w http.ResponseWriter, r *http.Request) {
			resourceCalls.Add(1)
			http.Error(w, `{"Message":"internal error"}`, http.StatusInternalServerError)
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		client := newTestClient(t, srv.URL+"/v3/")

		resp, err := client.Post(context.Background(), "campaign", map[string]any{"CampaignName": "Foo"})
		assert.Nil(t, resp)
		require.Error(t, err)

		var apiErr *tradedesk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Contains(t, string(apiErr.Body), "internal error")

		assert.Equal(t, int32(1), resourceCalls.Load())
	})

	t.Run("connectivity failure surfaces as TransportError", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		baseURL := srv.URL + "/v3/"
		srv.Close()

		client := newTestClient(t, baseURL)

		_, err := client.Get(context.Background(), "campaign")
		require.Error(t, err)

		var transportErr *tradedesk.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Error(t, transportErr.Unwrap())
	})

	t.Run("method helpers route correctly", func(t *testing.T) {
		t.Parallel()

		var authCalls atomic.Int32
		var methods []string
		mux := http.NewServeMux()
		mux.HandleFunc("/v3/authentication", authHandler(&authCalls, "abc"))
		mux.HandleFunc("/v3/campaign", func(w http.ResponseWriter, r *http.Request) {
			methods = append(methods, r.Method)
			fmt.Fprint(w, `{}`)
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		client := newTestClient(t, srv.URL+"/v3/")
		ctx := context.Background()

		_, err := client.Get(ctx, "campaign")
		require.NoError(t, err)
		_, err = client.Post(ctx, "campaign", map[string]any{"a": 1})
		require.NoError(t, err)
		_, err = client.Put(ctx, "campaign", map[string]any{"a": 1})
		require.NoError(t, err)

		assert.Equal(t, []string{http.MethodGet, http.MethodPost, http.MethodPut}, methods)
	})

	t.Run("nil payload sends no body", func(t *testing.T) {
		t.Parallel()

		var authCalls atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("/v3/authentication", authHandler(&authCalls, "abc"))
		mux.HandleFunc("/v3/campaign", func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.Empty(t, body)
			assert.Empty(t, r.Header.Get("Content-Type"))
			fmt.Fprint(w, `{}`)
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		client := newTestClient(t, srv.URL+"/v3/")

		_, err := client.Get(context.Background(), "campaign")
		require.NoError(t, err)
	})

	t.Run("unencodable payload is rejected", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"Token":"abc"}`)
		}))
		defer srv.Close()

		client := newTestClient(t, srv.URL+"/v3/")

		_, err := client.Post(context.Background(), "campaign", map[string]any{"bad": make(chan int)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "encode request payload")
	})
}
