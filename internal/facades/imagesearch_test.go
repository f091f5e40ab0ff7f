package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageSearchFacade_SearchImageURL(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		var gotQuery url.Values

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]string{
					{"link": "https://example.com/widget.png"},
				},
			})
		}))
		defer srv.Close()

		f := NewImageSearchFacade(srv.URL, "api-key", "engine-id", srv.Client())

		link, err := f.SearchImageURL(ctx, "Widget")
		assert.NoError(t, err)
		assert.Equal(t, "https://example.com/widget.png", link)

		assert.Equal(t, "Widget product marketing image", gotQuery.Get("q"))
		assert.Equal(t, "engine-id", gotQuery.Get("cx"))
		assert.Equal(t, "api-key", gotQuery.Get("key"))
		assert.Equal(t, "image", gotQuery.Get("searchType"))
		assert.Equal(t, "1", gotQuery.Get("num"))
	})

	t.Run("NoResults", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{})
		}))
		defer srv.Close()

		f := NewImageSearchFacade(srv.URL, "api-key", "engine-id", srv.Client())

		link, err := f.SearchImageURL(ctx, "obscure thing")
		assert.NoError(t, err)
		assert.Empty(t, link)
	})

	t.Run("Non200Status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		f := NewImageSearchFacade(srv.URL, "api-key", "engine-id", srv.Client())

		_, err := f.SearchImageURL(ctx, "Widget")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("ProviderUnreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		f := NewImageSearchFacade(srv.URL, "api-key", "engine-id", nil)

		_, err := f.SearchImageURL(ctx, "Widget")
		assert.Error(t, err)
	})
}
