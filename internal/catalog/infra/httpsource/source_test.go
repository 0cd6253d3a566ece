package httpsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetch(t *testing.T) {
	t.Run("decodes product array", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":1,"name":"Test","category":"book","price":45,"image":"x","featured":true}]`))
		}))
		defer srv.Close()

		products, err := New(srv.URL, time.Second).Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}
		if len(products) != 1 || products[0].ID != 1 || products[0].Name != "Test" {
			t.Fatalf("unexpected products: %+v", products)
		}
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		if _, err := New(srv.URL, time.Second).Fetch(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"an array"`))
		}))
		defer srv.Close()

		if _, err := New(srv.URL, time.Second).Fetch(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})
}
