//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"
	"testing"
	"time"
)

var baseURL = getenv("E2E_BASE_URL", "http://localhost:8080")

// Requires the compose stack (storefront + postgres) to be up.
func TestSystem_CartSurvivesRestart(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/readyz")

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	c := &http.Client{Jar: jar, Timeout: 5 * time.Second}

	var products []map[string]any
	doJSON(t, c, http.MethodGet, baseURL+"/products", nil, &products, 200)
	if len(products) == 0 {
		t.Fatalf("expected non-empty catalog")
	}

	item := map[string]any{
		"product_id":  int(products[0]["id"].(float64)),
		"title":       products[0]["title"],
		"artist":      products[0]["artist"],
		"price_cents": products[0]["price_cents"],
		"image":       products[0]["image"],
	}

	var view struct {
		Items      []map[string]any `json:"items"`
		TotalCents int64            `json:"total_cents"`
	}
	doJSON(t, c, http.MethodPost, baseURL+"/cart/items", item, &view, 200)
	doJSON(t, c, http.MethodPost, baseURL+"/cart/items", item, &view, 200)
	if len(view.Items) != 1 {
		t.Fatalf("cart items=%d, want 1", len(view.Items))
	}
	wantTotal := view.TotalCents

	restartStorefrontContainer(t, ctx)
	waitReady(t, ctx, baseURL+"/readyz")

	doJSON(t, c, http.MethodGet, baseURL+"/cart", nil, &view, 200)
	if len(view.Items) != 1 || view.TotalCents != wantTotal {
		t.Fatalf("cart after restart: items=%d total=%d, want 1/%d", len(view.Items), view.TotalCents, wantTotal)
	}

	doJSON(t, c, http.MethodDelete, baseURL+"/cart", nil, &view, 200)
	if len(view.Items) != 0 {
		t.Fatalf("cart not empty after clear")
	}
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()

	for {
		select {
		case <-ctx.Done():
			t.Fatalf("service never became ready: %v", ctx.Err())
		default:
		}

		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
}

func doJSON(t *testing.T, c *http.Client, method, url string, body, out any, wantStatus int) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("do %s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s: status=%d, want %d, body=%s", method, url, resp.StatusCode, wantStatus, raw)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
