package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// End-to-end cart flow over HTTP: add twice, check the badge count, view
// the selection, set a quantity, clear.
func TestQuoteFlowOverHTTP(t *testing.T) {
	app, _ := newValidationApp(t)
	csrfTok := csrfToken(t, app)

	post := func(path, body, sid string) *http.Response {
		t.Helper()
		req := httptest.NewRequest("POST", path, strings.NewReader("csrf="+csrfTok+"&"+body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
		if sid != "" {
			req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		return resp
	}

	// First add mints the session cookie
	resp := post("/quote/items", "productId=prd-gel&slug=gel-hydroalcoolique", "")
	if resp.StatusCode != http.StatusFound {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("add expected redirect, got %d body=%s", resp.StatusCode, body)
	}
	sid := extractCookie(resp, "sid")
	if sid == "" {
		t.Fatal("sid not set after add")
	}

	// Second add of the same product bumps the quantity
	post("/quote/items", "productId=prd-gel&slug=gel-hydroalcoolique", sid)

	// Badge count reflects summed quantities
	req := httptest.NewRequest("GET", "/api/v1/quote/count", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	cresp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	var payload struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(cresp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if payload.Count != 2 {
		t.Fatalf("want badge count 2, got %d", payload.Count)
	}

	// The cart page shows the snapshot name
	req = httptest.NewRequest("GET", "/quote", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	vresp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(vresp.Body)
	if !strings.Contains(string(body), "Gel Hydroalcoolique 5L") {
		t.Fatalf("cart page missing product name; body=%s", body)
	}

	// Setting quantity to zero removes the line
	post("/quote/items/quantity", "productId=prd-gel&qty=0", sid)
	req = httptest.NewRequest("GET", "/api/v1/quote/count", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	cresp, _ = app.Test(req)
	payload.Count = -1
	_ = json.NewDecoder(cresp.Body).Decode(&payload)
	if payload.Count != 0 {
		t.Fatalf("want 0 after qty=0, got %d", payload.Count)
	}
}

// The add form degrades to posted display fields when the slug lookup
// fails, so an outage of the content store doesn't break the cart.
func TestQuoteAddFallbackSnapshot(t *testing.T) {
	app, _ := newValidationApp(t)
	csrfTok := csrfToken(t, app)

	form := strings.NewReader("csrf=" + csrfTok + "&productId=prd-inconnu&slug=pas-dans-le-catalogue&name=Produit+Inconnu")
	req := httptest.NewRequest("POST", "/quote/items", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	sid := extractCookie(resp, "sid")

	vreq := httptest.NewRequest("GET", "/quote", nil)
	vreq.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	vresp, err := app.Test(vreq)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(vresp.Body)
	if !strings.Contains(string(body), "Produit Inconnu") {
		t.Fatalf("fallback snapshot name missing; body=%s", body)
	}
}
