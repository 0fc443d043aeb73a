package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type logLine struct {
	Level  string         `json:"level"`
	Action string         `json:"action"`
	Fields map[string]any `json:"fields"`
}

type lockedBuf struct {
	b  *bytes.Buffer
	mu *sync.Mutex
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func captureLogs(t *testing.T, fn func()) []logLine {
	t.Helper()
	var buf bytes.Buffer
	var mu sync.Mutex
	oldW := log.Writer()
	oldFlags := log.Flags()
	log.SetOutput(&lockedBuf{b: &buf, mu: &mu})
	log.SetFlags(0)
	defer func() {
		log.SetOutput(oldW)
		log.SetFlags(oldFlags)
	}()

	fn()

	var entries []logLine
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var e logLine
		if err := json.Unmarshal([]byte(line), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

// A filled honeypot renders the success page without recording anything,
// and leaves a security log behind.
func TestHoneypotSilentDrop(t *testing.T) {
	app, db := newValidationApp(t)
	csrfTok := csrfToken(t, app)

	var resp *http.Response
	entries := captureLogs(t, func() {
		form := strings.NewReader("csrf=" + csrfTok + "&website=spam&name=Bot&email=bot@spam.test")
		req := httptest.NewRequest("POST", "/contact", form)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
		var err error
		resp, err = app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("honeypot should look like success, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Demande envoyée") {
		t.Fatalf("expected success page; body=%s", body)
	}

	found := false
	for _, e := range entries {
		if e.Action == "contact.honeypot" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected contact.honeypot log")
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM inquiries`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("honeypot submission must not be recorded, got %d inquiries", n)
	}
}

// A real submission leaves an audit trail and a stored inquiry.
func TestSubmitAuditLog(t *testing.T) {
	app, db := newValidationApp(t)
	csrfTok := csrfToken(t, app)

	entries := captureLogs(t, func() {
		form := strings.NewReader("csrf=" + csrfTok + "&name=Alice+Martin&email=alice@example.com&message=Devis+urgent")
		req := httptest.NewRequest("POST", "/contact", form)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
		resp, err := app.Test(req, 10000)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			t.Fatalf("submit expected 200, got %d body=%s", resp.StatusCode, body)
		}
	})

	found := false
	for _, e := range entries {
		if e.Level == "audit" && e.Action == "inquiry.submit" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected inquiry.submit audit log")
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM inquiries`); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("want 1 stored inquiry, got %d", n)
	}
}
