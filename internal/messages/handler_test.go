package messages_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/legaltender/intake/internal/messages"
	"github.com/legaltender/intake/pkg/pagination"
	"github.com/legaltender/intake/pkg/routes"
)

func newTestServer(t *testing.T, sys messages.System) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler().Routes())

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHandlerClassify(t *testing.T) {
	text := "Please reschedule my consultation"
	gen := &stubGenerator{
		classify: map[string]string{text: classifiedAs("scheduling", 0.9, "Mike Chen")},
	}
	srv := newTestServer(t, newSystem(gen, messages.Options{}))

	t.Run("created", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/classify", messages.ClassifyCommand{Text: text})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want 201", resp.StatusCode)
		}

		m := decode[messages.Message](t, resp)
		if m.Status != messages.StatusClassified {
			t.Errorf("status = %s, want classified", m.Status)
		}
		if m.Author != "Mike Chen" {
			t.Errorf("author = %q, want Mike Chen", m.Author)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/classify", messages.ClassifyCommand{Text: "  "})
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/classify", "application/json", bytes.NewReader([]byte("{")))
		if err != nil {
			t.Fatalf("post failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestHandlerMessages(t *testing.T) {
	text := "Please reschedule my consultation"
	gen := &stubGenerator{
		classify: map[string]string{text: classifiedAs("scheduling", 0.9, "Mike Chen")},
		draft:    map[string]string{text: schedulingDrafted("Mike Chen", 0.95)},
	}
	sys := newSystem(gen, messages.Options{})
	srv := newTestServer(t, sys)

	m := mustClassify(t, sys, text)

	t.Run("list", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/messages")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		page := decode[pagination.PageResult[messages.Message]](t, resp)
		if page.Total != 1 {
			t.Errorf("total = %d, want 1", page.Total)
		}
	})

	t.Run("find", func(t *testing.T) {
		resp, err := http.Get(fmt.Sprintf("%s/messages/%s", srv.URL, m.ID))
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("find unknown id", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/messages/00000000-0000-0000-0000-000000000001")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})

	t.Run("find malformed id", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/messages/not-a-uuid")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("generate draft", func(t *testing.T) {
		resp := postJSON(t, fmt.Sprintf("%s/generate_draft/%s", srv.URL, m.ID), nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		drafted := decode[messages.Message](t, resp)
		if drafted.Status != messages.StatusDraftReady {
			t.Errorf("status = %s, want draft_ready", drafted.Status)
		}
	})

	t.Run("decision", func(t *testing.T) {
		resp := postJSON(t, fmt.Sprintf("%s/decision/%s", srv.URL, m.ID), messages.DecisionCommand{Action: "approve"})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		decided := decode[messages.Message](t, resp)
		if decided.Status != messages.StatusApproved {
			t.Errorf("status = %s, want approved", decided.Status)
		}
	})

	t.Run("conflicting decision", func(t *testing.T) {
		resp := postJSON(t, fmt.Sprintf("%s/decision/%s", srv.URL, m.ID), messages.DecisionCommand{Action: "reject"})
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("status = %d, want 409", resp.StatusCode)
		}
	})

	t.Run("invalid action", func(t *testing.T) {
		resp := postJSON(t, fmt.Sprintf("%s/decision/%s", srv.URL, m.ID), messages.DecisionCommand{Action: "escalate"})
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestHandlerBulk(t *testing.T) {
	text := "Please reschedule my consultation"
	gen := &stubGenerator{
		classify: map[string]string{text: classifiedAs("scheduling", 0.9, "Mike Chen")},
		draft:    map[string]string{text: schedulingDrafted("Mike Chen", 0.95)},
	}
	srv := newTestServer(t, newSystem(gen, messages.Options{}))

	t.Run("processed", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/process_bulk", messages.BulkCommand{Messages: []string{text}})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		result := decode[messages.BulkResult](t, resp)
		if result.Successful != 1 {
			t.Errorf("successful = %d, want 1", result.Successful)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/process_bulk", messages.BulkCommand{})
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestHandlerSamplesAndStats(t *testing.T) {
	srv := newTestServer(t, newSystem(&stubGenerator{}, messages.Options{}))

	t.Run("samples", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/generate_test_messages")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		samples := decode[[]string](t, resp)
		if len(samples) == 0 {
			t.Error("samples must not be empty")
		}
	})

	t.Run("stats", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/stats")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		stats := decode[messages.Stats](t, resp)
		if stats.TotalMessages != 0 {
			t.Errorf("total = %d, want 0", stats.TotalMessages)
		}
	})
}
