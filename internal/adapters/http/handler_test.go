package httpadapter_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "github.com/cityhospital/assistant/internal/adapters/http"
	"github.com/cityhospital/assistant/internal/adapters/llm"
	"github.com/cityhospital/assistant/internal/adapters/storage/memory"
	"github.com/cityhospital/assistant/internal/app/classifier"
	"github.com/cityhospital/assistant/internal/app/conversation"
	"github.com/cityhospital/assistant/internal/app/records"
	"github.com/cityhospital/assistant/internal/app/store"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	stateStore := memory.NewStateStore()
	st := store.New(t.Context(), stateStore)
	cls := classifier.New(llm.NewMockLLM(), 0)

	convSvc := conversation.NewService(cls, st)
	recSvc := records.NewService(st)

	return httpadapter.NewServer(convSvc, recSvc, stateStore)
}

func doJSON(t *testing.T, srv http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestChatMessageFlow(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/chat/messages", []byte(`{"text":"delete report REP004"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		UserMessage struct {
			Sender string `json:"sender"`
		} `json:"user_message"`
		BotMessage struct {
			Intent   string `json:"intent"`
			Entities struct {
				ReportID *string `json:"reportId"`
			} `json:"entities"`
		} `json:"bot_message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.UserMessage.Sender != "user" {
		t.Fatalf("expected user sender, got %q", resp.UserMessage.Sender)
	}
	if resp.BotMessage.Intent != "DELETE_REPORT" {
		t.Fatalf("expected DELETE_REPORT, got %q", resp.BotMessage.Intent)
	}
	if resp.BotMessage.Entities.ReportID == nil || *resp.BotMessage.Entities.ReportID != "REP004" {
		t.Fatalf("expected reportId REP004, got %v", resp.BotMessage.Entities.ReportID)
	}

	// Empty text is a 400.
	w = doJSON(t, srv, http.MethodPost, "/chat/messages", []byte(`{"text":"  "}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestReportCRUD(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/reports/", []byte(`{"type":"Blood Test","patientName":"Jane Roe"}`))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID != "REP001" {
		t.Fatalf("expected generated id REP001, got %q", created.ID)
	}
	if created.Status != "Draft" {
		t.Fatalf("expected default Draft status, got %q", created.Status)
	}

	// Pre-fill read path.
	w = doJSON(t, srv, http.MethodGet, "/reports/REP001", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w = doJSON(t, srv, http.MethodGet, "/reports/REP999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	// Merge patch leaves other fields alone.
	w = doJSON(t, srv, http.MethodPatch, "/reports/REP001", []byte(`{"status":"Final"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var patched struct {
		Status      string `json:"status"`
		PatientName string `json:"patientName"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &patched); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if patched.Status != "Final" || patched.PatientName != "Jane Roe" {
		t.Fatalf("unexpected patched report: %+v", patched)
	}

	// Delete twice: both succeed.
	for i := 0; i < 2; i++ {
		w = doJSON(t, srv, http.MethodDelete, "/reports/REP001", nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	}
}

func TestVitalLevelDerivedOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/vitals/", []byte(`{"type":"Blood Pressure","value":"150/95","unit":"mmHg","level":"NORMAL"}`))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var v struct {
		Level string `json:"level"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if v.Level != "HIGH" {
		t.Fatalf("expected derived HIGH level, got %q", v.Level)
	}
}

func TestChatResetRestoresSeedGreeting(t *testing.T) {
	srv := newTestServer(t)

	doJSON(t, srv, http.MethodPost, "/chat/messages", []byte(`{"text":"hello"}`))

	w := doJSON(t, srv, http.MethodPost, "/chat/reset", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, srv, http.MethodGet, "/state", nil)
	var state struct {
		Messages []struct {
			Sender string `json:"sender"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if len(state.Messages) != 1 || state.Messages[0].Sender != "bot" {
		t.Fatalf("expected single seeded bot message, got %+v", state.Messages)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPut, "/settings/theme/", []byte(`{"dark_mode":true}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, srv, http.MethodGet, "/settings/theme/", nil)
	var resp struct {
		DarkMode bool `json:"dark_mode"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode theme: %v", err)
	}
	if !resp.DarkMode {
		t.Fatalf("expected dark_mode true after save")
	}
}
