// Package httpadapter exposes the assistant over HTTP. The action catalog of
// the reducer is the entire mutation surface; every route below maps onto it
// and nothing else.
package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cityhospital/assistant/internal/app/conversation"
	"github.com/cityhospital/assistant/internal/app/records"
	"github.com/cityhospital/assistant/internal/domain"
	"github.com/cityhospital/assistant/internal/observability"
)

type Server struct {
	conv    *conversation.Service
	records *records.Service
	themes  domain.StateStore
}

func NewServer(conv *conversation.Service, recs *records.Service, themes domain.StateStore) http.Handler {
	s := &Server{conv: conv, records: recs, themes: themes}

	r := chi.NewRouter()
	r.Use(withRequestID, withLogging, withCORS)

	r.Get("/healthz", s.handleHealthz)
	r.Get("/state", s.handleGetState)

	r.Post("/chat/messages", s.handleSendMessage)
	r.Post("/chat/reset", s.handleReset)

	r.Route("/reports", func(r chi.Router) {
		r.Get("/", s.handleListReports)
		r.Post("/", s.handleCreateReport)
		r.Get("/{id}", s.handleGetReport)
		r.Patch("/{id}", s.handleUpdateReport)
		r.Delete("/{id}", s.handleDeleteReport)
	})

	r.Route("/appointments", func(r chi.Router) {
		r.Get("/", s.handleListAppointments)
		r.Post("/", s.handleCreateAppointment)
		r.Get("/{id}", s.handleGetAppointment)
		r.Patch("/{id}", s.handleUpdateAppointment)
		r.Delete("/{id}", s.handleDeleteAppointment)
	})

	r.Route("/vitals", func(r chi.Router) {
		r.Get("/", s.handleListVitals)
		r.Post("/", s.handleAddVital)
		r.Get("/{id}", s.handleGetVital)
		r.Patch("/{id}", s.handleUpdateVital)
		r.Delete("/{id}", s.handleDeleteVital)
	})

	r.Route("/pregnancy", func(r chi.Router) {
		r.Get("/", s.handleGetPregnancy)
		r.Put("/", s.handlePutPregnancy)
		r.Patch("/", s.handlePatchPregnancy)
		r.Delete("/", s.handleDeletePregnancy)
	})

	r.Route("/settings/theme", func(r chi.Router) {
		r.Get("/", s.handleGetTheme)
		r.Put("/", s.handlePutTheme)
	})

	return r
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type sendMessageRequest struct {
	Text string `json:"text"`
}

type messageResponse struct {
	ID        int64            `json:"id"`
	Sender    string           `json:"sender"`
	Text      string           `json:"text"`
	Timestamp time.Time        `json:"timestamp"`
	Intent    string           `json:"intent,omitempty"`
	Entities  *domain.Entities `json:"entities,omitempty"`
}

type sendMessageResponse struct {
	UserMessage messageResponse `json:"user_message"`
	BotMessage  messageResponse `json:"bot_message"`
}

type themeResponse struct {
	DarkMode bool `json:"dark_mode"`
}

// ─────────────────────────────────────────────
// Chat
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.conv.State(r.Context()))
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	out, err := s.conv.SendMessage(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, conversation.ErrEmptyMessage) {
			badRequest(w, "text is required")
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sendMessageResponse{
		UserMessage: toMessageResponse(out.UserMessage),
		BotMessage:  toMessageResponse(out.BotMessage),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.conv.Reset(r.Context()))
}

// ─────────────────────────────────────────────
// Reports
// ─────────────────────────────────────────────

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.records.ListReports(r.Context()))
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.records.GetReport(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		notFoundOrInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	var rep domain.Report
	if err := json.NewDecoder(r.Body).Decode(&rep); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	created, err := s.records.CreateReport(r.Context(), rep)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateReport(w http.ResponseWriter, r *http.Request) {
	var patch domain.ReportPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	rep, err := s.records.UpdateReport(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		notFoundOrInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	s.records.DeleteReport(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// ─────────────────────────────────────────────
// Appointments
// ─────────────────────────────────────────────

func (s *Server) handleListAppointments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.records.ListAppointments(r.Context()))
}

func (s *Server) handleGetAppointment(w http.ResponseWriter, r *http.Request) {
	a, err := s.records.GetAppointment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		notFoundOrInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleCreateAppointment(w http.ResponseWriter, r *http.Request) {
	var a domain.Appointment
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	created, err := s.records.CreateAppointment(r.Context(), a)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateAppointment(w http.ResponseWriter, r *http.Request) {
	var patch domain.AppointmentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	a, err := s.records.UpdateAppointment(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		notFoundOrInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleDeleteAppointment(w http.ResponseWriter, r *http.Request) {
	s.records.DeleteAppointment(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// ─────────────────────────────────────────────
// Vitals
// ─────────────────────────────────────────────

func (s *Server) handleListVitals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.records.ListVitals(r.Context()))
}

func (s *Server) handleGetVital(w http.ResponseWriter, r *http.Request) {
	v, err := s.records.GetVital(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		notFoundOrInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleAddVital(w http.ResponseWriter, r *http.Request) {
	var v domain.Vital
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	added, err := s.records.AddVital(r.Context(), v)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

func (s *Server) handleUpdateVital(w http.ResponseWriter, r *http.Request) {
	var patch domain.VitalPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	v, err := s.records.UpdateVital(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		notFoundOrInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleDeleteVital(w http.ResponseWriter, r *http.Request) {
	s.records.DeleteVital(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// ─────────────────────────────────────────────
// Pregnancy
// ─────────────────────────────────────────────

func (s *Server) handleGetPregnancy(w http.ResponseWriter, r *http.Request) {
	p, err := s.records.GetPregnancy(r.Context())
	if err != nil {
		notFoundOrInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePutPregnancy(w http.ResponseWriter, r *http.Request) {
	var rec domain.PregnancyRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	writeJSON(w, http.StatusOK, s.records.PutPregnancy(r.Context(), rec))
}

func (s *Server) handlePatchPregnancy(w http.ResponseWriter, r *http.Request) {
	var patch domain.PregnancyPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	p, err := s.records.PatchPregnancy(r.Context(), patch)
	if err != nil {
		notFoundOrInternal(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePregnancy(w http.ResponseWriter, r *http.Request) {
	s.records.DeletePregnancy(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// ─────────────────────────────────────────────
// Theme
// ─────────────────────────────────────────────

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	dark, err := s.themes.LoadTheme(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, themeResponse{DarkMode: dark})
}

func (s *Server) handlePutTheme(w http.ResponseWriter, r *http.Request) {
	var req themeResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if err := s.themes.SaveTheme(r.Context(), req.DarkMode); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func toMessageResponse(m domain.Message) messageResponse {
	return messageResponse{
		ID:        m.ID,
		Sender:    string(m.Sender),
		Text:      m.Text,
		Timestamp: m.Timestamp,
		Intent:    string(m.Intent),
		Entities:  m.Entities,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func notFoundOrInternal(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	internalError(w, err)
}

func internalError(w http.ResponseWriter, err error) {
	observability.Logger().Error("internal error", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
