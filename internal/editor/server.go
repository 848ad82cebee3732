// Package editor serves the local question-editing API: a browser UI posts
// edits to /save and the server rewrites the corpus and metadata files.
package editor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/quizbee-cli/internal/corpus"
	"github.com/sells-group/quizbee-cli/internal/model"
	"github.com/sells-group/quizbee-cli/internal/store"
)

// SaveRequest is one edit from the browser editor. The original fields locate
// the question being edited; the rest replace it.
type SaveRequest struct {
	OriginalID       string               `json:"original_id"`
	OriginalCategory string               `json:"original_category"`
	ID               string               `json:"id"`
	Category         string               `json:"category"`
	Question         string               `json:"question"`
	Answer           string               `json:"answer"`
	Metadata         model.Classification `json:"metadata"`
}

// Server handles editor requests against a loaded corpus and its store.
type Server struct {
	corpus     *corpus.Corpus
	corpusPath string
	store      store.Store
}

// NewServer returns a Server editing the given corpus in place, rewriting
// corpusPath after each accepted save.
func NewServer(c *corpus.Corpus, corpusPath string, st store.Store) *Server {
	return &Server{corpus: c, corpusPath: corpusPath, store: st}
}

// Handler builds the HTTP routing table. CORS is wide open: the editor UI is
// served from the local filesystem, so requests arrive with a null origin.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/save", s.handleSave)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.OriginalID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "original_id is required"})
		return
	}
	if !model.ValidTier(model.Tier(req.OriginalCategory)) || !model.ValidTier(model.Tier(req.Category)) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category"})
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	updated := model.Question{
		Question: req.Question,
		Answer:   req.Answer,
		ID:       req.ID,
	}
	if !s.corpus.Replace(req.OriginalID, model.Tier(req.OriginalCategory), updated, model.Tier(req.Category)) {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "question " + req.OriginalID + " not found in " + req.OriginalCategory,
		})
		return
	}

	ctx := r.Context()
	if req.OriginalID != req.ID {
		if err := s.store.Delete(ctx, req.OriginalID); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
	}
	if err := s.store.Put(ctx, req.ID, req.Metadata); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if err := s.corpus.Save(s.corpusPath); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if err := s.store.Flush(ctx); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	zap.L().Info("editor: saved question",
		zap.String("id", req.ID),
		zap.String("category", req.Category),
	)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
