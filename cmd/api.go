package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/research-sorter/internal/classify"
	"github.com/sells-group/research-sorter/internal/model"
	"github.com/sells-group/research-sorter/internal/store"
)

// maxClassifyBody bounds POST /classify payloads.
const maxClassifyBody = 1 << 20

// api serves classification and ledger lookups. st may be nil when the
// ledger is disabled.
type api struct {
	cls *classify.Classifier
	st  store.Store
}

// newRouter builds the HTTP handler. A nil limiter disables rate limiting.
func newRouter(a *api, allowedOrigins []string, limiter *rate.Limiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", a.health)
	r.With(rateLimit(limiter)).Post("/classify", a.classify)
	r.Route("/runs", func(r chi.Router) {
		r.Get("/", a.listRuns)
		r.Get("/{id}", a.getRun)
	})
	return r
}

func (a *api) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type classifyRequest struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

func (a *api) classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxClassifyBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Filename = strings.TrimSpace(req.Filename)
	if req.Filename == "" {
		writeError(w, http.StatusBadRequest, "filename is required")
		return
	}

	in := classify.Input{Filename: req.Filename}
	if req.Text != "" {
		text := req.Text
		in.Page = func(context.Context) model.PageText { return model.TextOf(text) }
	}

	writeJSON(w, http.StatusOK, newClassification(req.Filename, a.cls.Classify(r.Context(), in)))
}

func (a *api) listRuns(w http.ResponseWriter, r *http.Request) {
	if a.st == nil {
		writeError(w, http.StatusServiceUnavailable, "run ledger is disabled")
		return
	}

	filter := store.RunFilter{Status: model.RunStatus(r.URL.Query().Get("status"))}
	for _, p := range []struct {
		key string
		dst *int
	}{
		{"limit", &filter.Limit},
		{"offset", &filter.Offset},
	} {
		v := r.URL.Query().Get(p.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, p.key+" must be a non-negative integer")
			return
		}
		*p.dst = n
	}

	runs, err := a.st.ListRuns(r.Context(), filter)
	if err != nil {
		zap.L().Error("list runs failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "list runs failed")
		return
	}
	if runs == nil {
		runs = []model.Run{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

func (a *api) getRun(w http.ResponseWriter, r *http.Request) {
	if a.st == nil {
		writeError(w, http.StatusServiceUnavailable, "run ledger is disabled")
		return
	}

	id := chi.URLParam(r, "id")
	run, err := a.st.GetRun(r.Context(), id)
	if store.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		zap.L().Error("get run failed", zap.String("run_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "get run failed")
		return
	}

	files, err := a.st.ListFiles(r.Context(), run.ID)
	if err != nil {
		zap.L().Error("list files failed", zap.String("run_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "list files failed")
		return
	}
	if files == nil {
		files = []model.FileRecord{}
	}
	writeJSON(w, http.StatusOK, runDetail{Run: run, Files: files})
}

// rateLimit rejects requests beyond the limiter's budget with 429.
func rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		zap.L().Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
