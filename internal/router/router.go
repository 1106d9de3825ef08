package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/basedalex/doc-compare/pkg/config"
	"github.com/basedalex/doc-compare/pkg/similarity"
	"github.com/benbjohnson/clock"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
)

//go:generate mockgen -source=router.go -destination=mocks/mock.go

var errMissingFile = errors.New("missing file")

type HTTPResponse struct {
	Error string `json:"error"`
}

type comparer interface {
	Compare(ctx context.Context, doc1, doc2 []byte) (similarity.Result, error)
}

type Handler struct {
	limiter     ratelimit.Limiter
	concurrency chan struct{}
	service     comparer
	cfg         *config.Config
	clock       clock.Clock
}

func NewServer(ctx context.Context, cfg *config.Config, service comparer) error {
	srv := &http.Server{
		Addr:              ":" + cfg.SrvPort,
		Handler:           newRouter(cfg, service),
		ReadHeaderTimeout: 3 * time.Second,
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)

	go func() {
		<-ctx.Done()

		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn(err)
		}
	}()

	log.Infof("server listening on %s", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error with the server: %w", err)
	}

	return nil
}

func newRouter(cfg *config.Config, service comparer) http.Handler {
	handler := &Handler{
		limiter:     ratelimit.New(cfg.RateLimit),
		concurrency: make(chan struct{}, cfg.ConcurrencyLimit),
		cfg:         cfg,
		service:     service,
		clock:       clock.New(),
	}

	return handler.routes()
}

func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()

	compare := http.Handler(http.HandlerFunc(h.compare))
	if h.cfg.JWTSecret != "" {
		compare = h.Guard()(compare)
	}

	mux.Handle("/compare", compare)
	mux.HandleFunc("/health", h.health)

	return h.logRequests(cors(h.cfg.CORS)(mux))
}

func cors(cfg config.CORS) func(http.Handler) http.Handler {
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			w.Header().Add("Vary", "Origin")

			if origin != "" && originAllowed(cfg.AllowedOrigins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(allowed []string, origin string) bool {
	return slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := h.clock.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": h.clock.Since(start),
		}).Info("request handled")
	})
}

// Guard rejects requests without a valid HS256 token in the "token" header.
func (h *Handler) Guard() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get("token")
			claims := &jwt.RegisteredClaims{}

			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(h.cfg.JWTSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				log.Debug(err)
				writeErrResponse(w, http.StatusUnauthorized, fmt.Errorf("invalid token"))
				return
			}

			log.Debugf("authorized subject %q", claims.Subject)
			next.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeOkResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeErrResponse(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	h.limiter.Take()

	select {
	case h.concurrency <- struct{}{}:
	case <-r.Context().Done():
		writeErrResponse(w, http.StatusServiceUnavailable, fmt.Errorf("waiting for a slot: %w", r.Context().Err()))
		return
	}
	defer func() {
		<-h.concurrency
	}()

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeErrResponse(w, http.StatusRequestEntityTooLarge, fmt.Errorf("upload exceeds %d bytes", maxErr.Limit))
			return
		}
		writeErrResponse(w, http.StatusBadRequest, fmt.Errorf("parsing form: %w", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	doc1, err := readUpload(r, "file1")
	if err != nil {
		writeErrResponse(w, uploadStatus(err), err)
		return
	}

	doc2, err := readUpload(r, "file2")
	if err != nil {
		writeErrResponse(w, uploadStatus(err), err)
		return
	}

	result, err := h.service.Compare(r.Context(), doc1, doc2)
	if err != nil {
		if errors.Is(err, similarity.ErrMalformedInput) {
			writeErrResponse(w, http.StatusBadRequest, err)
			return
		}
		writeErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	writeOkResponse(w, http.StatusOK, result)
}

func readUpload(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, fmt.Errorf("%s: %w", field, errMissingFile)
		}
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}

	return content, nil
}

func uploadStatus(err error) int {
	if errors.Is(err, errMissingFile) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeOkResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	log.Infof("successful request with statusCode %d and data type %T", statusCode, data)
	if data != nil {
		err := json.NewEncoder(w).Encode(data)
		if err != nil {
			log.Error(err)
		}
	}
}

func writeErrResponse(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	log.Error(err)

	jsonErr := json.NewEncoder(w).Encode(HTTPResponse{Error: err.Error()})
	if jsonErr != nil {
		log.Error(jsonErr)
	}
}
