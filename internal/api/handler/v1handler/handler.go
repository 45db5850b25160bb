// Package v1handler implements the v1 HTTP API: importing parks, running and
// fetching their analysis, and classifying strings.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"taxipark/internal/analyzer"
	"taxipark/pkg/logger"
	"taxipark/pkg/metrics"
	"taxipark/pkg/serrors"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// maxBodyBytes caps the size of an uploaded park fixture.
const maxBodyBytes = 16 << 20

// Deps are the services the handlers call into. Metric collectors are
// optional.
type Deps struct {
	Analyzer     analyzer.Analyzer
	NiceVerdicts *metrics.NiceVerdicts
	HTTPRequests *metrics.HTTPRequests
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Router returns the v1 routes, relative to the /v1 prefix.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	if h.deps.HTTPRequests != nil {
		r.Use(h.observe)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, func(e *jx.Encoder) {
			encodeError(e, "METHOD_NOT_ALLOWED", "method not allowed")
		})
	})

	r.Route("/parks", func(r chi.Router) {
		r.Post("/", h.CreatePark)
		r.Post("/{id}/analyze", h.AnalyzePark)
		r.Get("/{id}/report", h.GetReport)
	})
	r.Get("/nice", h.CheckNice)

	return r
}

func (h *Handler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		h.deps.HTTPRequests.Observe("/v1"+route, r.Method, status, time.Since(start))
	})
}

// ErrorBody is the JSON error payload.
type ErrorBody struct {
	Code    string
	Message string
}

// ErrorResponse is an error payload with its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

// NewError maps err to a response. Messages attached to client errors are
// returned to the caller; server errors are logged and answered with a
// generic message.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)

	var status int
	var message string
	switch kind {
	case serrors.ErrBadRequest:
		status, message = http.StatusBadRequest, "bad request"
	case serrors.ErrNotFound:
		status, message = http.StatusNotFound, "resource not found"
	case serrors.ErrConflict:
		status, message = http.StatusConflict, "conflict"
	case serrors.ErrUnavailable:
		status, message = http.StatusServiceUnavailable, "service unavailable"
	default:
		kind = serrors.ErrInternal
		status, message = http.StatusInternalServerError, "internal error"
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		var sErr *serrors.Error
		if errors.As(err, &sErr) && sErr.Message() != "" {
			message = sErr.Message()
		}
	}

	return &ErrorResponse{
		StatusCode: status,
		Response: ErrorBody{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) {
		encodeError(e, res.Response.Code, res.Response.Message)
	})
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	encode(e)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
