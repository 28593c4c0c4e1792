package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lumistore/backoffice/pkg/log"
	"github.com/lumistore/backoffice/pkg/metric"
)

const healthPath = "/healthz"

func WithMW(mw ServerMiddleware) ServerOption {
	return func(router *mux.Router) {
		router.Use(mux.MiddlewareFunc(mw))
	}
}

func WithHealthCheck(customHandlerFunc HandlerFunc) ServerOption {
	handler := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(struct {
			Status string `json:"status"`
		}{
			Status: "OK",
		})
	}
	if customHandlerFunc != nil {
		handler = httpHandlerWrapper(customHandlerFunc)
	}

	return func(router *mux.Router) {
		router.
			Name(getRouteName(http.MethodGet, healthPath)).
			Methods(http.MethodGet).
			Path(healthPath).
			HandlerFunc(handler)
	}
}

func WithCORSHandler() ServerOption {
	return func(router *mux.Router) {
		router.Use(mux.CORSMethodMiddleware(router))
	}
}

// WithErrorMapping maps handler errors to response status codes.
// An unmapped error still results in 500.
func WithErrorMapping(statusCodes map[int][]error) ServerOption {
	resolver := func(err error) (int, bool) {
		for statusCode, errs := range statusCodes {
			for _, expected := range errs {
				if errors.Is(err, expected) {
					return statusCode, true
				}
			}
		}
		return 0, false
	}

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := withErrorStatusCodeResolver(r.Context(), resolver)
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	})
}

// WithRequestID assigns each request an id taken from the given header
// or generated, and echoes it back in the response.
func WithRequestID(headerName string) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(headerName)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			w.Header().Set(headerName, requestID)
			handler.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), requestID)))
		})
	})
}

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == healthPath {
				handler.ServeHTTP(w, r)
				return
			}

			handler.ServeHTTP(w, r)

			meta := getHandlerMetadata(r.Context())
			requestLogger := logger.With(log.Fields{
				"method":       r.Method,
				"path":         r.URL.Path,
				"responseCode": meta.Code,
			})
			if requestID, ok := RequestID(r.Context()); ok {
				requestLogger = requestLogger.WithField("requestID", requestID)
			}

			switch {
			case meta.Panic != nil:
				requestLogger.With(log.Fields{
					"panic": log.Fields{
						"message": meta.Panic.Message,
						"stack":   string(meta.Panic.Stacktrace),
					},
				}).Error(r.Context(), "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				requestLogger.WithError(meta.Error).Log(r.Context(), errorLevel, "request handled with internal error")
			default:
				requestLogger.WithError(meta.Error).Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}

func WithMetrics(metrics metric.Metrics) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			handler.ServeHTTP(w, r)

			meta := getHandlerMetadata(r.Context())
			code := meta.Code
			if code == 0 {
				code = http.StatusOK
			}

			metrics.With(metric.Labels{
				"method": r.Method,
				"path":   r.URL.Path,
				"code":   strconv.Itoa(code),
			}).Duration("http_server_request_duration_seconds", time.Since(started))
		})
	})
}
