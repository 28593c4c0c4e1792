package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
)

type contextKey int

const (
	handlerMetaContextKey contextKey = iota
	requestIDContextKey
	errorMappingContextKey
)

type Panic struct {
	Message    string
	Stacktrace []byte
}

type handlerMetadata struct {
	Code  int
	Error error
	Panic *Panic
}

func withHandlerMetadata(router *mux.Router) *mux.Router {
	router.Use(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), handlerMetaContextKey, &handlerMetadata{})
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	return router
}

func getHandlerMetadata(ctx context.Context) *handlerMetadata {
	meta, ok := ctx.Value(handlerMetaContextKey).(*handlerMetadata)
	if ok {
		return meta
	}
	return &handlerMetadata{}
}

// RequestID returns the id assigned to the request by the WithRequestID option.
func RequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDContextKey).(string)
	if !ok || requestID == "" {
		return "", false
	}
	return requestID, true
}

func withRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

func getErrorStatusCodeResolver(ctx context.Context) (func(error) (int, bool), bool) {
	resolver, ok := ctx.Value(errorMappingContextKey).(func(error) (int, bool))
	return resolver, ok
}

func withErrorStatusCodeResolver(ctx context.Context, resolver func(error) (int, bool)) context.Context {
	return context.WithValue(ctx, errorMappingContextKey, resolver)
}
