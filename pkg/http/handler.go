package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

type (
	Handler interface {
		Method() string
		Path() string
		Handle(w ResponseWriter, r *http.Request) error
	}

	HandlerFunc func(w ResponseWriter, r *http.Request) error

	ResponseWriter interface {
		SetHeader(key, value string) ResponseWriter
		SetStatusCode(httpCode int) ResponseWriter
		SetCookie(cookie *http.Cookie) ResponseWriter
		SetJSONBody(data any) ResponseWriter
	}
)

type responseWriter struct {
	impl http.ResponseWriter

	writeBodyFunc func() error
	httpCode      int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetCookie(cookie *http.Cookie) ResponseWriter {
	http.SetCookie(w.impl, cookie)
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.writeBodyFunc = func() error {
		bodyEncoded, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("encode response body: %w", err)
		}

		w.impl.Header().Set("Content-Type", "application/json")
		w.impl.WriteHeader(w.statusCode())

		_, err = w.impl.Write(bodyEncoded)
		if err != nil {
			return fmt.Errorf("write response body: %w", err)
		}
		return nil
	}
	return w
}

func (w *responseWriter) statusCode() int {
	if w.httpCode != 0 {
		return w.httpCode
	}
	return http.StatusOK
}

func (w *responseWriter) write(ctx context.Context, err error) {
	httpCode := w.statusCode()
	switch {
	case err != nil:
		if w.httpCode == 0 {
			httpCode = errorStatusCode(ctx, err)
		}
		w.impl.WriteHeader(httpCode)
	case w.writeBodyFunc != nil:
		writeErr := w.writeBodyFunc()
		if writeErr != nil {
			err = writeErr
			httpCode = http.StatusInternalServerError
		}
	default:
		w.impl.WriteHeader(httpCode)
	}

	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err
}

func (w *responseWriter) writePanic(ctx context.Context, p Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Code = http.StatusInternalServerError
	meta.Panic = &p

	w.impl.WriteHeader(http.StatusInternalServerError)
}

func errorStatusCode(ctx context.Context, err error) int {
	if errors.Is(err, ErrParsingError) {
		return http.StatusBadRequest
	}

	if resolver, ok := getErrorStatusCodeResolver(ctx); ok {
		if code, mapped := resolver(err); mapped {
			return code
		}
	}

	return http.StatusInternalServerError
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.writePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{impl: w}

		defer recoverPanic(r, respWriter)
		err := handler(respWriter, r)
		respWriter.write(r.Context(), err)
	}
}
