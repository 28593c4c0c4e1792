package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	pkgstrings "github.com/lumistore/backoffice/pkg/strings"
)

type RequestDataExtractor[T any] func(*http.Request) (T, error)

var ErrParsingError = errors.New("failed to parse request")

// ParseRequest chains request parsing: the first failed extraction
// short-circuits the following ones through lastErr.
func ParseRequest[T any](r *http.Request, extractor RequestDataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(r)
}

func ParseRequestOptional[T any](r *http.Request, extractor RequestDataExtractor[T], lastErr error) *T {
	if lastErr != nil {
		return nil
	}

	result, err := extractor(r)
	if err != nil {
		return nil
	}

	return &result
}

func PathParameter[T any](param string) RequestDataExtractor[T] {
	return func(r *http.Request) (T, error) {
		paramValue, ok := mux.Vars(r)[param]
		if !ok {
			var result T
			return result, fmt.Errorf("%w: path parameter %s not found", ErrParsingError, param)
		}

		return parseTypedValue[T](paramValue)
	}
}

func QueryParameter[T any](param string) RequestDataExtractor[T] {
	return func(r *http.Request) (T, error) {
		value := r.URL.Query().Get(param)
		if value == "" {
			var result T
			return result, fmt.Errorf("%w: query parameter %s not found", ErrParsingError, param)
		}

		return parseTypedValue[T](value)
	}
}

func Header[T any](key string) RequestDataExtractor[T] {
	return func(r *http.Request) (T, error) {
		header := r.Header.Get(key)
		if header == "" {
			var result T
			return result, fmt.Errorf("%w: header with key %s not found", ErrParsingError, key)
		}

		return parseTypedValue[T](header)
	}
}

func Cookie(name string) RequestDataExtractor[*http.Cookie] {
	return func(r *http.Request) (*http.Cookie, error) {
		cookie, err := r.Cookie(name)
		if err != nil {
			return nil, fmt.Errorf("%w: cookie with name %s not found", ErrParsingError, name)
		}
		return cookie, nil
	}
}

func CookieValue[T any](name string) RequestDataExtractor[T] {
	return func(r *http.Request) (T, error) {
		cookie, err := r.Cookie(name)
		if err != nil {
			var result T
			return result, fmt.Errorf("%w: cookie with name %s not found", ErrParsingError, name)
		}

		return parseTypedValue[T](cookie.Value)
	}
}

func JSONBody[T any]() RequestDataExtractor[T] {
	return func(r *http.Request) (T, error) {
		var body T
		err := json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			return body, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}
		return body, nil
	}
}

func parseTypedValue[T any](value string) (T, error) {
	v, err := pkgstrings.ParseTypedValue[T](value)
	if err != nil {
		return v, fmt.Errorf("%w: %w", ErrParsingError, err)
	}
	return v, nil
}
