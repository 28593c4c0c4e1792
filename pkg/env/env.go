package env

import (
	"fmt"
	"os"

	pkgstrings "github.com/lumistore/backoffice/pkg/strings"
)

// Must panics when the environment value failed to parse.
// Missing required configuration is a fatal startup condition.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}

func Parse[T any](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		var blank T
		return blank, fmt.Errorf("environment variable %s not found", key)
	}

	value, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return value, fmt.Errorf("environment variable %s has invalid value: %w", key, err)
	}
	return value, nil
}

func ParseOptional[T any](key string) (*T, error) {
	if _, ok := os.LookupEnv(key); !ok {
		return nil, nil
	}

	value, err := Parse[T](key)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
