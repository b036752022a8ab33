// Package kv persists small values by key. Values are stored as YAML documents.
package kv

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by Get if no value is stored for a key.
var ErrNotFound = errors.New("kv: key not found")

type Store interface {
	// Get decodes the value stored for key into target.
	Get(ctx context.Context, key string, target any) error

	// Set stores value for key, replacing any previous value.
	Set(ctx context.Context, key string, value any) error

	Close() error
}

func encode(key string, value any) ([]byte, error) {
	payload, err := yaml.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode value of %q: %w", key, err)
	}

	return payload, nil
}

func decode(key string, payload []byte, target any) error {
	if err := yaml.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("decode value of %q: %w", key, err)
	}

	return nil
}

func requireKey(key string) error {
	if key == "" {
		return fmt.Errorf("kv: key is required")
	}

	return nil
}
