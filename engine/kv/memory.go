package kv

import (
	"context"
	"sync"
)

// Memory is a Store that keeps all values in memory.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{values: map[string][]byte{}}
}

func (m *Memory) Get(_ context.Context, key string, target any) error {
	if err := requireKey(key); err != nil {
		return err
	}

	m.mu.Lock()
	payload, ok := m.values[key]
	m.mu.Unlock()

	if !ok {
		return ErrNotFound
	}

	return decode(key, payload, target)
}

func (m *Memory) Set(_ context.Context, key string, value any) error {
	if err := requireKey(key); err != nil {
		return err
	}

	payload, err := encode(key, value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = payload
	return nil
}

// SetRaw stores payload without encoding it.
func (m *Memory) SetRaw(key string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = payload
}

func (m *Memory) Close() error {
	return nil
}
