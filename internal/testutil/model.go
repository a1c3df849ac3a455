package testutil

import (
	"context"
	"sync"
)

// StubModel is a deterministic text model that records every prompt it receives.
type StubModel struct {
	Reply string
	Err   error

	mu      sync.Mutex
	prompts []string
}

func (m *StubModel) GenerateText(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}

func (m *StubModel) ModelID() string { return "stub" }

// Prompts returns a copy of the prompts received so far.
func (m *StubModel) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// Calls returns the number of GenerateText calls.
func (m *StubModel) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}
