// Copyright (c) 2026 CapitalCurv. All rights reserved.
// Author: platform@capitalcurv.io

package gate

import (
	"context"
	"sync"
)

// MemoryCredentialStore is an in-process [CredentialStore].
//
// It backs unit tests and single-instance development runs where Redis is
// not available. Values do not survive a process restart.
type MemoryCredentialStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryCredentialStore creates an empty in-memory store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{values: make(map[string]string)}
}

// Get returns the stored value or "" when absent.
func (store *MemoryCredentialStore) Get(_ context.Context, key string) (string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.values[key], nil
}

// Set stores a value.
func (store *MemoryCredentialStore) Set(_ context.Context, key, value string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values[key] = value
	return nil
}

// Remove deletes a value. Removing an absent key is a no-op.
func (store *MemoryCredentialStore) Remove(_ context.Context, key string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.values, key)
	return nil
}
