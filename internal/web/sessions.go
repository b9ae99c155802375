// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"sunder/internal/vault"
)

// session owns one vault. A vault is not safe for concurrent use, so every
// access goes through mu.
type session struct {
	mu      sync.Mutex
	vault   *vault.Vault
	created time.Time
}

// with runs fn while holding the session lock.
func (s *session) with(fn func(v *vault.Vault)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.vault)
}

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	options  []vault.Option
}

func newSessionStore(options []vault.Option) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		options:  options,
	}
}

// create starts a session with a fresh vault built from the store's options.
func (st *sessionStore) create() string {
	id := uuid.NewString()
	s := &session{vault: vault.New(st.options...), created: time.Now()}

	st.mu.Lock()
	st.sessions[id] = s
	st.mu.Unlock()
	return id
}

func (st *sessionStore) get(id string) (*session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// remove clears the session's vault before dropping it.
func (st *sessionStore) remove(id string) bool {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()

	if !ok {
		return false
	}
	s.with(func(v *vault.Vault) { v.Clear() })
	return true
}

func (st *sessionStore) len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// closeAll clears and drops every session.
func (st *sessionStore) closeAll() {
	st.mu.Lock()
	sessions := st.sessions
	st.sessions = make(map[string]*session)
	st.mu.Unlock()

	for _, s := range sessions {
		s.with(func(v *vault.Vault) { v.Clear() })
	}
}
