// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sunder/internal/vault"
	"sunder/internal/version"
)

// TextRequest is the body of protect and reveal requests.
type TextRequest struct {
	Text string `json:"text"`
}

// TextResponse is the body of protect and reveal responses.
type TextResponse struct {
	Text string `json:"text"`
}

// RuleRequest adds a custom rule. An empty Replacement is filled with the
// next free token of Category (CUSTOM when empty).
type RuleRequest struct {
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement,omitempty"`
	Category    string `json:"category,omitempty"`
}

// AnalyticsResponse carries the counters and their percentage breakdown.
type AnalyticsResponse struct {
	vault.Analytics
	Breakdown []vault.Share `json:"breakdown"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"version":  version.Short(),
		"sessions": s.sessions.len(),
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id := s.sessions.create()
	s.observer.Logger().Debug("session created", "session", id)
	s.sendJSON(w, http.StatusCreated, map[string]string{"session_id": id})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.sessions.remove(id) {
		s.sendErrorWithStatus(w, "session not found", http.StatusNotFound)
		return
	}
	s.observer.Logger().Debug("session deleted", "session", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleProtect(w http.ResponseWriter, r *http.Request) {
	s.handleText(w, r, "protect", (*vault.Vault).Protect)
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	s.handleText(w, r, "reveal", (*vault.Vault).Reveal)
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request, op string, fn func(*vault.Vault, string) string) {
	finish := s.observer.StartTiming("web", op)

	sess, ok := s.session(w, r)
	if !ok {
		finish(false)
		return
	}
	var req TextRequest
	if !s.decode(w, r, &req) {
		finish(false)
		return
	}

	var out string
	sess.with(func(v *vault.Vault) { out = fn(v, req.Text) })
	finish(true, "size", len(req.Text))
	s.sendJSON(w, http.StatusOK, TextResponse{Text: out})
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var cfg vault.Config
	sess.with(func(v *vault.Vault) { cfg = v.Config() })
	s.sendJSON(w, http.StatusOK, cfg)
}

func (s *Server) handlePutConfig(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	cfg := vault.DefaultConfig()
	sess.with(func(v *vault.Vault) { cfg = v.Config() })
	// absent fields keep their current value
	if !s.decode(w, r, &cfg) {
		return
	}
	sess.with(func(v *vault.Vault) { v.SetConfig(cfg) })
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListRules(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var rules []vault.CustomRule
	sess.with(func(v *vault.Vault) { rules = v.Rules() })
	if rules == nil {
		rules = []vault.CustomRule{}
	}
	s.sendJSON(w, http.StatusOK, rules)
}

func (s *Server) handleAddRule(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req RuleRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Pattern == "" {
		s.sendError(w, "pattern must not be empty")
		return
	}

	rule := vault.CustomRule{Pattern: req.Pattern, Replacement: req.Replacement}
	sess.with(func(v *vault.Vault) {
		if rule.Replacement == "" {
			rule.Replacement = v.NextRuleReplacement(req.Category)
		}
		v.AddRule(rule.Pattern, rule.Replacement)
	})
	s.sendJSON(w, http.StatusCreated, rule)
}

func (s *Server) handleRemoveRule(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	pattern := r.URL.Query().Get("pattern")
	if pattern == "" {
		s.sendError(w, "pattern query parameter is required")
		return
	}
	sess.with(func(v *vault.Vault) { v.RemoveRule(pattern) })
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var resp AnalyticsResponse
	sess.with(func(v *vault.Vault) { resp.Analytics = v.Analytics() })
	resp.Breakdown = resp.Analytics.Breakdown()
	if resp.Breakdown == nil {
		resp.Breakdown = []vault.Share{}
	}
	s.sendJSON(w, http.StatusOK, resp)
}

func (s *Server) handleIdentityMap(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var m map[string]string
	sess.with(func(v *vault.Vault) { m = v.IdentityMap() })
	s.sendJSON(w, http.StatusOK, m)
}

func (s *Server) handleClearVault(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.with(func(v *vault.Vault) { v.Clear() })
	w.WriteHeader(http.StatusNoContent)
}

// session resolves the {id} URL parameter, writing a 404 when unknown.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session, bool) {
	sess, ok := s.sessions.get(chi.URLParam(r, "id"))
	if !ok {
		s.sendErrorWithStatus(w, "session not found", http.StatusNotFound)
		return nil, false
	}
	return sess, true
}

// decode reads a JSON body capped at MaxBodyBytes, writing 413 or 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	err := json.NewDecoder(body).Decode(dst)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		s.sendErrorWithStatus(w, "request body too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, io.EOF):
		s.sendError(w, "request body is empty")
	default:
		s.sendError(w, "invalid JSON: "+err.Error())
	}
	return false
}
