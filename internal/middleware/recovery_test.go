// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRecovererAnswersJSON500(t *testing.T) {
	values := map[string]any{
		"string": "nil map write",
		"error":  errors.New("settings store closed"),
		"int":    42,
	}

	for name, v := range values {
		t.Run(name, func(t *testing.T) {
			h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(v)
			}))

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/admin/pages/home/edit", nil))

			if rr.Code != http.StatusInternalServerError {
				t.Fatalf("status: got %d, want 500", rr.Code)
			}
			if msg := errorBody(t, rr); msg != "internal server error" {
				t.Errorf("error: got %q", msg)
			}
		})
	}
}

func TestRecovererKeepsCommittedResponse(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"settings":`))
		panic("encoder blew up")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want the committed 200", rr.Code)
	}
	if got := rr.Body.String(); got != `{"settings":` {
		t.Errorf("body: got %q, no error body should be appended", got)
	}
}

func TestRecovererRepanicsAbort(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", rec)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/pages/home", nil))
	t.Error("ErrAbortHandler should propagate")
}

func TestRecovererPassesThrough(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Cache", "HIT")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"key":"home"}`))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/pages/home", nil))

	if rr.Code != http.StatusOK || rr.Header().Get("X-Cache") != "HIT" {
		t.Errorf("got %d with X-Cache %q", rr.Code, rr.Header().Get("X-Cache"))
	}
	if rr.Body.String() != `{"key":"home"}` {
		t.Errorf("body: got %q", rr.Body.String())
	}
}
