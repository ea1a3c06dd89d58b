package web

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestHandleHealth(t *testing.T) {
	s := &Server{router: nil}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/health", nil)
	s.handleHealth(rec, req)
	if rec.Code != 200 {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("got status %q, want ok", body["status"])
	}
}

func TestHandleSolveRejectsBadJSON(t *testing.T) {
	s := &Server{router: nil}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/solve", bytes.NewBufferString("not json"))
	s.handleSolve(rec, req)
	if rec.Code != 400 {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestHandleSolveRejectsBadScramble(t *testing.T) {
	s := &Server{router: nil}
	rec := httptest.NewRecorder()
	body, _ := json.Marshal(SolveRequest{Scramble: "X9 notamove"})
	req := httptest.NewRequest("POST", "/api/solve", bytes.NewBuffer(body))
	s.handleSolve(rec, req)
	if rec.Code != 400 {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}
