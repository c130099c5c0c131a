package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chromacraft/chromacraft-gobackend/internal/auth"
)

func TestRequireToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	mw := NewAuthMiddleware(tokens)

	var gotID interface{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims != nil {
			gotID = claims["id"]
		}
		w.WriteHeader(http.StatusOK)
	})
	gated := mw.RequireToken(next)

	// no header
	rec := httptest.NewRecorder()
	gated.ServeHTTP(rec, httptest.NewRequest("PATCH", "/students/1", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing header status = %d, want 401", rec.Code)
	}

	// malformed header
	rec = httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/students/1", nil)
	req.Header.Set("Authorization", "not-a-bearer")
	gated.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("malformed header status = %d, want 401", rec.Code)
	}

	// garbage token
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("PATCH", "/students/1", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	gated.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token status = %d, want 401", rec.Code)
	}

	// valid token passes through with claims in context
	token, err := tokens.Issue(map[string]interface{}{"id": "u1"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("PATCH", "/students/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	gated.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("valid token status = %d, want 200", rec.Code)
	}
	if gotID != "u1" {
		t.Errorf("claims id = %v, want u1", gotID)
	}
}
