package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	subject string
}

func (c *stubClaims) TokenSubject() string { return c.subject }

type stubValidator struct {
	subject string
	err     error
}

func (v *stubValidator) ValidateToken(tokenString string) (SubjectGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &stubClaims{subject: v.subject}, nil
}

func protectedHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := GetSubject(r)
		require.NoError(t, err)
		assert.Equal(t, "admin", subject)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAdminValidToken(t *testing.T) {
	mw := RequireAdmin(&stubValidator{subject: "admin"})
	req := httptest.NewRequest("GET", "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	mw(protectedHandler(t)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminMissingHeader(t *testing.T) {
	mw := RequireAdmin(&stubValidator{subject: "admin"})
	req := httptest.NewRequest("GET", "/admin/stats", nil)
	rec := httptest.NewRecorder()

	mw(protectedHandler(t)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminMalformedHeader(t *testing.T) {
	cases := []string{
		"good-token",
		"Basic good-token",
		"Bearer",
		"Bearer one two",
	}
	for _, header := range cases {
		t.Run(header, func(t *testing.T) {
			mw := RequireAdmin(&stubValidator{subject: "admin"})
			req := httptest.NewRequest("GET", "/admin/stats", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()

			mw(protectedHandler(t)).ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireAdminCaseInsensitiveBearer(t *testing.T) {
	mw := RequireAdmin(&stubValidator{subject: "admin"})
	req := httptest.NewRequest("GET", "/admin/stats", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()

	mw(protectedHandler(t)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminInvalidToken(t *testing.T) {
	mw := RequireAdmin(&stubValidator{err: fmt.Errorf("token expired")})
	req := httptest.NewRequest("GET", "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()

	mw(protectedHandler(t)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminWrongSubject(t *testing.T) {
	mw := RequireAdmin(&stubValidator{subject: "someone-else"})
	req := httptest.NewRequest("GET", "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	mw(protectedHandler(t)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetSubjectMissing(t *testing.T) {
	req := httptest.NewRequest("GET", "/admin/stats", nil)
	_, err := GetSubject(req)
	assert.Error(t, err)
}
