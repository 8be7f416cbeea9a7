package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer(t *testing.T) {
	issuer := NewIssuer("secret", "parcelrate", time.Hour)

	token, err := issuer.Issue("alice", RoleStaff, "")
	require.NoError(t, err)
	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, RoleStaff, claims.Role)
	assert.Equal(t, "alice", claims.Subject)

	_, err = NewIssuer("other", "parcelrate", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewIssuer("secret", "someone-else", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewIssuer("secret", "parcelrate", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	old, err := expired.Issue("bob", RoleStaff, "")
	require.NoError(t, err)
	_, err = issuer.Verify(old)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noMerchant, err := issuer.Issue("carol", RoleMerchant, "")
	require.NoError(t, err)
	_, err = issuer.Verify(noMerchant)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	issuer := NewIssuer("secret", "parcelrate", time.Hour)
	staff, _ := issuer.Issue("alice", RoleStaff, "")
	merchant, _ := issuer.Issue("bob", RoleMerchant, "m-1")

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := Authenticator(issuer)(RequireRole(RoleStaff)(ok))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "merchant forbidden", header: "Bearer " + merchant, wantStatus: http.StatusForbidden},
		{name: "staff allowed", header: "Bearer " + staff, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCanAccessMerchant(t *testing.T) {
	assert.True(t, (&Claims{Role: RoleStaff}).CanAccessMerchant("any"))
	assert.True(t, (&Claims{Role: RoleMerchant, MerchantID: "m-1"}).CanAccessMerchant("m-1"))
	assert.False(t, (&Claims{Role: RoleMerchant, MerchantID: "m-1"}).CanAccessMerchant("m-2"))
}
