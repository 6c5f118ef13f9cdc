package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okan/courseatlas/internal/app/models"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "courseatlas.test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	svc := testJWTService(time.Hour)
	user := &models.User{ID: 7, Email: "admin@courseatlas.app", RoleType: models.RoleAdmin}

	token, expiresIn, err := svc.GenerateToken(user)
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)

	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "admin@courseatlas.app", claims.Email)
	assert.Equal(t, string(models.RoleAdmin), claims.RoleType)
	assert.Equal(t, "courseatlas.test", claims.Issuer)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	t.Parallel()

	svc := testJWTService(-time.Minute)
	user := &models.User{ID: 1, Email: "admin@courseatlas.app", RoleType: models.RoleAdmin}

	token, _, err := svc.GenerateToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: 1, Email: "admin@courseatlas.app", RoleType: models.RoleAdmin}
	token, _, err := testJWTService(time.Hour).GenerateToken(user)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_ValidateAndExtractClaims_Empty(t *testing.T) {
	t.Parallel()

	_, err := testJWTService(time.Hour).ValidateAndExtractClaims("")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer prefix", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "raw token passes through", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			token, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
