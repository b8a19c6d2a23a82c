package jwt_test

import (
	"testing"
	"time"

	"github.com/Haribaskar21/Profile-backend/internal/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_Success(t *testing.T) {
	svc := jwt.NewService([]byte("super-secret"), time.Hour)
	userID := uuid.New()

	tok, err := svc.Issue(userID)
	require.NoError(t, err)

	got, err := svc.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestVerify_Expired(t *testing.T) {
	svc := jwt.NewService([]byte("secret"), -time.Second)

	tok, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	require.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := jwt.NewService([]byte("right-secret"), time.Hour)
	verifier := jwt.NewService([]byte("wrong-secret"), time.Hour)

	tok, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	require.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	svc := jwt.NewService([]byte("k"), time.Hour)

	_, err := svc.Verify("not.a.jwt")
	require.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestNewService_DefaultTTL(t *testing.T) {
	svc := jwt.NewService([]byte("k"), 0)

	tok, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	require.NoError(t, err)
}
