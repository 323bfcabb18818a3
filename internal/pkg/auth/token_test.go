package auth_test

import (
	"testing"
	"time"

	"dispatch/internal/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService_Validation(t *testing.T) {
	_, err := auth.NewTokenService("", time.Hour)
	require.Error(t, err)

	_, err = auth.NewTokenService("secret", 0)
	require.Error(t, err)

	svc, err := auth.NewTokenService("secret", time.Hour)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc, err := auth.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := svc.Issue("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestTokenService_Issue_EmptySubject(t *testing.T) {
	svc, err := auth.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = svc.Issue("")
	require.Error(t, err)
}

func TestTokenService_Verify_Rejections(t *testing.T) {
	svc, err := auth.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other, otherErr := auth.NewTokenService("other-secret", time.Hour)
		require.NoError(t, otherErr)
		token, issueErr := other.Issue("admin")
		require.NoError(t, issueErr)

		_, err := svc.Verify(token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived, shortErr := auth.NewTokenService("test-secret", time.Millisecond)
		require.NoError(t, shortErr)
		token, issueErr := shortLived.Issue("admin")
		require.NoError(t, issueErr)

		time.Sleep(5 * time.Millisecond)

		_, err := svc.Verify(token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
