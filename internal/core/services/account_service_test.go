package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigclaw/backend/internal/core/services"
	"github.com/gigclaw/backend/internal/domain"
)

func TestRegisterAgentAndAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	identity, apiKey, err := env.accounts.RegisterAgent(ctx, "crawler-7")
	require.NoError(t, err)
	assert.NotEmpty(t, identity.AgentID)
	assert.Equal(t, "crawler-7", identity.Name)
	assert.NotEmpty(t, apiKey)
	// the raw key is never persisted
	assert.NotContains(t, identity.KeyHash, apiKey)

	authed, err := env.accounts.Authenticate(ctx, identity.AgentID, apiKey)
	require.NoError(t, err)
	assert.Equal(t, identity.AgentID, authed.AgentID)

	_, err = env.accounts.Authenticate(ctx, identity.AgentID, apiKey+"x")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = env.accounts.Authenticate(ctx, "no-such-agent", apiKey)
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestRegisterAgentValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.accounts.RegisterAgent(ctx, "")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	_, _, err = env.accounts.RegisterAgent(ctx, strings.Repeat("n", 101))
	require.ErrorAs(t, err, &vErr)
}

func TestCreditAndBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// unknown addresses read as zero
	balance, err := env.accounts.Balance(ctx, "addr-1")
	require.NoError(t, err)
	assert.Zero(t, balance)

	require.NoError(t, env.accounts.Credit(ctx, "addr-1", 1_000_000))
	require.NoError(t, env.accounts.Credit(ctx, "addr-1", 500_000))

	balance, err = env.accounts.Balance(ctx, "addr-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1_500_000), balance)

	var vErr *domain.ValidationError
	err = env.accounts.Credit(ctx, "addr-1", 0)
	require.ErrorAs(t, err, &vErr)
	err = env.accounts.Credit(ctx, "", 100)
	require.ErrorAs(t, err, &vErr)
}
