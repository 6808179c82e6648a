package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/domain"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
	"github.com/gigclaw/backend/pkg/utils/keygen"
)

type accountService struct {
	tx     ports.TxManager
	clock  ports.Clock
	logger *logger.Logger
}

type AccountServiceConfig struct {
	Tx     ports.TxManager
	Clock  ports.Clock
	Logger *logger.Logger
}

func NewAccountService(cfg AccountServiceConfig) ports.AccountService {
	return &accountService{tx: cfg.Tx, clock: cfg.Clock, logger: cfg.Logger}
}

func hashKey(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:])
}

// RegisterAgent mints a new identity and its API key. The key is
// returned exactly once; only its hash is stored.
func (s *accountService) RegisterAgent(ctx context.Context, name string) (*domain.AgentIdentity, string, error) {
	if len(name) == 0 || len(name) > MaxTitleLength {
		return nil, "", &domain.ValidationError{Field: "name", Reason: "must be 1-100 characters"}
	}

	agentID := keygen.GenerateUUID()
	apiKey, err := keygen.GenerateAPIKey()
	if err != nil {
		return nil, "", err
	}

	identity := &domain.AgentIdentity{
		AgentID:   agentID,
		Name:      name,
		KeyHash:   hashKey(apiKey),
		CreatedAt: s.clock.Now(),
	}
	err = s.tx.InTx(ctx, func(set ports.RepoSet) error {
		return set.Agents.Create(ctx, identity)
	})
	if err != nil {
		return nil, "", err
	}

	s.logger.Infow("agent_registered", "agent_id", agentID, "name", name)
	return identity, apiKey, nil
}

// Authenticate confirms the caller controls the credential for the
// claimed identity.
func (s *accountService) Authenticate(ctx context.Context, agentID, apiKey string) (*domain.AgentIdentity, error) {
	var identity *domain.AgentIdentity
	err := s.tx.InTx(ctx, func(set ports.RepoSet) error {
		identity, _ = set.Agents.GetByAgentID(ctx, agentID)
		if identity == nil {
			return ErrInvalidCredentials
		}
		presented := hashKey(apiKey)
		if subtle.ConstantTimeCompare([]byte(presented), []byte(identity.KeyHash)) != 1 {
			return ErrInvalidCredentials
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return identity, nil
}

func (s *accountService) Balance(ctx context.Context, address string) (int64, error) {
	var balance int64
	err := s.tx.InTx(ctx, func(set ports.RepoSet) error {
		var err error
		balance, err = set.Ledger.Balance(ctx, address)
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *accountService) Credit(ctx context.Context, address string, amount int64) error {
	if address == "" {
		return &domain.ValidationError{Field: "address", Reason: "is required"}
	}
	if amount <= 0 {
		return &domain.ValidationError{Field: "amount", Reason: "must be positive"}
	}
	err := s.tx.InTx(ctx, func(set ports.RepoSet) error {
		return set.Ledger.Credit(ctx, address, amount)
	})
	if err != nil {
		return err
	}
	s.logger.Infow("account_credited", "address", address, "amount", amount)
	return nil
}
