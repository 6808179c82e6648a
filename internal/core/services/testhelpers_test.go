package services_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/core/services"
	"github.com/gigclaw/backend/internal/domain"
	"github.com/gigclaw/backend/internal/infrastructure/db"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
)

var testDBSeq atomic.Int64

// fakeClock is a settable Clock so deadline comparisons are
// deterministic in tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	db          *gorm.DB
	clock       *fakeClock
	tasks       ports.TaskService
	bids        ports.BidService
	reputations ports.ReputationService
	accounts    ports.AccountService
}

// newTestEnv builds the full service stack on an in-memory database.
// cache=shared keeps the database alive across the pool's connections;
// MaxOpenConns(1) serializes access the way the real driver does with
// row locks.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", testDBSeq.Add(1))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.RunMigrations(database))

	log := logger.NewNop()
	tx := db.NewTxManager(database, log)
	clock := newFakeClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	return &testEnv{
		db:    database,
		clock: clock,
		tasks: services.NewTaskService(services.TaskServiceConfig{
			Tx:          tx,
			Clock:       clock,
			Logger:      log,
			EnableLocks: true,
		}),
		bids:        services.NewBidService(services.BidServiceConfig{Tx: tx, Clock: clock, Logger: log}),
		reputations: services.NewReputationService(services.ReputationServiceConfig{Tx: tx, Clock: clock, Logger: log}),
		accounts:    services.NewAccountService(services.AccountServiceConfig{Tx: tx, Clock: clock, Logger: log}),
	}
}

func (e *testEnv) credit(t *testing.T, address string, amount int64) {
	t.Helper()
	require.NoError(t, e.accounts.Credit(context.Background(), address, amount))
}

func (e *testEnv) balance(t *testing.T, address string) int64 {
	t.Helper()
	balance, err := e.accounts.Balance(context.Background(), address)
	require.NoError(t, err)
	return balance
}

// seedReputation installs a reputation record with pre-set counters,
// bypassing the initialize-then-earn path.
func (e *testEnv) seedReputation(t *testing.T, agent string, completed, earned int64) {
	t.Helper()
	_, err := e.reputations.InitializeReputation(context.Background(), agent)
	require.NoError(t, err)
	if completed == 0 && earned == 0 {
		return
	}
	err = e.db.Model(&domain.Reputation{}).
		Where("agent = ?", agent).
		Updates(map[string]interface{}{
			"completed_tasks": completed,
			"total_earned":    earned,
			"success_rate":    100,
		}).Error
	require.NoError(t, err)
}

func (e *testEnv) createTaskInput(taskID string) ports.CreateTaskInput {
	return ports.CreateTaskInput{
		TaskID:         taskID,
		Poster:         "poster-1",
		Title:          "Scrape product listings",
		Description:    "Collect the daily listing feed and normalize it.",
		Budget:         2_000_000,
		Deadline:       e.clock.Now().Add(7 * 24 * time.Hour),
		RequiredSkills: []string{"scraping", "golang"},
	}
}

// postFundedTask creates a task and funds its escrow, returning the
// vault address.
func (e *testEnv) postFundedTask(t *testing.T, taskID string) string {
	t.Helper()
	ctx := context.Background()
	input := e.createTaskInput(taskID)

	e.credit(t, input.Poster, input.Budget)
	_, err := e.tasks.CreateTask(ctx, input)
	require.NoError(t, err)
	task, err := e.tasks.InitializeEscrow(ctx, taskID, input.Poster)
	require.NoError(t, err)
	return task.EscrowAddress
}
