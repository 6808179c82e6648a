package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gigclaw/backend/internal/core/ports"
	"github.com/gigclaw/backend/internal/domain"
	"github.com/gigclaw/backend/internal/infrastructure/logger"
)

type taskService struct {
	tx     ports.TxManager
	clock  ports.Clock
	vault  escrowVault
	logger *logger.Logger

	mu          sync.Mutex
	locks       map[string]*sync.Mutex
	enableLocks bool
}

type TaskServiceConfig struct {
	Tx          ports.TxManager
	Clock       ports.Clock
	Logger      *logger.Logger
	EnableLocks bool
}

func NewTaskService(cfg TaskServiceConfig) ports.TaskService {
	return &taskService{
		tx:          cfg.Tx,
		clock:       cfg.Clock,
		vault:       escrowVault{log: cfg.Logger},
		logger:      cfg.Logger,
		locks:       make(map[string]*sync.Mutex),
		enableLocks: cfg.EnableLocks,
	}
}

// lockKeys serializes operations touching the same task. A second
// attempt to transition out of a status the first attempt already left
// observes the committed status and fails its precondition instead of
// double-applying.
func (s *taskService) lockKeys(keys ...string) func() {
	if !s.enableLocks || len(keys) == 0 {
		return func() {}
	}
	sort.Strings(keys)
	s.mu.Lock()
	acquired := make([]*sync.Mutex, 0, len(keys))
	for _, k := range keys {
		m := s.locks[k]
		if m == nil {
			m = &sync.Mutex{}
			s.locks[k] = m
		}
		acquired = append(acquired, m)
	}
	s.mu.Unlock()
	for _, m := range acquired {
		m.Lock()
	}
	return func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].Unlock()
		}
	}
}

// transitionTask is the only place a task status changes.
func transitionTask(task *domain.Task, to domain.TaskStatus, op string) error {
	if !domain.CanTransition(task.Status, to) {
		return &domain.StateError{Op: op, Status: task.Status, Reason: fmt.Sprintf("cannot move to %s", to)}
	}
	task.Status = to
	return nil
}

func (s *taskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	now := s.clock.Now()
	if err := validateTaskInputs(input, now); err != nil {
		s.logger.Warnw("task_create_invalid", "task_id", input.TaskID, "error", err)
		return nil, err
	}

	unlock := s.lockKeys(fmt.Sprintf("task:%s", input.TaskID))
	defer unlock()

	var task *domain.Task
	err := s.tx.InTx(ctx, func(set ports.RepoSet) error {
		existing, _ := set.Tasks.GetByTaskID(ctx, input.TaskID)
		if existing != nil {
			return &domain.StateError{Op: "create_task", Reason: "task id already in use"}
		}
		task = &domain.Task{
			TaskID:         input.TaskID,
			Poster:         input.Poster,
			Title:          input.Title,
			Description:    input.Description,
			Budget:         input.Budget,
			FinalBudget:    0,
			Deadline:       input.Deadline,
			RequiredSkills: domain.StringList(input.RequiredSkills),
			Status:         domain.TaskStatusPosted,
			CreatedAt:      now,
		}
		return set.Tasks.Create(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("task_created", "task_id", task.TaskID, "poster", task.Poster, "budget", task.Budget)
	return task, nil
}

func (s *taskService) InitializeEscrow(ctx context.Context, taskID, caller string) (*domain.Task, error) {
	unlock := s.lockKeys(fmt.Sprintf("task:%s", taskID))
	defer unlock()

	var task *domain.Task
	err := s.tx.InTx(ctx, func(set ports.RepoSet) error {
		var err error
		task, err = getTask(ctx, set, taskID)
		if err != nil {
			return err
		}
		if task.Poster != caller {
			return &domain.AuthorizationError{Caller: caller, Required: "poster"}
		}
		if task.EscrowInitialized {
			return &domain.StateError{Op: "initialize_escrow", Status: task.Status, Reason: "escrow already initialized"}
		}
		if task.Status != domain.TaskStatusPosted {
			return &domain.StateError{Op: "initialize_escrow", Status: task.Status, Reason: "task is not open"}
		}

		if err := s.vault.Fund(ctx, set, task); err != nil {
			return err
		}
		task.EscrowInitialized = true
		task.EscrowAddress = VaultAddress(task.TaskID)
		return set.Tasks.Update(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("escrow_initialized", "task_id", task.TaskID, "vault", task.EscrowAddress, "amount", task.Budget)
	return task, nil
}

func (s *taskService) CancelTask(ctx context.Context, taskID, caller string) (*domain.Task, error) {
	unlock := s.lockKeys(fmt.Sprintf("task:%s", taskID))
	defer unlock()

	var task *domain.Task
	var refund int64
	err := s.tx.InTx(ctx, func(set ports.RepoSet) error {
		var err error
		task, err = getTask(ctx, set, taskID)
		if err != nil {
			return err
		}
		if task.Poster != caller {
			return &domain.AuthorizationError{Caller: caller, Required: "poster"}
		}
		if task.Status != domain.TaskStatusPosted {
			return &domain.StateError{Op: "cancel_task", Status: task.Status, Reason: "only a posted task can be cancelled"}
		}

		if task.EscrowInitialized {
			if err := s.vault.Release(ctx, set, authorityFor(task), task.Poster, task.Budget); err != nil {
				return err
			}
			refund = task.Budget
		}
		if err := transitionTask(task, domain.TaskStatusCancelled, "cancel_task"); err != nil {
			return err
		}
		return set.Tasks.Update(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("task_cancelled", "task_id", task.TaskID, "refund", refund)
	return task, nil
}

func (s *taskService) AcceptBid(ctx context.Context, taskID, caller, bidder string) (*domain.Task, error) {
	now := s.clock.Now()
	unlock := s.lockKeys(fmt.Sprintf("task:%s", taskID))
	defer unlock()

	var task *domain.Task
	err := s.tx.InTx(ctx, func(set ports.RepoSet) error {
		var err error
		task, err = getTask(ctx, set, taskID)
		if err != nil {
			return err
		}
		if task.Status != domain.TaskStatusPosted {
			return &domain.StateError{Op: "accept_bid", Status: task.Status, Reason: "task is not open"}
		}
		if !now.Before(task.Deadline) {
			return &domain.StateError{Op: "accept_bid", Status: task.Status, Reason: "deadline has passed"}
		}
		if task.Poster != caller {
			return &domain.AuthorizationError{Caller: caller, Required: "poster"}
		}

		bid, _ := set.Bids.Get(ctx, taskID, bidder)
		if bid == nil {
			return ErrBidNotFound
		}

		agent := bid.Bidder
		task.AssignedAgent = &agent
		task.FinalBudget = bid.Amount
		if err := transitionTask(task, domain.TaskStatusInProgress, "accept_bid"); err != nil {
			return err
		}
		return set.Tasks.Update(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("bid_accepted", "task_id", task.TaskID, "agent", bidder, "final_budget", task.FinalBudget)
	return task, nil
}

func (s *taskService) CompleteTask(ctx context.Context, taskID, caller, deliveryURL string) (*domain.Task, error) {
	if len(deliveryURL) == 0 || len(deliveryURL) > MaxDeliveryURLLength {
		return nil, &domain.ValidationError{Field: "delivery_url", Reason: "must be 1-200 characters"}
	}

	unlock := s.lockKeys(fmt.Sprintf("task:%s", taskID))
	defer unlock()

	var task *domain.Task
	err := s.tx.InTx(ctx, func(set ports.RepoSet) error {
		var err error
		task, err = getTask(ctx, set, taskID)
		if err != nil {
			return err
		}
		if task.Status != domain.TaskStatusInProgress {
			return &domain.StateError{Op: "complete_task", Status: task.Status, Reason: "task is not in progress"}
		}
		if task.AssignedAgent == nil || *task.AssignedAgent != caller {
			return &domain.AuthorizationError{Caller: caller, Required: "assigned agent"}
		}

		now := s.clock.Now()
		task.DeliveryURL = &deliveryURL
		task.CompletedAt = &now
		if err := transitionTask(task, domain.TaskStatusCompleted, "complete_task"); err != nil {
			return err
		}
		return set.Tasks.Update(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("task_completed", "task_id", task.TaskID, "agent", caller, "delivery_url", deliveryURL)
	return task, nil
}

func (s *taskService) VerifyAndPay(ctx context.Context, taskID, caller string) (*domain.Task, error) {
	unlock := s.lockKeys(fmt.Sprintf("task:%s", taskID))
	defer unlock()

	var task *domain.Task
	err := s.tx.InTx(ctx, func(set ports.RepoSet) error {
		var err error
		task, err = getTask(ctx, set, taskID)
		if err != nil {
			return err
		}
		if task.Status != domain.TaskStatusCompleted {
			return &domain.StateError{Op: "verify_and_pay", Status: task.Status, Reason: "task is not completed"}
		}
		if task.Poster != caller {
			return &domain.AuthorizationError{Caller: caller, Required: "poster"}
		}

		agent := *task.AssignedAgent
		rep, _ := set.Reputations.GetByAgent(ctx, agent)
		if rep == nil {
			return ErrReputationNotFound
		}

		if err := s.vault.Release(ctx, set, authorityFor(task), agent, task.FinalBudget); err != nil {
			return err
		}
		// Drain the unspent remainder back to the poster so the vault
		// always empties exactly once at a terminal state.
		if remainder := task.Budget - task.FinalBudget; remainder > 0 {
			if err := s.vault.Release(ctx, set, authorityFor(task), task.Poster, remainder); err != nil {
				return err
			}
		}
		if err := rep.RecordCompletion(task.FinalBudget); err != nil {
			return err
		}
		if err := set.Reputations.Update(ctx, rep); err != nil {
			return err
		}
		if err := transitionTask(task, domain.TaskStatusVerified, "verify_and_pay"); err != nil {
			return err
		}
		return set.Tasks.Update(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("payment_released", "task_id", task.TaskID, "agent", *task.AssignedAgent, "amount", task.FinalBudget)
	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	var task *domain.Task
	err := s.tx.InTx(ctx, func(set ports.RepoSet) error {
		var err error
		task, err = getTask(ctx, set, taskID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetOpenTasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	err := s.tx.InTx(ctx, func(set ports.RepoSet) error {
		var err error
		tasks, err = set.Tasks.GetOpen(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *taskService) EscrowBalance(ctx context.Context, taskID string) (int64, error) {
	var balance int64
	err := s.tx.InTx(ctx, func(set ports.RepoSet) error {
		if _, err := getTask(ctx, set, taskID); err != nil {
			return err
		}
		var err error
		balance, err = set.Ledger.Balance(ctx, VaultAddress(taskID))
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func getTask(ctx context.Context, set ports.RepoSet, taskID string) (*domain.Task, error) {
	task, _ := set.Tasks.GetByTaskID(ctx, taskID)
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}
