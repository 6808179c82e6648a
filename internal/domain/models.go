package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ==================== ENUMS ====================

type TaskStatus string

const (
	TaskStatusPosted     TaskStatus = "posted"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusVerified   TaskStatus = "verified"
	TaskStatusDisputed   TaskStatus = "disputed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// ==================== JSONB TYPES ====================

// StringList is stored as a JSON array column.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("failed to scan StringList: invalid type")
	}
}

// ==================== MODELS ====================

// Task is the single source of truth for what is allowed to happen next.
// Amounts are micro-units of the settlement currency (6 decimal places).
type Task struct {
	ID     uint   `gorm:"primarykey" json:"-"`
	TaskID string `gorm:"uniqueIndex;size:32" json:"task_id"`
	Poster string `gorm:"index;size:64" json:"poster"`

	Title          string     `gorm:"size:100" json:"title"`
	Description    string     `gorm:"size:2000" json:"description"`
	Budget         int64      `json:"budget"`
	FinalBudget    int64      `json:"final_budget"`
	Deadline       time.Time  `json:"deadline"`
	RequiredSkills StringList `gorm:"type:text" json:"required_skills"`

	Status        TaskStatus `gorm:"index;size:16" json:"status"`
	AssignedAgent *string    `gorm:"size:64" json:"assigned_agent,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	DeliveryURL   *string    `gorm:"size:200" json:"delivery_url,omitempty"`

	EscrowInitialized bool   `json:"escrow_initialized"`
	EscrowAddress     string `gorm:"size:64" json:"escrow_address,omitempty"`

	// Reserved for a future dispute workflow. No operation writes these.
	DisputeReason    *string    `gorm:"size:500" json:"dispute_reason,omitempty"`
	DisputeInitiator *string    `gorm:"size:64" json:"dispute_initiator,omitempty"`
	DisputeCreatedAt *time.Time `json:"dispute_created_at,omitempty"`
}

// Bid records one bid per (task, bidder) pair. Bids are never mutated
// after placement; acceptance is determined by Task.AssignedAgent, the
// Accepted column is informational only.
type Bid struct {
	ID                uint      `gorm:"primarykey" json:"-"`
	TaskID            string    `gorm:"uniqueIndex:idx_bids_task_bidder;size:32" json:"task_id"`
	Bidder            string    `gorm:"uniqueIndex:idx_bids_task_bidder;size:64" json:"bidder"`
	Amount            int64     `json:"amount"`
	EstimatedDuration int64     `json:"estimated_duration"` // seconds
	CreatedAt         time.Time `json:"created_at"`
	Accepted          bool      `json:"accepted"`
}

// Reputation is one record per agent, created once and never deleted.
type Reputation struct {
	ID             uint      `gorm:"primarykey" json:"-"`
	Agent          string    `gorm:"uniqueIndex;size:64" json:"agent"`
	CompletedTasks int64     `json:"completed_tasks"`
	FailedTasks    int64     `json:"failed_tasks"`
	TotalEarned    int64     `json:"total_earned"`
	SuccessRate    int64     `json:"success_rate"`
	RatingSum      int64     `json:"rating_sum"`
	RatingCount    int64     `json:"rating_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AgentIdentity backs the identity/authorization check: a caller proves
// control of an identity by presenting the API key whose SHA-256 hash
// is stored here.
type AgentIdentity struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	AgentID   string    `gorm:"uniqueIndex;size:64" json:"agent_id"`
	Name      string    `gorm:"size:100" json:"name"`
	KeyHash   string    `gorm:"size:64" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Account is one custody balance in the value-transfer ledger. Vault
// accounts are addressed by a hash derived from the owning task key;
// agent accounts are addressed by the agent identity itself.
type Account struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	Address   string    `gorm:"uniqueIndex;size:64" json:"address"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
