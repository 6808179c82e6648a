package services

import "time"

// Marketplace limits. Amounts are micro-units (6 decimal places), so
// MinimumBudget is 1.0 unit of the settlement currency.
const (
	MinimumBudget         int64 = 1_000_000
	ReputationStakeRatio  int64 = 10
	MaxTaskDuration             = 90 * 24 * time.Hour
	MaxTaskIDLength             = 32
	MaxTitleLength              = 100
	MaxDescriptionLength        = 2000
	MaxSkills                   = 10
	MaxSkillLength              = 50
	MaxDeliveryURLLength        = 200
	MinRating             int64 = 1
	MaxRating             int64 = 5
)
