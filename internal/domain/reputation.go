package domain

import (
	"github.com/gigclaw/backend/pkg/utils/checked"
)

// RecordCompletion applies a verified payout of amount micro-units to
// the ledger. Every step is overflow-checked; an overflow anywhere
// leaves the receiver unmodified and aborts the enclosing operation.
func (r *Reputation) RecordCompletion(amount int64) error {
	completed, err := checked.Add(r.CompletedTasks, 1)
	if err != nil {
		return &ArithmeticError{Op: "completed_tasks + 1", Err: err}
	}

	earned, err := checked.Add(r.TotalEarned, amount)
	if err != nil {
		return &ArithmeticError{Op: "total_earned + amount", Err: err}
	}

	total, err := checked.Add(completed, r.FailedTasks)
	if err != nil {
		return &ArithmeticError{Op: "completed_tasks + failed_tasks", Err: err}
	}
	if total < 1 {
		total = 1
	}

	scaled, err := checked.Mul(completed, 100)
	if err != nil {
		return &ArithmeticError{Op: "completed_tasks * 100", Err: err}
	}
	rate, err := checked.Div(scaled, total)
	if err != nil {
		return &ArithmeticError{Op: "success_rate division", Err: err}
	}

	r.CompletedTasks = completed
	r.TotalEarned = earned
	r.SuccessRate = rate
	return nil
}

// AddRating folds one 1-5 rating into the aggregate. The average is a
// derived view, never stored.
func (r *Reputation) AddRating(rating int64) error {
	sum, err := checked.Add(r.RatingSum, rating)
	if err != nil {
		return &ArithmeticError{Op: "rating_sum + rating", Err: err}
	}
	count, err := checked.Add(r.RatingCount, 1)
	if err != nil {
		return &ArithmeticError{Op: "rating_count + 1", Err: err}
	}

	r.RatingSum = sum
	r.RatingCount = count
	return nil
}

// AverageRating derives the mean rating; zero when unrated.
func (r *Reputation) AverageRating() float64 {
	if r.RatingCount == 0 {
		return 0
	}
	return float64(r.RatingSum) / float64(r.RatingCount)
}
