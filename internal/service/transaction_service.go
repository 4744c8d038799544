package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/mdekker/Goal-Planner-Backend/internal/model"
	"github.com/mdekker/Goal-Planner-Backend/internal/repository"
)

// TransactionService handles transaction recording and retrieval. Recording
// an allocation credits the referenced goal's current amount in the same
// atomic write as the log insert, so the cached aggregate can never diverge
// from the log.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	goalRepo        *repository.GoalRepository
}

// NewTransactionService creates a new TransactionService with the provided repositories.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	goalRepo *repository.GoalRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
	}
}

// GetTransactions retrieves transactions matching the filter.
func (s *TransactionService) GetTransactions(filter model.TransactionFilter) ([]model.Transaction, error) {
	return s.transactionRepo.GetTransactions(filter)
}

// GetTransaction retrieves a single transaction by ID.
func (s *TransactionService) GetTransaction(id string) (model.Transaction, error) {
	return s.transactionRepo.GetTransaction(id)
}

// RecordTransaction assigns identity and appends a transaction to the log.
// A referenced goal must exist; the append itself is atomic with the goal
// credit for allocation types.
func (s *TransactionService) RecordTransaction(t model.Transaction) (model.Transaction, error) {
	if t.GoalID != nil {
		if _, err := s.goalRepo.GetGoal(*t.GoalID); err != nil {
			return model.Transaction{}, err
		}
	}

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.CreatedAt = time.Now().UTC()

	if err := s.transactionRepo.AppendTransaction(t); err != nil {
		return model.Transaction{}, err
	}
	return t, nil
}

// GetMonthTransactions retrieves all transactions within one calendar month.
func (s *TransactionService) GetMonthTransactions(year, month int) ([]model.Transaction, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return s.transactionRepo.GetTransactions(model.TransactionFilter{
		StartDate: start,
		EndDate:   end,
	})
}
