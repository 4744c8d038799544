package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrGoalNotFound indicates that a goal with the given ID does not exist.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrScenarioNotFound indicates that an income scenario with the given ID does not exist.
	ErrScenarioNotFound = errors.New("income scenario not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrFlexEventNotFound indicates that a flex event with the given ID does not exist.
	ErrFlexEventNotFound = errors.New("flex event not found")

	// ErrSnapshotNotFound indicates that no plan-health snapshot has been materialized yet.
	ErrSnapshotNotFound = errors.New("plan health snapshot not found")

	// ErrSettingNotFound indicates that an application setting has not been stored.
	ErrSettingNotFound = errors.New("setting not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidTransactionType indicates a transaction type outside income/expense/allocation.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrAllocationWithoutGoal indicates an allocation transaction that does not reference a goal.
	ErrAllocationWithoutGoal = errors.New("allocation transaction requires a goal")

	// ErrPausedGoalNotAffected indicates a flex event pausing a goal outside its affected set.
	ErrPausedGoalNotAffected = errors.New("paused goal is not in the event's affected goals")

	// ErrUnknownAssistantAction indicates an assistant action name with no registered handler.
	ErrUnknownAssistantAction = errors.New("unknown assistant action")

	// ErrInvalidActionPayload indicates an assistant action payload that does not decode.
	ErrInvalidActionPayload = errors.New("invalid action payload")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidMonth indicates a month parameter outside 1-12 or a non-positive year.
	ErrInvalidMonth = errors.New("invalid year/month")
)

// Data integrity errors represent inconsistencies or corruption in the data.
var (
	// ErrDataInconsistency indicates that the data is in an inconsistent state
	// (e.g., a goal's current amount diverging from its allocation log).
	ErrDataInconsistency = errors.New("data inconsistency detected")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrEncryptionKeyNotSet indicates the settings encryption key is absent from config.
	ErrEncryptionKeyNotSet = errors.New("encryption key not configured")
)
