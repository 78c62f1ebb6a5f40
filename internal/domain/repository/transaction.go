package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction,
// so a unit's client merge, order insert and watermark advance commit or roll
// back together.
type RepositoryFactory interface {
	// NewUnitRepository returns a UnitRepository bound to the current transaction.
	NewUnitRepository() UnitRepository

	// NewClientRepository returns a ClientRepository bound to the current transaction.
	NewClientRepository() ClientRepository

	// NewOrderRepository returns an OrderRepository bound to the current transaction.
	NewOrderRepository() OrderRepository

	// NewStopListRepository returns a StopListRepository bound to the current transaction.
	NewStopListRepository() StopListRepository

	// NewSettingRepository returns a SettingRepository bound to the current transaction.
	NewSettingRepository() SettingRepository
}
