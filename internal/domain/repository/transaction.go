package repository

import "context"

// TransactionManager runs address book changes atomically without exposing the DB driver to use cases.
type TransactionManager interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error the transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	// NewAddressRepository returns an AddressRepository bound to the current transaction.
	NewAddressRepository() AddressRepository
}
