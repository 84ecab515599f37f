package ports

import "go.trai.ch/rab/internal/core/domain"

// HistoryStore persists the outcome of past invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type HistoryStore interface {
	// Append records an invocation outcome.
	Append(record domain.BuildRecord) error

	// List returns the records for target, newest first. An empty target lists every record.
	List(target string) ([]domain.BuildRecord, error)

	// Clear removes every record.
	Clear() error
}
