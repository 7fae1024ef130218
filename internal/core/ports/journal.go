package ports

import "go.trai.ch/bump/internal/core/domain"

// Journal defines the interface for recording persisted manifest changes.
//
//go:generate go run go.uber.org/mock/mockgen -source=journal.go -destination=mocks/mock_journal.go -package=mocks
type Journal interface {
	// Record appends a change to the journal.
	Record(change domain.Change) error
}
