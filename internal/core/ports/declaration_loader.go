// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/rab/internal/core/domain"

// DeclarationLoader reads a dependency declaration from disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=declaration_loader.go -destination=mocks/mock_declaration_loader.go -package=mocks
type DeclarationLoader interface {
	// Load decodes the declaration at path. Entries keep file order and
	// duplicates are preserved for the parser to reject.
	Load(path string) (*domain.RawDeclaration, error)
}
