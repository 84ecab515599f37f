package ports

import "go.trai.ch/rab/internal/core/domain"

// PlanHasher fingerprints build plans.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type PlanHasher interface {
	// Fingerprint returns a stable content hash of the plan.
	Fingerprint(plan *domain.BuildPlan) (string, error)
}
