package ports

import "github.com/TheFahmi/argon-lang/internal/domain"

// ResultStore persists measurements for cross-runtime comparison tables.
type ResultStore interface {
	SaveMeasurement(m domain.Measurement) (path string, err error)
}
