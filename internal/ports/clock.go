package ports

import "time"

// Clock supplies the timestamps bracketing a measurement. A port so tests
// can pin elapsed time deterministically.
type Clock interface {
	Now() time.Time
}
