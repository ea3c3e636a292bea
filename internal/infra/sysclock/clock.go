// Package sysclock adapts time.Now to the Clock port.
package sysclock

import (
	"time"

	"github.com/TheFahmi/argon-lang/internal/ports"
)

type Clock struct{}

var _ ports.Clock = Clock{}

func New() Clock { return Clock{} }

func (Clock) Now() time.Time { return time.Now() }
