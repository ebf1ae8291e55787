package ports

import (
	"io"
	"time"

	"patternmap/internal/domain"
)

// Simulation holds the force layout parameters handed to the browser page
type Simulation struct {
	CollisionPadding  float64
	CollisionStrength float64
	AlphaDecay        float64
	MaxTicks          int
	ChargeStrength    float64
	ChargeDistanceMax float64
}

// PageOptions configures a rendered graph page
type PageOptions struct {
	Title          string
	APIBase        string // Empty for a static export; set when served
	Simulation     Simulation
	SearchDebounce time.Duration
	ResizeDebounce time.Duration
}

// PageRenderer renders the current engine view as a self-contained page
type PageRenderer interface {
	Render(w io.Writer, e *domain.Engine, opts PageOptions) error
}
