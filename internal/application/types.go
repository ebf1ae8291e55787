package application

import "patternmap/internal/domain"

// Re-export domain types for use by adapters
type (
	Pattern = domain.Pattern
	Layer   = domain.Layer
	Engine  = domain.Engine
)
