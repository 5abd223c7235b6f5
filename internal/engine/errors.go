package engine

import (
	"github.com/rotisserie/eris"

	"github.com/agrovista/farmplan-cli/internal/agridata"
)

// ErrInvalidInput flags a request rejected before any computation:
// non-positive land size, non-positive budget, intensity outside [0,1], or
// an unknown strategy.
var ErrInvalidInput = eris.New("engine: invalid input")

// ErrUnknownCrop is the catalog's unknown-crop error, re-exported so callers
// can match it without importing agridata.
var ErrUnknownCrop = agridata.ErrUnknownCrop
