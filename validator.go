package ratewall

import (
	"errors"
	"fmt"
	"math"

	"github.com/ratewall/ratewall/utils"
)

// ErrInvalidRequest marks validation failures. They surface to the caller
// immediately and never reach storage; transports map them to the
// wire-compatible zero response.
var ErrInvalidRequest = errors.New("invalid request")

// validateRequest checks a check request before any I/O happens.
func validateRequest(req Request) error {
	if err := utils.ValidateClientID(req.ClientID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if err := utils.ValidateResource(req.Resource); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if req.Cost < 0 {
		return fmt.Errorf("%w: cost cannot be negative, got %g", ErrInvalidRequest, req.Cost)
	}
	if math.IsNaN(req.Cost) || math.IsInf(req.Cost, 0) {
		return fmt.Errorf("%w: cost must be a finite number", ErrInvalidRequest)
	}
	return nil
}
