package model

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks structural constraints on the request (non-negative
// dimensions, well-formed sub-records). Geometric sufficiency, such as
// having enough path points or mesh vertices, is deliberately not
// checked here: those are per-element skip conditions handled
// tolerantly by the builders, not fatal request errors.
func (r *ExportRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid export request: %w", err)
	}
	return nil
}
