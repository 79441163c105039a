package wellmerge

import (
	"github.com/rs/zerolog"

	"github.com/petrolog/wellmerge/pkg/errors"
)

// Option is a function that configures a Merger instance.
type Option func(*config) error

// WithStep configures the master grid depth step, in feet.
// Zero leaves the engine default in place.
func WithStep(step float64) Option {
	return func(c *config) error {
		if step < 0 {
			return errors.NewValidationError("step", step, "step must not be negative")
		}
		c.step = step
		return nil
	}
}

// WithGapLimit configures the maximum interpolation gap, in feet.
// Zero means derive it adaptively from the observed sample spacing.
func WithGapLimit(limit float64) Option {
	return func(c *config) error {
		if limit < 0 {
			return errors.NewValidationError("gap limit", limit, "gap limit must not be negative")
		}
		c.gapLimit = limit
		return nil
	}
}

// WithLogger configures the logger used for merge progress and warnings.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return errors.NewValidationError("logger", nil, "logger must not be nil")
		}
		c.logger = logger
		return nil
	}
}
