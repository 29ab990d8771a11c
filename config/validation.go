package config

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jdginn/go-laser-puzzle/level"
)

func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

func validateInRange(field string, value, min, max float64) []ValidationError {
	if value < min || value > max {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		}}
	}
	return nil
}

func validateHexColor(field, value string) []ValidationError {
	s := strings.TrimPrefix(value, "#")
	ok := len(s) == 6 || len(s) == 3
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			ok = false
		}
	}
	if !ok {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("%q is not a hex color", value),
		}}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors groups errors by their top level section
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	categories := map[string][]ValidationError{}
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		categories[category] = append(categories[category], err)
	}
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, category := range names {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration. Relative paths that were not resolved
// are checked against the working directory.
func (c *Config) Validate() []ValidationError {
	resolver := NewPathResolver(".")

	var errors []ValidationError
	errors = append(errors, resolver.validateFile("level.path", c.Level.Path)...)
	errors = append(errors, resolver.validateFile("render.palette.from_file", c.Render.Palette.FromFile)...)
	errors = append(errors, c.Trace.Validate()...)
	errors = append(errors, c.Rotation.Validate()...)
	errors = append(errors, c.Render.Validate()...)
	errors = append(errors, c.Log.Validate()...)
	return errors
}

func (t *Trace) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateNonNegative("trace.max_bounces", float64(t.MaxBounces))...)
	errors = append(errors, validatePositive("trace.max_distance", t.MaxDistance)...)
	return errors
}

func (r *Rotation) Validate() []ValidationError {
	if _, err := level.ParseRotationMode(r.Mode); err != nil {
		return []ValidationError{{
			Field:   "rotation.mode",
			Message: "must be single or propagating",
		}}
	}
	return nil
}

func (r *Render) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validatePositive("render.cell_size", r.CellSize)...)
	errors = append(errors, validateNonNegative("render.margin", r.Margin)...)
	errors = append(errors, validatePositive("render.beam_width", r.BeamWidth)...)

	for distance, brightness := range r.Falloff {
		errors = append(errors, validateNonNegative("render.falloff", distance)...)
		errors = append(errors, validateInRange(fmt.Sprintf("render.falloff.%v", distance), brightness, 0, 1)...)
	}

	for name, color := range r.Palette.Inline {
		if !slices.Contains(PaletteKeys, name) {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("render.palette.inline.%s", name),
				Message: fmt.Sprintf("unknown element, expected one of %s", strings.Join(PaletteKeys, ", ")),
			})
			continue
		}
		errors = append(errors, validateHexColor(fmt.Sprintf("render.palette.inline.%s", name), color)...)
	}

	return errors
}

func (l *Log) Validate() []ValidationError {
	if _, err := log.ParseLevel(l.Level); err != nil {
		return []ValidationError{{
			Field:   "log.level",
			Message: err.Error(),
		}}
	}
	return nil
}
