package errors

import (
	"math"

	"github.com/basedlsg/PLugg-sub000/internal/domain"
)

// Validator collects the first failing check of a configuration struct.
type Validator struct {
	component string
	err       *Error
}

// NewValidator starts a validation pass for the named component.
func NewValidator(component string) *Validator {
	return &Validator{component: component}
}

func (v *Validator) fail(field string, value any, reason string) {
	if v.err != nil {
		return
	}
	v.err = ValidationError(v.component+": "+field+" "+reason).
		WithCause(domain.ErrInvalidConfig).
		WithField("field", field).
		WithField("value", value)
}

// Finite requires value to be neither NaN nor infinite.
func (v *Validator) Finite(field string, value float64) *Validator {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		v.fail(field, value, "must be finite")
	}
	return v
}

// Range requires lo <= value <= hi.
func (v *Validator) Range(field string, value, lo, hi float64) *Validator {
	v.Finite(field, value)
	if value < lo || value > hi {
		v.fail(field, value, "out of range")
	}
	return v
}

// Positive requires value > 0.
func (v *Validator) Positive(field string, value float64) *Validator {
	v.Finite(field, value)
	if value <= 0 {
		v.fail(field, value, "must be positive")
	}
	return v
}

// MinInt requires value >= lo.
func (v *Validator) MinInt(field string, value, lo int) *Validator {
	if value < lo {
		v.fail(field, value, "too small")
	}
	return v
}

// Check records a failure when ok is false.
func (v *Validator) Check(ok bool, field string, value any, reason string) *Validator {
	if !ok {
		v.fail(field, value, reason)
	}
	return v
}

// Err returns the first failure, or nil.
func (v *Validator) Err() error {
	if v.err == nil {
		return nil
	}
	return v.err
}
