package lneto

import "errors"

// Validator accumulates decode-time errors without allocating on the
// happy path. It is grounded on the accumulator pattern of the teacher
// repo's Validator type, trimmed to the single-error-by-default
// behavior this stack needs (a bare-metal caller wants to know that
// something is wrong, not collect every possible inconsistency).
type Validator struct {
	allowMultiErrs bool
	accum          []error
}

// AllowMultipleErrors changes the Validator to accumulate every error
// reported instead of only the first one.
func (v *Validator) AllowMultipleErrors(allow bool) { v.allowMultiErrs = allow }

// AddError records a non-nil decode error.
func (v *Validator) AddError(err error) {
	if err == nil {
		panic("lneto: AddError called with nil error")
	}
	if len(v.accum) != 0 && !v.allowMultiErrs {
		return
	}
	v.accum = append(v.accum, err)
}

// HasError reports whether any error has been recorded.
func (v *Validator) HasError() bool { return len(v.accum) != 0 }

// Err returns the accumulated error, or nil if none was recorded. More
// than one accumulated error is joined with errors.Join.
func (v *Validator) Err() error {
	switch len(v.accum) {
	case 0:
		return nil
	case 1:
		return v.accum[0]
	default:
		return errors.Join(v.accum...)
	}
}

// Reset clears the accumulated errors for reuse.
func (v *Validator) Reset() { v.accum = v.accum[:0] }
