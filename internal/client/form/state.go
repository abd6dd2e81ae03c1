// Package form implements the per-form session state machine that drives
// the signup and login surfaces: field values, touched tracking, derived
// errors, and the submission status lifecycle.
//
// Keystrokes and blurs are plain events folded over the state by a pure
// reducer; only submission has side effects and is owned by the Machine.
package form

import (
	"github.com/dsmolenski/accountcli/internal/client/validate"
)

// Status is the submission lifecycle of a form:
// Idle → Validating → Submitting → {Succeeded, Failed}. Failed re-enters
// Idle as soon as the user edits any field.
type Status int

const (
	StatusIdle Status = iota
	StatusValidating
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusValidating:
		return "validating"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the complete observable state of one form instance. Errors holds
// a message per field plus the form-level terms and auth slots; fields not
// yet touched never carry a message until a full validation pass runs.
type State struct {
	Values   validate.FormValues
	Touched  map[string]bool
	Errors   validate.Errors
	Status   Status
	Strength int
}

// NewState returns the state of a freshly mounted form: empty values,
// nothing touched, no errors, Idle.
func NewState() State {
	return State{
		Touched: map[string]bool{},
		Errors:  validate.Errors{},
		Status:  StatusIdle,
	}
}

// clone returns a deep copy so reducer outputs never alias their inputs.
func (s State) clone() State {
	out := s
	out.Touched = make(map[string]bool, len(s.Touched))
	for k, v := range s.Touched {
		out.Touched[k] = v
	}
	out.Errors = make(validate.Errors, len(s.Errors))
	for k, v := range s.Errors {
		out.Errors[k] = v
	}
	return out
}

// Event is a user interaction folded over the form state.
type Event interface{ isEvent() }

// FieldChanged reports a keystroke-level value change on a text field.
type FieldChanged struct {
	Field string
	Value string
}

// TermsToggled reports the terms-acceptance checkbox changing. Toggling it
// does not mark anything touched.
type TermsToggled struct {
	Accepted bool
}

// Blurred reports the user leaving a field, touched from then on even if
// the value never changed.
type Blurred struct {
	Field string
}

func (FieldChanged) isEvent() {}
func (TermsToggled) isEvent() {}
func (Blurred) isEvent()      {}

// Apply is the pure reducer over (state, event). Any edit while the form is
// Failed returns it to Idle and clears the form-level auth message; every
// change re-validates all currently touched fields, so dependent fields
// (password → confirmation) stay consistent.
func Apply(p validate.Policy, s State, ev Event) State {
	out := s.clone()

	edited := false
	switch e := ev.(type) {
	case FieldChanged:
		setValue(&out.Values, e.Field, e.Value)
		out.Touched[e.Field] = true
		edited = true
	case TermsToggled:
		out.Values.AgreeToTerms = e.Accepted
		edited = true
	case Blurred:
		out.Touched[e.Field] = true
	default:
		return out
	}

	if edited && out.Status == StatusFailed {
		out.Status = StatusIdle
		out.Errors[validate.SlotAuth] = ""
	}

	revalidateTouched(p, &out)
	return out
}

func setValue(v *validate.FormValues, field, value string) {
	switch field {
	case validate.FieldUsername:
		v.Username = value
	case validate.FieldPassword:
		v.Password = value
	case validate.FieldConfirmPassword:
		v.ConfirmPassword = value
	case validate.FieldFirstName:
		v.FirstName = value
	case validate.FieldLastName:
		v.LastName = value
	}
}

// revalidateTouched recomputes the error of every touched field from the
// current values. Untouched fields keep silent: progressive disclosure.
// The strength meter follows the password whenever the password is touched.
func revalidateTouched(p validate.Policy, s *State) {
	for field := range s.Touched {
		if !s.Touched[field] {
			continue
		}
		switch field {
		case validate.FieldUsername:
			s.Errors[field] = p.Username(s.Values.Username)
		case validate.FieldPassword:
			msg, strength := p.Password(s.Values.Password)
			s.Errors[field] = msg
			s.Strength = strength
		case validate.FieldConfirmPassword:
			s.Errors[field] = p.Confirmation(s.Values.ConfirmPassword, s.Values.Password)
		case validate.FieldFirstName:
			s.Errors[field] = validate.Name("First name", s.Values.FirstName, p.NameMinLen)
		case validate.FieldLastName:
			s.Errors[field] = validate.Name("Last name", s.Values.LastName, p.NameMinLen)
		}
	}
}
