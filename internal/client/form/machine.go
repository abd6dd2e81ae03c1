package form

import (
	"context"

	"github.com/dsmolenski/accountcli/internal/client/validate"
)

// Submitter performs the network half of a submission once the form has
// validated clean. The error it returns, if any, becomes the form-level
// auth message.
type Submitter func(ctx context.Context, values validate.FormValues) error

// Machine owns one form's State and drives it with events. It is not safe
// for concurrent use: like the UI event loop it replaces, all calls must
// come from a single goroutine.
type Machine struct {
	policy validate.Policy
	submit Submitter
	state  State
}

func NewMachine(policy validate.Policy, submit Submitter) *Machine {
	return &Machine{policy: policy, submit: submit, state: NewState()}
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	return m.state.clone()
}

// FieldChange feeds a keystroke-level value change.
func (m *Machine) FieldChange(field, value string) State {
	m.state = Apply(m.policy, m.state, FieldChanged{Field: field, Value: value})
	return m.State()
}

// TermsToggle feeds a terms-acceptance change.
func (m *Machine) TermsToggle(accepted bool) State {
	m.state = Apply(m.policy, m.state, TermsToggled{Accepted: accepted})
	return m.State()
}

// Blur marks a field as interacted with.
func (m *Machine) Blur(field string) State {
	m.state = Apply(m.policy, m.state, Blurred{Field: field})
	return m.State()
}

// Submit runs the full submission sequence: validate every field ignoring
// the touched set, and only when the form is clean hand off to the
// Submitter. An invalid form never reaches the network. A Submit while one
// is already in flight is a no-op, so at most one submission runs per form
// instance.
func (m *Machine) Submit(ctx context.Context) State {
	if m.state.Status == StatusSubmitting {
		return m.State()
	}

	m.state.Status = StatusValidating
	errs, valid := m.policy.Form(m.state.Values)
	m.state.Errors = errs
	_, strength := m.policy.Password(m.state.Values.Password)
	m.state.Strength = strength

	if !valid {
		m.state.Status = StatusFailed
		return m.State()
	}

	m.state.Status = StatusSubmitting
	err := m.submit(ctx, m.state.Values)
	if err != nil {
		m.state.Status = StatusFailed
		m.state.Errors[validate.SlotAuth] = err.Error()
		return m.State()
	}

	m.state.Status = StatusSucceeded
	return m.State()
}
