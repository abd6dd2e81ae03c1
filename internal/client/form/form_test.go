package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsmolenski/accountcli/internal/client/validate"
)

func validValues() map[string]string {
	return map[string]string{
		validate.FieldUsername:        "johndoe123",
		validate.FieldPassword:        "Secret1!",
		validate.FieldConfirmPassword: "Secret1!",
		validate.FieldFirstName:       "John",
		validate.FieldLastName:        "Doe",
	}
}

func fillValid(m *Machine) {
	for field, value := range validValues() {
		m.FieldChange(field, value)
	}
	m.TermsToggle(true)
}

func TestNewState_StartsCleanAndIdle(t *testing.T) {
	s := NewState()
	assert.Equal(t, StatusIdle, s.Status)
	assert.Empty(t, s.Touched)
	assert.True(t, s.Errors.Empty())
}

func TestApply_UntouchedFieldsShowNoErrors(t *testing.T) {
	p := validate.DefaultPolicy()
	s := NewState()

	// Only the username has been typed into; everything else is invalid
	// but silent.
	s = Apply(p, s, FieldChanged{Field: validate.FieldUsername, Value: "abc"})

	assert.NotEmpty(t, s.Errors[validate.FieldUsername])
	assert.Empty(t, s.Errors[validate.FieldPassword])
	assert.Empty(t, s.Errors[validate.FieldFirstName])
}

func TestApply_ChangeRevalidatesOnEveryKeystroke(t *testing.T) {
	p := validate.DefaultPolicy()
	s := NewState()

	s = Apply(p, s, FieldChanged{Field: validate.FieldUsername, Value: "abc"})
	assert.Equal(t, "Username must be at least 8 characters long", s.Errors[validate.FieldUsername])

	s = Apply(p, s, FieldChanged{Field: validate.FieldUsername, Value: "johndoe123"})
	assert.Empty(t, s.Errors[validate.FieldUsername])
}

func TestApply_PasswordChangeRecomputesConfirmation(t *testing.T) {
	p := validate.DefaultPolicy()
	s := NewState()

	s = Apply(p, s, FieldChanged{Field: validate.FieldPassword, Value: "Secret1!"})
	s = Apply(p, s, FieldChanged{Field: validate.FieldConfirmPassword, Value: "Secret1!"})
	assert.Empty(t, s.Errors[validate.FieldConfirmPassword])

	// Editing the password invalidates the already-touched confirmation.
	s = Apply(p, s, FieldChanged{Field: validate.FieldPassword, Value: "Secret2!"})
	assert.Equal(t, validate.MsgPasswordMismatch, s.Errors[validate.FieldConfirmPassword])
}

func TestApply_BlurMarksTouchedEvenWithoutChange(t *testing.T) {
	p := validate.DefaultPolicy()
	s := NewState()

	s = Apply(p, s, Blurred{Field: validate.FieldFirstName})

	assert.True(t, s.Touched[validate.FieldFirstName])
	assert.Equal(t, "First name is required", s.Errors[validate.FieldFirstName])
}

func TestApply_TermsToggleDoesNotTouch(t *testing.T) {
	p := validate.DefaultPolicy()
	s := NewState()

	s = Apply(p, s, TermsToggled{Accepted: true})

	assert.True(t, s.Values.AgreeToTerms)
	assert.Empty(t, s.Touched)
}

func TestApply_EditAfterFailureReturnsToIdle(t *testing.T) {
	p := validate.DefaultPolicy()
	s := NewState()
	s.Status = StatusFailed
	s.Errors[validate.SlotAuth] = "unknown user"

	s = Apply(p, s, FieldChanged{Field: validate.FieldUsername, Value: "johndoe123"})

	assert.Equal(t, StatusIdle, s.Status)
	assert.Empty(t, s.Errors[validate.SlotAuth])
}

func TestApply_StrengthFollowsPassword(t *testing.T) {
	p := validate.DefaultPolicy()
	s := NewState()

	s = Apply(p, s, FieldChanged{Field: validate.FieldPassword, Value: "abcdef"})
	assert.Equal(t, 50, s.Strength)

	s = Apply(p, s, FieldChanged{Field: validate.FieldPassword, Value: "Secret1!"})
	assert.Equal(t, 100, s.Strength)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	p := validate.DefaultPolicy()
	before := NewState()

	_ = Apply(p, before, FieldChanged{Field: validate.FieldUsername, Value: "x"})

	assert.Empty(t, before.Touched)
	assert.Empty(t, before.Values.Username)
}

// Scenario: a username below the policy minimum never reaches the network
// and the form ends Failed with the username message set.
func TestSubmit_InvalidFormNeverCallsSubmitter(t *testing.T) {
	calls := 0
	m := NewMachine(validate.DefaultPolicy(), func(context.Context, validate.FormValues) error {
		calls++
		return nil
	})

	fillValid(m)
	m.FieldChange(validate.FieldUsername, "abcde")

	s := m.Submit(context.Background())

	assert.Equal(t, 0, calls)
	assert.Equal(t, StatusFailed, s.Status)
	assert.Equal(t, "Username must be at least 8 characters long", s.Errors[validate.FieldUsername])
}

func TestSubmit_ValidFormSucceeds(t *testing.T) {
	var got validate.FormValues
	m := NewMachine(validate.DefaultPolicy(), func(_ context.Context, values validate.FormValues) error {
		got = values
		return nil
	})

	fillValid(m)
	s := m.Submit(context.Background())

	assert.Equal(t, StatusSucceeded, s.Status)
	assert.Equal(t, "johndoe123", got.Username)
	assert.True(t, got.AgreeToTerms)
}

func TestSubmit_NetworkFailureLandsInAuthSlot(t *testing.T) {
	m := NewMachine(validate.DefaultPolicy(), func(context.Context, validate.FormValues) error {
		return errors.New("username already taken")
	})

	fillValid(m)
	s := m.Submit(context.Background())

	assert.Equal(t, StatusFailed, s.Status)
	assert.Equal(t, "username already taken", s.Errors[validate.SlotAuth])
	assert.Empty(t, s.Errors[validate.FieldUsername], "network errors are form-level, not per-field")
}

func TestSubmit_ValidationIgnoresTouched(t *testing.T) {
	m := NewMachine(validate.DefaultPolicy(), func(context.Context, validate.FormValues) error {
		return nil
	})

	// Nothing touched at all; submit must still surface every error.
	s := m.Submit(context.Background())

	require.Equal(t, StatusFailed, s.Status)
	assert.Equal(t, validate.MsgUsernameRequired, s.Errors[validate.FieldUsername])
	assert.Equal(t, validate.MsgTermsRequired, s.Errors[validate.SlotTerms])
}

// Two back-to-back submits while the first is still in flight must produce
// exactly one network call.
func TestSubmit_GuardsAgainstDoubleSubmission(t *testing.T) {
	var m *Machine
	calls := 0
	m = NewMachine(validate.DefaultPolicy(), func(ctx context.Context, _ validate.FormValues) error {
		calls++
		// Simulate the user clicking submit again while the request is
		// pending.
		inner := m.Submit(ctx)
		assert.Equal(t, StatusSubmitting, inner.Status)
		return nil
	})

	fillValid(m)
	s := m.Submit(context.Background())

	assert.Equal(t, 1, calls)
	assert.Equal(t, StatusSucceeded, s.Status)
}
