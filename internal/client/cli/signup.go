package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dsmolenski/accountcli/internal/client/form"
	"github.com/dsmolenski/accountcli/internal/client/validate"
	"github.com/dsmolenski/accountcli/internal/common"
)

// errorFieldOrder fixes the order form errors are reported in after a failed
// submission.
var errorFieldOrder = []string{
	validate.FieldUsername,
	validate.FieldFirstName,
	validate.FieldLastName,
	validate.FieldPassword,
	validate.FieldConfirmPassword,
	validate.SlotTerms,
	validate.SlotAuth,
}

// Signup walks the user through the registration form field by field.
//
// Every answer is fed through the form machine, so the user sees the same
// validation messages they would get in a UI, as they type. An invalid form
// is rejected locally and never reaches the server. On success the user is
// sent to the login screen; signing up never signs in.
func (a *App) Signup(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("You are already signed in.")
		return common.ErrAlreadyAuthenticated
	}

	m := form.NewMachine(a.config.Validation, func(ctx context.Context, values validate.FormValues) error {
		return a.auth.Signup(ctx, values)
	})

	prompts := []struct {
		field  string
		prompt string
	}{
		{validate.FieldUsername, "Choose a username"},
		{validate.FieldFirstName, "First name"},
		{validate.FieldLastName, "Last name"},
	}
	for _, p := range prompts {
		value, err := getSimpleText(a.reader, p.prompt, os.Stdout)
		if err != nil {
			return err
		}
		st := m.FieldChange(p.field, value)
		printFieldError(st, p.field)
	}

	password, err := getPassword("Choose a password", os.Stdout)
	if err != nil {
		return err
	}
	st := m.FieldChange(validate.FieldPassword, string(password))
	common.WipeByteArray(password)
	printlnFn(fmt.Sprintf("Password strength: %s (%d/100)", validate.StrengthLabel(st.Strength), st.Strength))
	printFieldError(st, validate.FieldPassword)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	st = m.FieldChange(validate.FieldConfirmPassword, string(confirm))
	common.WipeByteArray(confirm)
	printFieldError(st, validate.FieldConfirmPassword)

	answer, err := getSimpleText(a.reader, "Do you agree to the terms and conditions? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	m.TermsToggle(strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes"))

	st = m.Submit(ctx)
	if st.Status != form.StatusSucceeded {
		printErrors(st)
		return common.ErrSignupRejected
	}

	printlnFn("Account created! You can now log in.")
	return nil
}

func printFieldError(st form.State, field string) {
	if msg := st.Errors[field]; msg != "" {
		printlnFn("  !", msg)
	}
}

func printErrors(st form.State) {
	printlnFn("Signup failed:")
	for _, field := range errorFieldOrder {
		if msg := st.Errors[field]; msg != "" {
			printlnFn("  -", msg)
		}
	}
}
