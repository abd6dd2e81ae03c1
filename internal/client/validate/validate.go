// Package validate contains the pure credential checks used by the signup
// and login forms. All functions are stateless; policy thresholds live in a
// Policy value so callers can tighten or relax them through configuration.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Default policy thresholds. The password minimum matches the backend
// requirement; the username minimum is the stricter of the two rules the
// product has shipped with.
const (
	DefaultUsernameMinLen = 8
	DefaultPasswordMinLen = 6
	DefaultNameMinLen     = 3
)

// passwordSymbols is the fixed punctuation set counted as "special
// characters" by the strength score.
const passwordSymbols = `!@#$%^&*(),.?":{}|<>`

// Canonical field messages.
const (
	MsgUsernameRequired     = "Username is required"
	MsgUsernameAlphanumeric = "Username must be alphanumeric"
	MsgPasswordRequired     = "Password is required"
	MsgPasswordLowercase    = "Password should contain at least one lowercase letter"
	MsgPasswordUppercase    = "Password should contain at least one uppercase letter"
	MsgPasswordSymbol       = "Password should contain at least one special character"
	MsgConfirmRequired      = "Please confirm your password"
	MsgPasswordMismatch     = "Passwords do not match"
	MsgTermsRequired        = "You must agree to the terms and conditions"
)

// Field and slot names used in error maps. The auth and terms slots are
// form-level: they never correspond to a single input.
const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	SlotTerms            = "terms"
	SlotAuth             = "auth"
)

// Policy holds the configurable validation thresholds. The password
// minimum-length rule and the four-character-class rule are independent
// switches; both default to on.
type Policy struct {
	UsernameMinLen        int
	AlphanumericUsernames bool
	PasswordMinLen        int
	RequireAllClasses     bool
	NameMinLen            int
}

// DefaultPolicy returns the thresholds the client ships with.
func DefaultPolicy() Policy {
	return Policy{
		UsernameMinLen:        DefaultUsernameMinLen,
		AlphanumericUsernames: true,
		PasswordMinLen:        DefaultPasswordMinLen,
		RequireAllClasses:     true,
		NameMinLen:            DefaultNameMinLen,
	}
}

// FormValues is the full set of signup form inputs.
type FormValues struct {
	Username        string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	AgreeToTerms    bool
}

// Errors maps field/slot names to human-readable messages; an empty string
// means the field is valid.
type Errors map[string]string

// Empty reports whether no field carries a message.
func (e Errors) Empty() bool {
	for _, msg := range e {
		if msg != "" {
			return false
		}
	}
	return true
}

// Username validates a username against the policy. Returns an empty string
// when the value passes.
func (p Policy) Username(v string) string {
	rules := []validation.Rule{
		validation.Required.Error(MsgUsernameRequired),
		validation.Length(p.UsernameMinLen, 0).
			Error(fmt.Sprintf("Username must be at least %d characters long", p.UsernameMinLen)),
	}
	if p.AlphanumericUsernames {
		rules = append(rules, is.Alphanumeric.Error(MsgUsernameAlphanumeric))
	}
	if err := validation.Validate(v, rules...); err != nil {
		return err.Error()
	}
	return ""
}

// Password validates a password and computes its strength score. The score
// is always computed, pass or fail: four equally weighted predicates
// (minimum length, lowercase, uppercase, symbol) contribute 25 points each.
// The returned message is the first unmet predicate; it is empty only when
// the minimum length is met and, if the policy requires all four classes,
// every predicate holds.
func (p Policy) Password(v string) (string, int) {
	if err := validation.Validate(v, validation.Required.Error(MsgPasswordRequired)); err != nil {
		return err.Error(), 0
	}

	tooShort := fmt.Sprintf("Password must be at least %d characters long", p.PasswordMinLen)

	strength := 0
	feedback := ""

	if len(v) >= p.PasswordMinLen {
		strength += 25
	} else {
		feedback = tooShort
	}
	if strings.IndexFunc(v, unicode.IsLower) >= 0 {
		strength += 25
	} else if feedback == "" {
		feedback = MsgPasswordLowercase
	}
	if strings.IndexFunc(v, unicode.IsUpper) >= 0 {
		strength += 25
	} else if feedback == "" {
		feedback = MsgPasswordUppercase
	}
	if strings.ContainsAny(v, passwordSymbols) {
		strength += 25
	} else if feedback == "" {
		feedback = MsgPasswordSymbol
	}

	if len(v) < p.PasswordMinLen {
		return tooShort, strength
	}
	if p.RequireAllClasses && feedback != "" {
		return feedback, strength
	}
	return "", strength
}

// Confirmation validates the password confirmation against the password.
// Comparison is exact string equality, no normalization.
func (p Policy) Confirmation(confirm, password string) string {
	err := validation.Validate(confirm,
		validation.Required.Error(MsgConfirmRequired),
		validation.By(stringEquals(password, MsgPasswordMismatch)),
	)
	if err != nil {
		return err.Error()
	}
	return ""
}

// Name validates a person-name field. The label prefixes the message, e.g.
// Name("First name", v, 3).
func Name(label, value string, minLen int) string {
	err := validation.Validate(value,
		validation.Required.Error(label+" is required"),
		validation.Length(minLen, 0).
			Error(fmt.Sprintf("%s must be at least %d characters long", label, minLen)),
	)
	if err != nil {
		return err.Error()
	}
	return ""
}

// Form runs every field validator unconditionally (the touched set does not
// apply here) and reports overall validity: every message empty and the
// terms flag accepted. A missing acceptance yields the distinct terms
// message.
func (p Policy) Form(v FormValues) (Errors, bool) {
	passwordMsg, _ := p.Password(v.Password)

	errs := Errors{
		FieldUsername:        p.Username(v.Username),
		FieldPassword:        passwordMsg,
		FieldConfirmPassword: p.Confirmation(v.ConfirmPassword, v.Password),
		FieldFirstName:       Name("First name", v.FirstName, p.NameMinLen),
		FieldLastName:        Name("Last name", v.LastName, p.NameMinLen),
		SlotTerms:            "",
		SlotAuth:             "",
	}
	if !v.AgreeToTerms {
		errs[SlotTerms] = MsgTermsRequired
	}
	return errs, errs.Empty()
}

// StrengthLabel buckets a 0–100 score into the meter label shown next to
// the password prompt.
func StrengthLabel(strength int) string {
	switch {
	case strength <= 25:
		return "Weak"
	case strength <= 50:
		return "Fair"
	case strength <= 75:
		return "Good"
	default:
		return "Strong"
	}
}

func stringEquals(expected, msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != expected {
			return errors.New(msg)
		}
		return nil
	}
}
