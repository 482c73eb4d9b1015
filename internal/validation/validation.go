// Package validation holds the credential format rules shared by sign-up
// and sign-in.
package validation

import (
	"regexp"

	"github.com/potluck/recipebook/internal/httperr"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

const MinPasswordLength = 6

// Credentials checks the email format and the password length. It returns
// a 422 validation error naming every rule that failed.
func Credentials(email, password string) error {
	if email == "" || password == "" {
		return httperr.Validation("Email and password cannot be empty!")
	}
	msg := ""
	if !emailRegex.MatchString(email) {
		msg = "The form of email is incorrect!"
	}
	if len(password) < MinPasswordLength {
		if msg != "" {
			msg += " "
		}
		msg += "The minimum length of password should be 6."
	}
	if msg != "" {
		return httperr.Validation(msg)
	}
	return nil
}
