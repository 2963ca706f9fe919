package httpapi

import (
	"github.com/google/uuid"
)

// minCredentialLength applies to both username and password, matching the
// registration contract.
const minCredentialLength = 5

func validateCredentials(username, password string) []fieldError {
	var errs []fieldError
	if len(username) < minCredentialLength {
		errs = append(errs, fieldError{Field: "username", Message: "must be at least 5 characters long"})
	}
	if len(password) < minCredentialLength {
		errs = append(errs, fieldError{Field: "password", Message: "must be at least 5 characters long"})
	}
	return errs
}

// validNoteID keeps malformed ids out of the store so repositories only ever
// see well-formed uuids.
func validNoteID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
