package service

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	nameMinLength  = 2
	nameMaxLength  = 50
	emailMaxLength = 100
	phoneMaxLength = 20
)

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z' -]+$`)
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().\-]*$`)
)

// validate trims the candidate, lowercases the email and collects every
// violated constraint. The returned candidate is the normalized form that
// gets stored on success.
func validate(c Candidate) (Candidate, *ValidationError) {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.PhoneNumber = strings.TrimSpace(c.PhoneNumber)

	verr := &ValidationError{}
	validateName(verr, "firstName", "first name", c.FirstName)
	validateName(verr, "lastName", "last name", c.LastName)
	validateEmail(verr, c.Email)
	validatePhone(verr, c.PhoneNumber)

	if len(verr.Fields) > 0 {
		return Candidate{}, verr
	}
	return c, nil
}

func validateName(verr *ValidationError, field, label, value string) {
	if value == "" {
		verr.add(field, fmt.Sprintf("%s is required", label))
		return
	}
	if len(value) < nameMinLength || len(value) > nameMaxLength {
		verr.add(field, fmt.Sprintf("%s must be between %d and %d characters", label, nameMinLength, nameMaxLength))
	}
	if !namePattern.MatchString(value) {
		verr.add(field, fmt.Sprintf("%s may only contain letters, spaces, hyphens and apostrophes", label))
	}
}

func validateEmail(verr *ValidationError, value string) {
	if value == "" {
		verr.add("email", "email is required")
		return
	}
	if len(value) > emailMaxLength {
		verr.add("email", fmt.Sprintf("email must be at most %d characters", emailMaxLength))
	}
	if !emailPattern.MatchString(value) {
		verr.add("email", "email must be a valid email address")
	}
}

func validatePhone(verr *ValidationError, value string) {
	if value == "" {
		return
	}
	if len(value) > phoneMaxLength {
		verr.add("phoneNumber", fmt.Sprintf("phone number must be at most %d characters", phoneMaxLength))
	}
	if !phonePattern.MatchString(value) {
		verr.add("phoneNumber", "phone number must be a valid phone number")
	}
}
