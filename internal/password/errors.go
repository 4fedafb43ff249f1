// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package password

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidOptions is returned when neither lowercase nor uppercase
	// letters are enabled. Digits and specials alone are not a valid base.
	ErrInvalidOptions = errors.New("password must contain at least one of the following: lowercase, uppercase")

	// ErrInvalidLength is returned when the requested length is below
	// [MinLength], or too short for the requested class combination.
	ErrInvalidLength = errors.New("invalid password length")
)

// LengthError reports a length that is valid on its own but too short for
// the number of character classes requested. It wraps [ErrInvalidLength].
type LengthError struct {
	Length  int
	Options []string
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("password length %d is too short for the chosen options: [%s]",
		e.Length, strings.Join(e.Options, ", "))
}

func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}
