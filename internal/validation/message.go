package validation

import (
	"errors"
	"unicode/utf8"
)

const MaxMessageLength = 2000

var ErrMessageTooLong = errors.New("message is too long (max 2000 characters)")

// ValidateMessage checks a chat message. Blank messages are valid; they get
// a prompt instead of an error.
func ValidateMessage(text string) error {
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}
