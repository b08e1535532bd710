// Package utils holds small shared helpers: identifier validation and the
// builder pool.
package utils

import "fmt"

// allowedCharsArray is a precomputed boolean array for O(1) character
// validation. The colon is deliberately absent: it is the bucket-key
// separator, so client and resource identifiers must never contain it.
var allowedCharsArray [128]bool

func init() {
	for _, c := range "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-.@+/" {
		allowedCharsArray[c] = true
	}
}

const charsetHint = "Only alphanumeric ASCII, underscore (_), hyphen (-), period (.), at (@), plus (+), and slash (/) are allowed"

// ValidateIdentifier validates a client or resource identifier: non-empty,
// at most maxLen bytes, restricted charset.
func ValidateIdentifier(value, fieldName string, maxLen int) error {
	if len(value) == 0 {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}

	if maxLen > 0 && len(value) > maxLen {
		return fmt.Errorf("%s cannot exceed %d bytes, got %d bytes", fieldName, maxLen, len(value))
	}

	for i, r := range value {
		if r >= 128 || !allowedCharsArray[r] {
			return fmt.Errorf("%s contains invalid character '%c' at position %d. %s", fieldName, r, i, charsetHint)
		}
	}

	return nil
}

// ValidateClientID validates a client identifier with standard rules.
func ValidateClientID(clientID string) error {
	return ValidateIdentifier(clientID, "client id", 64)
}

// ValidateResource validates a resource identifier with standard rules.
func ValidateResource(resource string) error {
	return ValidateIdentifier(resource, "resource", 128)
}
