// Package redact scrubs sensitive information from strings before they are
// logged. Error values in this codebase can carry connection strings, JWT
// tokens, email addresses, and SQL fragments; everything that reaches a log
// line goes through here first.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedCredential = "[REDACTED_CREDENTIAL]"
	RedactedJWT        = "[REDACTED_JWT]"
	RedactedEmail      = "[REDACTED_EMAIL]"
	RedactedSQL        = "[REDACTED_SQL]"
)

// Precompiled patterns, applied in order.
var redactions = []struct {
	pattern     *regexp.Regexp
	placeholder string
}{
	{
		// Database connection strings with inline credentials.
		pattern:     regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`),
		placeholder: RedactedCredential,
	},
	{
		// Password-looking key/value fragments.
		pattern:     regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?|['"]?[=:])[^'"&\s]{3,}`),
		placeholder: RedactedCredential,
	},
	{
		// The standard three-part base64url JWT shape.
		pattern:     regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		placeholder: RedactedJWT,
	},
	{
		// Email addresses.
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		placeholder: RedactedEmail,
	},
	{
		// SQL statement fragments that may surface in driver errors.
		pattern:     regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)\s[\s\w,*()$='"]*(FROM|INTO|SET)\s[\s\w,*()$='"]*`),
		placeholder: RedactedSQL,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range redactions {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output.
// Returns the empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
