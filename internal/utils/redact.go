package utils

import "regexp"

// userinfoPattern matches the "user[:password]@" part of a URL authority.
var userinfoPattern = regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9+.-]*://)[^/@\s]+@`)

// RedactedUserinfo replaces credentials in redacted URLs.
const RedactedUserinfo = "***"

// Redact masks URL userinfo anywhere in s, so remote listings and git
// errors can be printed without leaking access tokens.
func Redact(s string) string {
	return userinfoPattern.ReplaceAllString(s, "${1}"+RedactedUserinfo+"@")
}
