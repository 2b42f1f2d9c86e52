package kernel

import "regexp"

// DefaultSessionKey is used when a session id cannot be extracted from the
// incoming context resource path. Requests with unparseable paths all share
// this key instead of failing.
const DefaultSessionKey SessionKey = ""

var (
	sessionPathPattern = regexp.MustCompile(`/sessions/([^/]+)/contexts/`)
	contextNamePattern = regexp.MustCompile(`/contexts/([^/]+)$`)
)

// SessionKey identifies one conversation with the ordering agent. It is
// derived from the NLU platform's context resource path and is opaque beyond
// equality: the in-progress order table is keyed by it.
type SessionKey string

// String returns the raw key value.
func (k SessionKey) String() string {
	return string(k)
}

// IsDefault reports whether the key is the shared fallback for requests whose
// session id could not be extracted.
func (k SessionKey) IsDefault() bool {
	return k == DefaultSessionKey
}

// ExtractSessionKey derives the session key from a context resource path of
// the form ".../sessions/<ID>/contexts/...". Extraction is total: input that
// does not match the pattern yields DefaultSessionKey, never an error, so a
// malformed path degrades to the shared unkeyed session rather than aborting
// the request.
//
// Example:
//
//	key := kernel.ExtractSessionKey(
//	    "projects/bot/agent/sessions/abc-123/contexts/ongoing-order")
//	// key == "abc-123"
func ExtractSessionKey(resource string) SessionKey {
	match := sessionPathPattern.FindStringSubmatch(resource)
	if match == nil {
		return DefaultSessionKey
	}
	return SessionKey(match[1])
}

// ExtractContextName returns the short context name from a context resource
// path ending in "/contexts/<name>", or "" when the path has no such suffix.
// The short names of a request's output contexts form its active-context set.
func ExtractContextName(resource string) string {
	match := contextNamePattern.FindStringSubmatch(resource)
	if match == nil {
		return ""
	}
	return match[1]
}
