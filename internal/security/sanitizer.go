// Package security provides sanitization of user-supplied note content.
package security

import "github.com/microcosm-cc/bluemonday"

// ContentSanitizer strips unsafe markup from note content. Notes are
// markdown, but raw HTML embedded in them would otherwise reach other
// sessions of the same account when rendered; script, iframe, style and
// event-handler attributes are removed here, before persistence.
// Sanitization is idempotent.
type ContentSanitizer struct {
	policy *bluemonday.Policy
}

func NewContentSanitizer() *ContentSanitizer {
	// UGCPolicy keeps the formatting tags markdown renderers emit and
	// drops everything executable.
	return &ContentSanitizer{policy: bluemonday.UGCPolicy()}
}

func (s *ContentSanitizer) Sanitize(raw string) string {
	return s.policy.Sanitize(raw)
}
