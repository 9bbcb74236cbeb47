package approval

import "strings"

// MinReasonLen is the single minimum applied to rejection, partner-decline
// and cancellation reasons.
const MinReasonLen = 3

// ValidReason reports whether the trimmed reason meets the minimum length.
func ValidReason(reason string) bool {
	return len(strings.TrimSpace(reason)) >= MinReasonLen
}
