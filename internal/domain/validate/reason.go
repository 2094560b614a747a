// Package validate implements the five-stage candidate validation pipeline.
package validate

import "fmt"

// Reason identifies the first pipeline stage a candidate failed. Stages run
// in a fixed order and short-circuit, so exactly one reason is reported per
// rejected candidate.
type Reason string

// Rejection reasons, in pipeline stage order.
const (
	ReasonInvalidEmail      Reason = "invalid_email"
	ReasonPlaceholderData   Reason = "placeholder_data"
	ReasonNotAnIndividual   Reason = "not_an_individual"
	ReasonInvalidProfileURL Reason = "invalid_profile_url"
	ReasonDuplicateEmail    Reason = "duplicate_email"
)

// Reasons returns all rejection reasons in pipeline stage order.
func Reasons() []Reason {
	return []Reason{
		ReasonInvalidEmail,
		ReasonPlaceholderData,
		ReasonNotAnIndividual,
		ReasonInvalidProfileURL,
		ReasonDuplicateEmail,
	}
}

// Rejection reports why a candidate was discarded. It implements error so
// callers can thread it through the usual error paths; rejections are
// per-record and never fatal to a run.
type Rejection struct {
	Reason Reason
	Detail string
}

func (r *Rejection) Error() string {
	if r.Detail == "" {
		return string(r.Reason)
	}
	return fmt.Sprintf("%s: %s", r.Reason, r.Detail)
}

// ReasonOf extracts the rejection reason from an error returned by
// Validator.Validate. The second result is false for nil or foreign errors.
func ReasonOf(err error) (Reason, bool) {
	if rej, ok := err.(*Rejection); ok {
		return rej.Reason, true
	}
	return "", false
}
