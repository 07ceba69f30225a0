package service

// ResultKind discriminates mutation outcomes. Success is an explicit
// redirect value handed back to the presentation layer, which performs the
// navigation; failures carry either field errors or a single message.
type ResultKind string

const (
	KindRedirect ResultKind = "redirect"
	KindInvalid  ResultKind = "invalid"
	KindError    ResultKind = "error"
)

// MutationResult is the outcome of Add, Update or Delete. Exactly one shape
// is populated per kind: Redirect for KindRedirect, FieldErrors+Message for
// KindInvalid, Message alone for KindError.
type MutationResult struct {
	Kind        ResultKind        `json:"kind"`
	Redirect    string            `json:"redirect,omitempty"`
	FieldErrors map[string]string `json:"errors,omitempty"`
	Message     string            `json:"message,omitempty"`
}

func redirectTo(target string) MutationResult {
	return MutationResult{Kind: KindRedirect, Redirect: target}
}

func invalid(fieldErrs map[string]string) MutationResult {
	return MutationResult{
		Kind:        KindInvalid,
		FieldErrors: fieldErrs,
		Message:     "Validation failed. Please check the fields.",
	}
}

func failure(message string) MutationResult {
	return MutationResult{Kind: KindError, Message: message}
}

// EnhanceResult is the outcome of a poster enhancement. Enhancement never
// surfaces an error value to its caller; both success and failure arrive in
// this envelope. Data is the generated image as a data URI.
type EnhanceResult struct {
	Success bool   `json:"success"`
	Data    string `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
