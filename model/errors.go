package model

import "fmt"

// InvalidInputError reports a caller-supplied argument that violates a
// validation rule. It is never retried and the message is returned verbatim.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// CredentialsError reports that no AWS credentials could be resolved.
// Fatal at startup; reported to the caller when hit mid-call.
type CredentialsError struct {
	Message string
}

func (e *CredentialsError) Error() string {
	return e.Message
}

// ProviderError reports a request rejected or failed by the Cost Explorer
// API, preserving the provider error code and message.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("Cost Explorer API error (%s): %s", e.Code, e.Message)
}

// InternalError wraps an unexpected transport or serialization fault.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}
