package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// GenericDecodeMessage is reported when a collaborator's error payload
// cannot be interpreted at all.
const GenericDecodeMessage = "error parsing server response"

// RemoteError is a collaborator call failure. Besides the transport-level
// cause it can carry the collaborator's structured page- and field-level
// errors.
type RemoteError struct {
	Op          string
	Message     string
	PageErrors  []string
	FieldErrors map[string]string
	Err         error
}

func NewRemoteError(op string, err error) *RemoteError {
	return &RemoteError{Op: op, Err: err}
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.UserMessage())
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// UserMessage decodes the error to the best available user-facing text:
// page-level errors win over the single message field, which wins over
// field-level errors, which win over the stringified cause.
func (e *RemoteError) UserMessage() string {
	if len(e.PageErrors) > 0 {
		return strings.Join(e.PageErrors, "; ")
	}
	if e.Message != "" {
		return e.Message
	}
	if len(e.FieldErrors) > 0 {
		fields := make([]string, 0, len(e.FieldErrors))
		for field := range e.FieldErrors {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		parts := make([]string, 0, len(fields))
		for _, field := range fields {
			parts = append(parts, field+": "+e.FieldErrors[field])
		}
		return strings.Join(parts, "; ")
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return GenericDecodeMessage
}

// remotePayload is the wire shape collaborators report failures in.
type remotePayload struct {
	PageErrors  []string          `json:"page_errors"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"field_errors"`
}

// DecodeRemotePayload builds a RemoteError from a collaborator's raw error
// body. Decoding never fails: an uninterpretable payload yields a
// RemoteError whose user message is GenericDecodeMessage.
func DecodeRemotePayload(op string, raw []byte) *RemoteError {
	var payload remotePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return &RemoteError{Op: op, Message: GenericDecodeMessage}
	}
	if len(payload.PageErrors) == 0 && payload.Message == "" && len(payload.FieldErrors) == 0 {
		return &RemoteError{Op: op, Message: GenericDecodeMessage}
	}
	return &RemoteError{
		Op:          op,
		Message:     payload.Message,
		PageErrors:  payload.PageErrors,
		FieldErrors: payload.FieldErrors,
	}
}

// UserMessage extracts the best user-facing message from any error the
// workflows can surface.
func UserMessage(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.UserMessage()
	}
	if err != nil {
		return err.Error()
	}
	return GenericDecodeMessage
}
