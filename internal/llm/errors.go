package llm

import (
	"encoding/json"
	"fmt"
)

// APIError is the uniform failure shape for provider calls. Detail carries
// the provider-supplied error payload when one was returned, otherwise nil.
type APIError struct {
	Status  int
	Message string
	Detail  json.RawMessage
}

func (e *APIError) Error() string {
	if len(e.Detail) > 0 {
		return fmt.Sprintf("provider error: status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("provider error: status %d: %s", e.Status, e.Message)
}
