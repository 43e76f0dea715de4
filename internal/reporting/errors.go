package reporting

import (
	"fmt"
)

// MalformedScheduleError reports a schedule that is not well-formed JSON and
// therefore was never sent.
type MalformedScheduleError struct {
	Epoch int
}

func (e *MalformedScheduleError) Error() string {
	return fmt.Sprintf("leadership schedule for epoch %d is not valid JSON", e.Epoch)
}

// HTTPError reports a non-success response from the reports endpoint.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("reports endpoint returned status %d", e.StatusCode)
}
