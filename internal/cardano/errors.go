package cardano

import (
	"fmt"
)

// QueryError reports a failed cardano-cli query: a non-zero exit status or
// output that could not be interpreted.
type QueryError struct {
	Command string
	Err     error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("cardano-cli %s: %s", e.Command, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
