package intent

import (
	"fmt"
	"strings"
)

// InvalidInputError reports contradictory structural directives in the user
// input, such as requesting both a list and a table for the same data.
type InvalidInputError struct {
	// Keywords holds every offending structural keyword, sorted.
	Keywords []string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf(
		"contradictory structural directives detected: %s. Please specify only one structural format (e.g., either 'list' or 'table', not both)",
		strings.Join(e.Keywords, ", "),
	)
}
