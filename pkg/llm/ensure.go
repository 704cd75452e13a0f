package llm

import (
	"context"
	"strings"
)

// ValidationMarker must appear in every drafted template so the user is
// reminded which fields to verify.
const ValidationMarker = "VALIDATION:"

// MarkerMissingError reports a model response that still lacks the
// validation marker after all retry attempts.
type MarkerMissingError struct{}

func (e *MarkerMissingError) Error() string {
	return "llm: failed to obtain a response with a 'VALIDATION:' section after maximum retries"
}

const correctionSuffix = "\n\n---\n\n" +
	"**CRITICAL CORRECTION:** The previous response you generated is missing the mandatory 'VALIDATION:' section. " +
	"You MUST include a 'VALIDATION:' section in your response. " +
	"Please review the original instructions, generate the Jinja2 template again, and this time, ensure you add a 'VALIDATION:' section that lists key fields the user should check. " +
	"Return the COMPLETE template with the validation section included."

// EnsureValidationSection verifies that response carries the validation
// marker, re-asking the model up to maxRetries times with a correction
// appended to the original prompt. It returns the first response containing
// the marker, or a *MarkerMissingError once retries are exhausted.
func EnsureValidationSection(ctx context.Context, client Client, response, originalPrompt string, maxRetries int) (string, error) {
	for {
		if strings.Contains(response, ValidationMarker) {
			return response, nil
		}
		if maxRetries <= 0 {
			return "", &MarkerMissingError{}
		}

		next, err := client.Generate(ctx, originalPrompt+correctionSuffix)
		if err != nil {
			return "", err
		}
		response = next
		maxRetries--
	}
}
