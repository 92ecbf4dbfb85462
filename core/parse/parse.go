package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// StripCodeFence removes a leading Markdown code-fence marker (```json or
// bare ```) and a trailing ``` from s, returning the trimmed inner content.
// Strings without fences are returned trimmed but otherwise unchanged.
func StripCodeFence(s string) string {
	clean := strings.TrimSpace(s)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}

// JSONAs unmarshals content into a value of type T. If plain unmarshaling
// fails, the content is repaired with jsonrepair and unmarshaling is retried
// once. An error is returned only when both attempts fail.
//
// Example:
//
//	// Parse a valid JSON string
//	person, err := parse.JSONAs[Person](`{"name":"John","age":30}`)
//
//	// Parse an invalid JSON string (will be auto-repaired)
//	person, err := parse.JSONAs[Person](`{name: 'John', age: 30}`)
func JSONAs[T any](content string) (T, error) {
	var result T

	err := json.Unmarshal([]byte(content), &result)
	if err == nil {
		return result, nil
	}

	repairedJSON, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
	}

	if err = json.Unmarshal([]byte(repairedJSON), &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (repaired: %s)", result, err, repairedJSON)
	}
	return result, nil
}
