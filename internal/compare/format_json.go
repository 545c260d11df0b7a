package compare

import (
	"encoding/json"
)

// JSONFormatter formats a comparison set as indented JSON.
type JSONFormatter struct{}

// Format generates JSON output for a comparison set.
func (jf *JSONFormatter) Format(set *ComparisonSet) (string, error) {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
