package runner

import (
	"encoding/json"
	"fmt"

	"github.com/tupyy/outcome/to"
	"sigs.k8s.io/yaml"
)

const (
	JSONFormat = "json"
	YAMLFormat = "yaml"
)

// Render prints the outcome as a two element list: [value, null] or [null, message].
func Render(o to.Outcome[string], format string) ([]byte, error) {
	var tuple [2]interface{}
	if o.IsErr() {
		tuple[1] = o.Err.Error()
	} else {
		tuple[0] = o.Value
	}

	switch format {
	case JSONFormat:
		return json.Marshal(tuple)
	case YAMLFormat:
		return yaml.Marshal(tuple)
	default:
		return nil, fmt.Errorf("unknown output format '%s'", format)
	}
}
