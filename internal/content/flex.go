package content

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// flexString accepts a JSON or YAML string or number, so fixture authors
// can write `year: 2019` or `year: "2019"`.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f *flexString) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*f = ""
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*f = flexString(strings.TrimSpace(s))
	return nil
}

func (f flexString) String() string { return string(f) }
