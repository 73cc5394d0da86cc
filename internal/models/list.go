package models

import (
	"encoding/json"
	"strings"
)

// StringList accepts either a JSON array of strings or a single
// comma-separated string.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = compact(items)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*l = compact(strings.Split(joined, ","))
	return nil
}

// Join renders the list the way it is stored in history rows.
func (l StringList) Join() string {
	return strings.Join(l, ",")
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
