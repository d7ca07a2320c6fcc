package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// TagList is an ordered list of tag labels. External stores and clients are
// inconsistent about how tags are shaped: a JSON array, a comma-delimited
// string, or absent entirely. TagList accepts all three on the way in and is
// always materialized as a list once inside the application.
//
// Duplicates are not deduplicated and order is preserved.
type TagList []string

// UnmarshalJSON accepts a JSON array of strings, a single delimited string,
// or null. It never returns an error: unrecognized shapes decay to an empty
// list so that malformed upstream data cannot fail ingestion.
func (t *TagList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*t = TagList{}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		if list == nil {
			list = []string{}
		}
		*t = list
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = splitTags(s)
		return nil
	}

	*t = TagList{}
	return nil
}

// MarshalJSON always emits an array, never null.
func (t TagList) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

// Value serializes the list as a JSON array for storage.
func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan reads a stored tag column. New rows hold a JSON array; rows written
// by the previous store hold plain comma-delimited text. Both are accepted.
func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = TagList{}
		return nil
	}

	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("unsupported tags column type %T", value)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*t = TagList{}
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err == nil {
			if list == nil {
				list = []string{}
			}
			*t = list
			return nil
		}
	}

	*t = splitTags(raw)
	return nil
}

// splitTags splits delimited tag text on commas and trims each element.
// Empty segments are kept, mirroring the split behavior of the stores this
// shim has to stay compatible with.
func splitTags(s string) TagList {
	parts := strings.Split(s, ",")
	tags := make(TagList, len(parts))
	for i, p := range parts {
		tags[i] = strings.TrimSpace(p)
	}
	return tags
}
