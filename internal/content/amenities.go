// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// NormalizeAmenities flattens the stored amenities value into a list of
// labels. Accepted shapes are a list of strings, a list of objects with a
// "label" key, a comma separated string and a key/value map whose values
// are kept in document order. Anything else yields an empty list.
func NormalizeAmenities(raw json.RawMessage) []string {
	out := []string{}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return out
	}

	switch raw[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return out
		}
		for _, item := range items {
			if v := amenityItem(item); v != "" {
				out = append(out, v)
			}
		}
	case '{':
		dec := json.NewDecoder(bytes.NewReader(raw))
		if _, err := dec.Token(); err != nil {
			return out
		}
		for dec.More() {
			if _, err := dec.Token(); err != nil {
				return out
			}
			var v json.RawMessage
			if err := dec.Decode(&v); err != nil {
				return out
			}
			if s, ok := scalarText(v); ok && s != "" {
				out = append(out, s)
			}
		}
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return out
		}
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// amenityItem reads one list entry: a string, a number or an object's label.
func amenityItem(item json.RawMessage) string {
	item = bytes.TrimSpace(item)
	if len(item) > 0 && item[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(item, &obj); err != nil {
			return ""
		}
		label, _ := scalarText(obj["label"])
		return label
	}
	s, _ := scalarText(item)
	return s
}

// scalarText renders a JSON string or number as text.
func scalarText(v json.RawMessage) (string, bool) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return "", false
	}
	switch {
	case v[0] == '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return "", false
		}
		return s, true
	case v[0] == '-' || (v[0] >= '0' && v[0] <= '9'):
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// formatTimeValue renders a stored check-in or check-out value as an
// RFC 3339 UTC timestamp when it parses as a date, and returns it
// unchanged otherwise ("15:00" stays "15:00").
func formatTimeValue(p *string) string {
	if p == nil {
		return ""
	}
	v := strings.TrimSpace(*p)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return *p
}
