// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
)

// Album is an album object exactly as returned by the albums API.
//
// The client does not own the album schema: objects are decoded into a
// generic map and passed through unchanged. [Album.ID] and [Album.Name]
// read the conventional "id" and "name" keys for display purposes only.
type Album map[string]any

// ID returns the "id" field rendered as a string, or an empty string when
// the field is missing or null. Numeric ids are formatted without exponent.
func (a Album) ID() string {
	return fieldString(a["id"])
}

// Name returns the "name" field rendered as a string, or an empty string
// when the field is missing or null.
func (a Album) Name() string {
	return fieldString(a["name"])
}

func fieldString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}
