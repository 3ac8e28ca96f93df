// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// IDField is the key under which the store-assigned identifier travels in a
// [Record]. Outbound records always carry it as a string.
const IDField = "_id"

// Record is one schemaless document of a collection: a string-keyed field
// mapping plus the store-assigned identifier under [IDField].
type Record map[string]any

// ID returns the identifier carried by the record and whether it is a
// non-empty string.
func (r Record) ID() (string, bool) {
	id, ok := r[IDField].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// HasID reports whether the record carries any truthy identifier value,
// regardless of its type.
func (r Record) HasID() bool {
	v, ok := r[IDField]
	return ok && !IsFalsy(v)
}

// WithoutID returns a shallow copy of the record with the identifier removed.
// Clients can never dictate their own identifier, so every write goes through it.
func (r Record) WithoutID() Record {
	out := make(Record, len(r))
	for k, v := range r {
		if k == IDField {
			continue
		}
		out[k] = v
	}
	return out
}

// WithID returns a shallow copy of the record carrying id under [IDField].
func (r Record) WithID(id string) Record {
	out := r.WithoutID()
	out[IDField] = id
	return out
}

// Filter is a fixed query predicate baked into a collection at construction
// and applied to every read. It uses the document store's query shape.
type Filter map[string]any

// IsFalsy reports whether a decoded JSON value is null, false, zero or an
// empty string.
func IsFalsy(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case bool:
		return !value
	case float64:
		return value == 0
	case string:
		return value == ""
	default:
		return false
	}
}
