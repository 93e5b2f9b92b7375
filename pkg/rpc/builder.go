package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Null is the JSON null literal, used to mark an optional argument the
// caller did not set.
var Null = json.RawMessage("null")

// IsNull reports whether a raw argument is unset (nil or the null literal).
func IsNull(raw json.RawMessage) bool {
	return raw == nil || bytes.Equal(raw, nullLiteral)
}

// MarshalArgs encodes each value into its positional wire form.
// A nil pointer encodes to null, so optional arguments can be passed
// straight through as pointers.
func MarshalArgs(vals ...any) ([]json.RawMessage, error) {
	args := make([]json.RawMessage, 0, len(vals))
	for i, v := range vals {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal argument %d: %w", i, err)
		}
		args = append(args, json.RawMessage(raw))
	}
	return args, nil
}

// MustMarshalArgs is MarshalArgs for static values such as default tables.
// It panics on marshal failure, which can only happen for unmarshalable
// Go values.
func MustMarshalArgs(vals ...any) []json.RawMessage {
	args, err := MarshalArgs(vals...)
	if err != nil {
		panic(err)
	}
	return args
}

// TrimDefaults resolves unset optional arguments against the method's
// documented defaults and trims the redundant tail.
//
// The defaults cover the last len(defaults) positions of args; earlier
// positions are required. Scanning from the tail, unset arguments after
// the last set one are dropped entirely, while unset arguments before a
// set one are replaced with their default so the positional contract
// stays intact. An unset argument whose default is itself null cannot be
// substituted and is an error when a later argument is set.
func TrimDefaults(args, defaults []json.RawMessage) ([]json.RawMessage, error) {
	if len(defaults) > len(args) {
		return nil, fmt.Errorf("%d defaults for %d arguments", len(defaults), len(args))
	}

	required := len(args) - len(defaults)
	out := make([]json.RawMessage, len(args))
	copy(out, args)

	lastSet := -1
	for i := len(out) - 1; i >= required; i-- {
		if !IsNull(out[i]) {
			if lastSet == -1 {
				lastSet = i
			}
			continue
		}
		if lastSet != -1 {
			def := defaults[i-required]
			if IsNull(def) {
				return nil, fmt.Errorf("argument %d is unset and has no default", i)
			}
			out[i] = def
		}
	}

	end := required
	if lastSet != -1 {
		end = lastSet + 1
	}
	return out[:end], nil
}
