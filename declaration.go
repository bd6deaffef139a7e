package uranus

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// zeroArgRules are invoked without arguments unless the declaration
// carries an explicit argument list. isIP takes an optional IP version,
// so a bare flag or scalar must not be forwarded as one.
var zeroArgRules = map[string]struct{}{
	"isIP": {},
}

// shapeRules only honour enabled/disabled and a custom message;
// declared arguments are never forwarded to them.
var shapeRules = map[string]struct{}{
	"isEmail": {},
	"isURL":   {},
	"isUrl":   {},
}

// Declaration describes how one rule is applied to one value.
//
// It is one of:
//   - a bare flag, built with Flag (rule enabled, no extra arguments);
//   - a bare argument, built with Arg (a scalar or a slice);
//   - an argument list, built with Args;
//   - a structured declaration carrying a custom failure message,
//     built with Message or WithMessage, with or without arguments.
//
// The zero value is a disabled flag, which still runs the rule.
type Declaration struct {
	flag       bool
	args       any
	hasArgs    bool
	structured bool
	message    string
}

// Flag declares a rule with a boolean flag. The flag itself is what the
// predicate receives as its single argument; built-in predicates treat
// it as "no argument".
func Flag(enabled bool) Declaration {
	return Declaration{flag: enabled}
}

// Arg declares a rule with a single argument. Slices count as argument
// lists, matching Args.
func Arg(v any) Declaration {
	return Declaration{args: v, hasArgs: true}
}

// Args declares a rule with an ordered argument list.
func Args(v ...any) Declaration {
	if v == nil {
		v = []any{}
	}
	return Declaration{args: v, hasArgs: true}
}

// Message declares a rule with a custom failure message and no arguments.
func Message(msg string) Declaration {
	return Declaration{structured: true, message: msg}
}

// WithMessage returns a structured copy of d carrying msg.
func (d Declaration) WithMessage(msg string) Declaration {
	d.structured = true
	d.message = msg
	return d
}

// CustomMessage returns the declared failure message, if any.
func (d Declaration) CustomMessage() string {
	return d.message
}

// arguments normalises the declaration into the argument list the
// predicate is called with.
func (d Declaration) arguments(rule string) []any {
	var raw any
	switch {
	case d.hasArgs:
		raw = d.args
	case d.structured:
		return nil
	default:
		raw = d.flag
	}

	if list, ok := asList(raw); ok {
		return list
	}
	if _, ok := zeroArgRules[rule]; ok {
		return nil
	}
	return []any{raw}
}

// shapeOnly drops everything but the custom message.
func (d Declaration) shapeOnly() Declaration {
	return Declaration{structured: true, message: d.message}
}

func (d Declaration) failureMessage(rule string) string {
	if d.message != "" {
		return d.message
	}
	return fmt.Sprintf("Validation `%s` failed.", rule)
}

// asList copies slices and arrays (other than byte slices) into []any.
func asList(v any) ([]any, bool) {
	if list, ok := v.([]any); ok {
		return append([]any(nil), list...), true
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

type structuredDeclaration struct {
	Msg     string `json:"msg" yaml:"msg"`
	Message string `json:"message" yaml:"message"`
	Args    any    `json:"args" yaml:"args"`
}

func (s structuredDeclaration) declaration(hasArgs bool) Declaration {
	msg := s.Msg
	if msg == "" {
		msg = s.Message
	}
	d := Declaration{structured: true, message: msg}
	if hasArgs {
		d.args, d.hasArgs = s.Args, true
	}
	return d
}

var structuredKeys = map[string]struct{}{"msg": {}, "message": {}, "args": {}}

// UnmarshalJSON decodes true/false, a scalar, an array or an object with
// optional "msg" (or "message") and "args" keys.
func (d *Declaration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := decodeJSONValue(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDeclaration, err)
	}

	switch v := raw.(type) {
	case nil:
		return fmt.Errorf("%w: null", ErrInvalidDeclaration)
	case bool:
		*d = Flag(v)
	case []any:
		*d = Args(v...)
	case map[string]any:
		for key := range v {
			if _, ok := structuredKeys[key]; !ok {
				return fmt.Errorf("%w: unexpected key %q", ErrInvalidDeclaration, key)
			}
		}
		var s structuredDeclaration
		if err := decodeJSONValue(data, &s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDeclaration, err)
		}
		_, hasArgs := v["args"]
		*d = s.declaration(hasArgs)
	default:
		*d = Arg(v)
	}
	return nil
}

// UnmarshalYAML accepts the same forms as UnmarshalJSON.
func (d *Declaration) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.AliasNode:
		return d.UnmarshalYAML(node.Alias)
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			return fmt.Errorf("%w: null at line %d", ErrInvalidDeclaration, node.Line)
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidDeclaration, err)
			}
			*d = Flag(b)
			return nil
		}
		var v any
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDeclaration, err)
		}
		*d = Arg(v)
	case yaml.SequenceNode:
		var list []any
		if err := node.Decode(&list); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDeclaration, err)
		}
		*d = Args(list...)
	case yaml.MappingNode:
		hasArgs := false
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if _, ok := structuredKeys[key]; !ok {
				return fmt.Errorf("%w: unexpected key %q at line %d", ErrInvalidDeclaration, key, node.Content[i].Line)
			}
			hasArgs = hasArgs || key == "args"
		}
		var s structuredDeclaration
		if err := node.Decode(&s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDeclaration, err)
		}
		*d = s.declaration(hasArgs)
	default:
		return fmt.Errorf("%w: unsupported YAML node at line %d", ErrInvalidDeclaration, node.Line)
	}
	return nil
}
