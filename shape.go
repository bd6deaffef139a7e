package uranus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Input is the tagged union accepted by ValidateAll.
type Input interface {
	form() Form
}

// SingleInput validates one value.
type SingleInput struct {
	Value any
	Rules Rules
}

// SequenceInput validates an ordered list of (value, rules) entries.
type SequenceInput struct {
	Entries Entries
}

// KeyedInput validates the fields of Source named in Fields.
type KeyedInput struct {
	Source map[string]any
	Fields Fields
}

func (SingleInput) form() Form   { return FormOne }
func (SequenceInput) form() Form { return FormSequence }
func (KeyedInput) form() Form    { return FormFields }

// DetectShape classifies a collection input.
//
// src may be Entries or a decoded []any of {"value", "rules"} objects, in
// which case rules must be nil. Otherwise src must be a map[string]any and
// rules either Fields or a decoded map[string]any of rule objects. Plain
// maps carry no order, so their fields and rules are sorted by name; use
// Fields and Rules for declaration order.
func DetectShape(src, rules any) (Input, error) {
	switch s := src.(type) {
	case Entries:
		if rules != nil {
			return nil, fmt.Errorf("%w: sequence input takes no separate rules", ErrInputShape)
		}
		return SequenceInput{Entries: s}, nil
	case []any:
		if rules != nil {
			return nil, fmt.Errorf("%w: sequence input takes no separate rules", ErrInputShape)
		}
		entries, err := entriesFromAny(s)
		if err != nil {
			return nil, err
		}
		return SequenceInput{Entries: entries}, nil
	case map[string]any:
		fields, err := fieldsFromAny(rules)
		if err != nil {
			return nil, err
		}
		return KeyedInput{Source: s, Fields: fields}, nil
	case nil:
		return nil, fmt.Errorf("%w: nil source", ErrInputShape)
	}
	return nil, fmt.Errorf("%w: source of type %T", ErrInputShape, src)
}

func entriesFromAny(list []any) (Entries, error) {
	entries := make(Entries, 0, len(list))
	for i, raw := range list {
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d is %T, want object", ErrInputShape, i, raw)
		}
		for key := range obj {
			if key != "value" && key != "rules" {
				return nil, fmt.Errorf("%w: entry %d has unexpected key %q", ErrInputShape, i, key)
			}
		}
		rs, err := rulesFromAny(obj["rules"])
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, Entry{Value: obj["value"], Rules: rs})
	}
	return entries, nil
}

func fieldsFromAny(v any) (Fields, error) {
	switch r := v.(type) {
	case Fields:
		return r, nil
	case map[string]any:
		fields := make(Fields, 0, len(r))
		for _, name := range sortedKeys(r) {
			rs, err := rulesFromAny(r[name])
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", name, err)
			}
			fields = append(fields, Field{Name: name, Rules: rs})
		}
		return fields, nil
	case nil:
		return nil, fmt.Errorf("%w: keyed input without rules", ErrInputShape)
	}
	return nil, fmt.Errorf("%w: rules of type %T", ErrInputShape, v)
}

func rulesFromAny(v any) (Rules, error) {
	switch r := v.(type) {
	case Rules:
		return r, nil
	case nil:
		return Rules{}, nil
	case map[string]any:
		rs := make(Rules, 0, len(r))
		for _, name := range sortedKeys(r) {
			if r[name] == nil {
				return nil, fmt.Errorf("%w: rule %q: null", ErrInvalidDeclaration, name)
			}
			data, err := json.Marshal(r[name])
			if err != nil {
				return nil, fmt.Errorf("%w: rule %q: %w", ErrInvalidDeclaration, name, err)
			}
			var d Declaration
			if err := d.UnmarshalJSON(data); err != nil {
				return nil, fmt.Errorf("rule %q: %w", name, err)
			}
			rs = append(rs, Rule{Name: name, Declaration: d})
		}
		return rs, nil
	}
	return nil, fmt.Errorf("%w: rules of type %T, want object", ErrInvalidDeclaration, v)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Request is a decoded validation document, as accepted by the HTTP API.
// Progressive is nil when the document does not set it.
type Request struct {
	Input       Input
	Progressive *bool
}

// ParseRequest decodes a JSON or YAML validation document. Keys keep their
// document order. Accepted shapes:
//
//	{"value": v, "rules": {...}}            single value
//	{"entries": [{"value": v, "rules": {...}}, ...]}
//	[{"value": v, "rules": {...}}, ...]     bare sequence
//	{"source": {...}, "fields": {...}}      keyed
//
// Each object form may also carry "progressive": bool.
func ParseRequest(data []byte) (Request, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Request{}, fmt.Errorf("%w: empty document", ErrInputShape)
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return parseJSONRequest(trimmed)
	}
	return parseYAMLRequest(trimmed)
}

func parseJSONRequest(data []byte) (Request, error) {
	if !json.Valid(data) {
		return Request{}, fmt.Errorf("%w: malformed JSON document", ErrInputShape)
	}
	if data[0] == '[' {
		var entries Entries
		if err := json.Unmarshal(data, &entries); err != nil {
			return Request{}, requestError(err)
		}
		return Request{Input: SequenceInput{Entries: entries}}, nil
	}

	parts := make(map[string]json.RawMessage)
	err := decodeOrderedJSON(data, func(key string, raw json.RawMessage) error {
		parts[key] = raw
		return nil
	})
	if err != nil {
		return Request{}, fmt.Errorf("%w: %w", ErrInputShape, err)
	}

	var req Request
	if raw, ok := parts["progressive"]; ok {
		var p bool
		if err := json.Unmarshal(raw, &p); err != nil {
			return Request{}, fmt.Errorf("%w: progressive: %w", ErrInputShape, err)
		}
		req.Progressive = &p
		delete(parts, "progressive")
	}

	keys := make(map[string]any, len(parts))
	for k := range parts {
		keys[k] = nil
	}
	switch classify(keys) {
	case FormSequence:
		var entries Entries
		if err := json.Unmarshal(parts["entries"], &entries); err != nil {
			return Request{}, requestError(err)
		}
		req.Input = SequenceInput{Entries: entries}
	case FormFields:
		var in KeyedInput
		if err := decodeJSONValue(parts["source"], &in.Source); err != nil {
			return Request{}, fmt.Errorf("%w: source: %w", ErrInputShape, err)
		}
		if in.Source == nil {
			return Request{}, fmt.Errorf("%w: source must be an object", ErrInputShape)
		}
		if err := json.Unmarshal(parts["fields"], &in.Fields); err != nil {
			return Request{}, requestError(err)
		}
		req.Input = in
	case FormOne:
		var in SingleInput
		if raw, ok := parts["value"]; ok {
			if err := decodeJSONValue(raw, &in.Value); err != nil {
				return Request{}, fmt.Errorf("%w: value: %w", ErrInputShape, err)
			}
		}
		if err := json.Unmarshal(parts["rules"], &in.Rules); err != nil {
			return Request{}, requestError(err)
		}
		req.Input = in
	default:
		return Request{}, fmt.Errorf("%w: unrecognised keys %v", ErrInputShape, sortedKeys(keys))
	}
	return req, nil
}

func parseYAMLRequest(data []byte) (Request, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Request{}, fmt.Errorf("%w: %w", ErrInputShape, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Request{}, fmt.Errorf("%w: empty document", ErrInputShape)
	}
	root := doc.Content[0]

	if root.Kind == yaml.SequenceNode {
		var entries Entries
		if err := root.Decode(&entries); err != nil {
			return Request{}, requestError(err)
		}
		return Request{Input: SequenceInput{Entries: entries}}, nil
	}
	if root.Kind != yaml.MappingNode {
		return Request{}, fmt.Errorf("%w: expected mapping or sequence at line %d", ErrInputShape, root.Line)
	}

	parts := make(map[string]*yaml.Node)
	keys := make(map[string]any)
	for i := 0; i+1 < len(root.Content); i += 2 {
		parts[root.Content[i].Value] = root.Content[i+1]
	}

	var req Request
	if node, ok := parts["progressive"]; ok {
		var p bool
		if err := node.Decode(&p); err != nil {
			return Request{}, fmt.Errorf("%w: progressive: %w", ErrInputShape, err)
		}
		req.Progressive = &p
		delete(parts, "progressive")
	}
	for k := range parts {
		keys[k] = nil
	}

	switch classify(keys) {
	case FormSequence:
		var entries Entries
		if err := parts["entries"].Decode(&entries); err != nil {
			return Request{}, requestError(err)
		}
		req.Input = SequenceInput{Entries: entries}
	case FormFields:
		var in KeyedInput
		if err := parts["source"].Decode(&in.Source); err != nil {
			return Request{}, fmt.Errorf("%w: source: %w", ErrInputShape, err)
		}
		if in.Source == nil {
			return Request{}, fmt.Errorf("%w: source must be a mapping", ErrInputShape)
		}
		if err := in.Fields.UnmarshalYAML(parts["fields"]); err != nil {
			return Request{}, requestError(err)
		}
		req.Input = in
	case FormOne:
		var in SingleInput
		if node, ok := parts["value"]; ok {
			if err := node.Decode(&in.Value); err != nil {
				return Request{}, fmt.Errorf("%w: value: %w", ErrInputShape, err)
			}
		}
		if err := in.Rules.UnmarshalYAML(parts["rules"]); err != nil {
			return Request{}, requestError(err)
		}
		req.Input = in
	default:
		return Request{}, fmt.Errorf("%w: unrecognised keys %v", ErrInputShape, sortedKeys(keys))
	}
	return req, nil
}

// classify picks a form from the top-level keys of a request object.
// It returns an empty Form when the key set matches none.
func classify(keys map[string]any) Form {
	has := func(k string) bool {
		_, ok := keys[k]
		return ok
	}
	switch {
	case len(keys) == 1 && has("entries"):
		return FormSequence
	case len(keys) == 2 && has("source") && has("fields"):
		return FormFields
	case has("rules") && (len(keys) == 1 || len(keys) == 2 && has("value")):
		return FormOne
	}
	return ""
}

// requestError keeps configuration errors as they are and reports anything
// else as a malformed input document.
func requestError(err error) error {
	if isConfigurationError(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInputShape, err)
}
