package uranus

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Rule pairs a rule name with its declaration.
type Rule struct {
	Name        string
	Declaration Declaration
}

// Enable declares name with a true flag.
func Enable(name string) Rule {
	return Rule{Name: name, Declaration: Flag(true)}
}

// Use declares name with an explicit declaration.
func Use(name string, d Declaration) Rule {
	return Rule{Name: name, Declaration: d}
}

// Rules is an ordered mapping from rule name to declaration. Order decides
// evaluation order, message order and where progressive mode stops.
type Rules []Rule

// Names returns the declared rule names in order.
func (rs Rules) Names() []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	return names
}

// duplicate returns the first rule name declared more than once.
func (rs Rules) duplicate() (string, bool) {
	seen := make(map[string]struct{}, len(rs))
	for _, r := range rs {
		if _, ok := seen[r.Name]; ok {
			return r.Name, true
		}
		seen[r.Name] = struct{}{}
	}
	return "", false
}

// UnmarshalJSON decodes a JSON object, keeping key order.
func (rs *Rules) UnmarshalJSON(data []byte) error {
	out := Rules{}
	err := decodeOrderedJSON(data, func(key string, raw json.RawMessage) error {
		var d Declaration
		if err := d.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("rule %q: %w", key, err)
		}
		out = append(out, Rule{Name: key, Declaration: d})
		return nil
	})
	if err != nil {
		return err
	}
	*rs = out
	return nil
}

// UnmarshalYAML decodes a YAML mapping, keeping key order.
func (rs *Rules) UnmarshalYAML(node *yaml.Node) error {
	out := Rules{}
	err := decodeOrderedYAML(node, func(key string, value *yaml.Node) error {
		var d Declaration
		if err := d.UnmarshalYAML(value); err != nil {
			return fmt.Errorf("rule %q: %w", key, err)
		}
		out = append(out, Rule{Name: key, Declaration: d})
		return nil
	})
	if err != nil {
		return err
	}
	*rs = out
	return nil
}

// Entry is one (value, rules) pair of a sequence input.
type Entry struct {
	Value any   `json:"value" yaml:"value"`
	Rules Rules `json:"rules" yaml:"rules"`
}

// UnmarshalJSON decodes the value with json.Number for numbers, so large
// integers survive intact.
func (en *Entry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Value json.RawMessage `json:"value"`
		Rules Rules           `json:"rules"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var value any
	if len(raw.Value) > 0 {
		if err := decodeJSONValue(raw.Value, &value); err != nil {
			return fmt.Errorf("%w: value: %w", ErrInputShape, err)
		}
	}
	*en = Entry{Value: value, Rules: raw.Rules}
	return nil
}

// Entries is the sequence form of a collection input.
type Entries []Entry

// Field binds a source field name to the rules applied to its value.
type Field struct {
	Name  string
	Rules Rules
}

// Fields is the keyed form rules object: an ordered mapping from field
// name to rules.
type Fields []Field

// Names returns the field names in order.
func (fs Fields) Names() []string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.Name
	}
	return names
}

// UnmarshalJSON decodes a JSON object of rule objects, keeping key order.
func (fs *Fields) UnmarshalJSON(data []byte) error {
	out := Fields{}
	err := decodeOrderedJSON(data, func(key string, raw json.RawMessage) error {
		var rs Rules
		if err := rs.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		out = append(out, Field{Name: key, Rules: rs})
		return nil
	})
	if err != nil {
		return err
	}
	*fs = out
	return nil
}

// UnmarshalYAML decodes a YAML mapping of rule mappings, keeping key order.
func (fs *Fields) UnmarshalYAML(node *yaml.Node) error {
	out := Fields{}
	err := decodeOrderedYAML(node, func(key string, value *yaml.Node) error {
		var rs Rules
		if err := rs.UnmarshalYAML(value); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		out = append(out, Field{Name: key, Rules: rs})
		return nil
	})
	if err != nil {
		return err
	}
	*fs = out
	return nil
}

// decodeOrderedJSON walks a JSON object in document order.
// A JSON null decodes as an empty object.
func decodeOrderedJSON(data []byte, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDeclaration, err)
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: expected object, got %v", ErrInvalidDeclaration, tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDeclaration, err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: expected object key, got %v", ErrInvalidDeclaration, tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDeclaration, err)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDeclaration, err)
	}
	return nil
}

// decodeJSONValue decodes data into v keeping numbers as json.Number.
func decodeJSONValue(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// decodeOrderedYAML walks a YAML mapping in document order.
// A YAML null decodes as an empty mapping.
func decodeOrderedYAML(node *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: expected mapping at line %d", ErrInvalidDeclaration, node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := fn(node.Content[i].Value, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}
