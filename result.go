package uranus

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Item is the outcome of one rule applied to one value.
type Item struct {
	valid   bool
	message string
}

func passed() Item { return Item{valid: true} }

func failed(msg string) Item { return Item{message: msg} }

// Valid reports whether the rule passed.
func (i Item) Valid() bool { return i.valid }

// Message returns the failure message; empty for passing items.
func (i Item) Message() string { return i.message }

func (i Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Valid   bool   `json:"valid"`
		Message string `json:"message,omitempty"`
	}{i.valid, i.message})
}

// Result is the read-only report of one validation call.
//
// A single-value result maps rule names to Items. A collection result maps
// entry positions ("0", "1", ...) or field names to nested single-value
// results. Keys keep declaration order.
type Result struct {
	valid  bool
	keys   []string
	items  map[string]Item
	nested map[string]*Result
}

func newResult() *Result {
	return &Result{valid: true}
}

// setItem records a rule outcome. A repeated key keeps its first position
// and takes the latest outcome.
func (r *Result) setItem(key string, item Item) {
	if r.items == nil {
		r.items = make(map[string]Item)
	}
	if _, ok := r.items[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.items[key] = item
}

func (r *Result) setNested(key string, res *Result) {
	if r.nested == nil {
		r.nested = make(map[string]*Result)
	}
	if _, ok := r.nested[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.nested[key] = res
}

// seal fixes the validity flag from the recorded outcomes.
func (r *Result) seal() *Result {
	r.valid = true
	for _, item := range r.items {
		r.valid = r.valid && item.valid
	}
	for _, res := range r.nested {
		r.valid = r.valid && res.valid
	}
	return r
}

// IsValid reports whether every recorded rule passed.
func (r *Result) IsValid() bool {
	return r.valid
}

// Messages returns every failure message in declaration order, descending
// into nested results.
func (r *Result) Messages() []string {
	msgs := []string{}
	r.walk(nil, func(_ []string, item Item) {
		if !item.valid {
			msgs = append(msgs, item.message)
		}
	})
	return msgs
}

// Keys returns the rule names, positions or field names in order.
func (r *Result) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of recorded keys.
func (r *Result) Len() int {
	return len(r.keys)
}

// Item returns the outcome recorded for a rule of a single-value result.
func (r *Result) Item(rule string) (Item, bool) {
	item, ok := r.items[rule]
	return item, ok
}

// Field returns the nested result for a field name or position.
func (r *Result) Field(key string) (*Result, bool) {
	res, ok := r.nested[key]
	return res, ok
}

// At returns the nested result of the i-th sequence entry.
func (r *Result) At(i int) (*Result, bool) {
	return r.Field(strconv.Itoa(i))
}

// Err returns nil for a valid result and ValidationErrors otherwise.
func (r *Result) Err() error {
	if r.valid {
		return nil
	}

	var errs ValidationErrors
	r.walk(nil, func(path []string, item Item) {
		if item.valid {
			return
		}
		ve := ValidationError{Rule: path[len(path)-1], Message: item.message}
		if len(path) > 1 {
			ve.Field = path[0]
		}
		errs.Add(ve)
	})
	return errs
}

func (r *Result) walk(path []string, fn func(path []string, item Item)) {
	for _, key := range r.keys {
		p := append(path[:len(path):len(path)], key)
		if item, ok := r.items[key]; ok {
			fn(p, item)
			continue
		}
		if res, ok := r.nested[key]; ok {
			res.walk(p, fn)
		}
	}
}

// MarshalJSON renders {"valid": bool, "results": {...}} with keys in
// declaration order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"valid":`)
	buf.WriteString(strconv.FormatBool(r.valid))
	buf.WriteString(`,"results":{`)

	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		var v []byte
		if item, ok := r.items[key]; ok {
			v, err = item.MarshalJSON()
		} else {
			v, err = r.nested[key].MarshalJSON()
		}
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}

	buf.WriteString(`}}`)
	return buf.Bytes(), nil
}
