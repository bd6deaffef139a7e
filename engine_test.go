package uranus_test

import (
	"encoding/json"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uranus"
	"github.com/dmitrymomot/uranus/pkg/rules"
)

func personFields() uranus.Fields {
	return uranus.Fields{
		{Name: "firstName", Rules: uranus.Rules{uranus.Enable("notNull"), uranus.Enable("isAlpha")}},
		{Name: "lastName", Rules: uranus.Rules{uranus.Enable("notNull"), uranus.Enable("isAlpha")}},
		{Name: "email", Rules: uranus.Rules{uranus.Enable("notNull"), uranus.Enable("isEmail")}},
	}
}

func TestValidateOne(t *testing.T) {
	engine := uranus.New()

	t.Run("records one item per rule", func(t *testing.T) {
		res, err := engine.ValidateOne("foo@gmail.com", uranus.Rules{
			uranus.Enable("isEmail"),
			uranus.Use("minLen", uranus.Arg(3)),
			uranus.Enable("isNumeric"),
		})
		require.NoError(t, err)
		assert.False(t, res.IsValid())
		assert.Equal(t, []string{"isEmail", "minLen", "isNumeric"}, res.Keys())

		item, ok := res.Item("isEmail")
		require.True(t, ok)
		assert.True(t, item.Valid())
		assert.Empty(t, item.Message())

		item, ok = res.Item("isNumeric")
		require.True(t, ok)
		assert.False(t, item.Valid())
		assert.Equal(t, "Validation `isNumeric` failed.", item.Message())
	})

	t.Run("custom message", func(t *testing.T) {
		res, err := engine.ValidateOne("ab", uranus.Rules{
			uranus.Use("minLen", uranus.Arg(3).WithMessage("too short")),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"too short"}, res.Messages())
	})

	t.Run("empty rules are valid", func(t *testing.T) {
		res, err := engine.ValidateOne("anything", nil)
		require.NoError(t, err)
		assert.True(t, res.IsValid())
		assert.Equal(t, 0, res.Len())
		assert.Empty(t, res.Messages())
		assert.NotNil(t, res.Messages())
	})

	t.Run("disabled flag still runs the rule", func(t *testing.T) {
		res, err := engine.ValidateOne(nil, uranus.Rules{uranus.Use("notNull", uranus.Flag(false))})
		require.NoError(t, err)
		assert.False(t, res.IsValid())
	})

	t.Run("zero-arg rule ignores a bare argument", func(t *testing.T) {
		res, err := engine.ValidateOne("127.0.0.1", uranus.Rules{uranus.Use("isIP", uranus.Arg(6))})
		require.NoError(t, err)
		assert.True(t, res.IsValid())

		res, err = engine.ValidateOne("127.0.0.1", uranus.Rules{uranus.Use("isIP", uranus.Args(6))})
		require.NoError(t, err)
		assert.False(t, res.IsValid())
	})

	t.Run("shape rules drop arguments", func(t *testing.T) {
		res, err := engine.ValidateOne("foo@example.com", uranus.Rules{
			uranus.Use("isEmail", uranus.Args("ignored", 42)),
		})
		require.NoError(t, err)
		assert.True(t, res.IsValid())
	})

	t.Run("idempotent", func(t *testing.T) {
		rs := uranus.Rules{uranus.Enable("isEmail"), uranus.Enable("isNumeric")}
		first, err := engine.ValidateOne("foo@gmail", rs)
		require.NoError(t, err)
		second, err := engine.ValidateOne("foo@gmail", rs)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestProgressive(t *testing.T) {
	rs := uranus.Rules{
		uranus.Enable("notNull"),
		uranus.Enable("isEmail"),
		uranus.Enable("isNumeric"),
		uranus.Use("minLen", uranus.Arg(100)),
	}

	t.Run("non-progressive records every rule", func(t *testing.T) {
		res, err := uranus.New().ValidateOne("foo@gmail", rs)
		require.NoError(t, err)
		assert.Equal(t, len(rs), res.Len())
		assert.Len(t, res.Messages(), 3)
	})

	t.Run("progressive stops at first failure", func(t *testing.T) {
		res, err := uranus.New(uranus.WithProgressive(true)).ValidateOne("foo@gmail", rs)
		require.NoError(t, err)
		assert.False(t, res.IsValid())
		assert.Equal(t, []string{"notNull", "isEmail"}, res.Keys())
		assert.Equal(t, []string{"Validation `isEmail` failed."}, res.Messages())
	})

	t.Run("progressive with passing value records everything", func(t *testing.T) {
		res, err := uranus.New(uranus.WithProgressive(true)).ValidateOne("12345", uranus.Rules{
			uranus.Enable("notNull"),
			uranus.Enable("isNumeric"),
		})
		require.NoError(t, err)
		assert.True(t, res.IsValid())
		assert.Equal(t, 2, res.Len())
	})
}

func TestValidateFields(t *testing.T) {
	source := map[string]any{"firstName": nil, "lastName": nil, "email": nil, "ignored": "x"}

	t.Run("every rule of every field", func(t *testing.T) {
		res, err := uranus.New().ValidateFields(source, personFields())
		require.NoError(t, err)
		assert.False(t, res.IsValid())
		assert.Len(t, res.Messages(), 6)
		assert.Equal(t, []string{"firstName", "lastName", "email"}, res.Keys())
	})

	t.Run("progressive stops per field", func(t *testing.T) {
		res, err := uranus.New(uranus.WithProgressive(true)).ValidateFields(source, personFields())
		require.NoError(t, err)
		assert.False(t, res.IsValid())
		assert.Len(t, res.Messages(), 3)
	})

	t.Run("valid source", func(t *testing.T) {
		res, err := uranus.New().ValidateFields(map[string]any{
			"firstName": "Ada",
			"lastName":  "Lovelace",
			"email":     "ada@example.com",
		}, personFields())
		require.NoError(t, err)
		assert.True(t, res.IsValid())
		assert.NoError(t, res.Err())

		email, ok := res.Field("email")
		require.True(t, ok)
		assert.Equal(t, []string{"notNull", "isEmail"}, email.Keys())
	})

	t.Run("missing field validates as nil", func(t *testing.T) {
		res, err := uranus.New().ValidateFields(map[string]any{}, uranus.Fields{
			{Name: "email", Rules: uranus.Rules{uranus.Enable("notNull")}},
		})
		require.NoError(t, err)
		assert.False(t, res.IsValid())
	})

	t.Run("failures as validation errors", func(t *testing.T) {
		res, err := uranus.New().ValidateFields(map[string]any{
			"firstName": "Ada",
			"lastName":  "L0velace",
			"email":     "nope",
		}, personFields())
		require.NoError(t, err)

		var verrs uranus.ValidationErrors
		require.ErrorAs(t, res.Err(), &verrs)
		assert.Equal(t, []string{"lastName", "email"}, verrs.Fields())
		assert.Equal(t, []string{"Validation `isAlpha` failed."}, verrs.Get("lastName"))
		assert.False(t, verrs.Has("firstName"))
	})
}

func TestValidateSequence(t *testing.T) {
	entries := uranus.Entries{
		{Value: "foo@gmail", Rules: uranus.Rules{uranus.Enable("isEmail"), uranus.Enable("isNumeric")}},
	}

	t.Run("non-progressive", func(t *testing.T) {
		res, err := uranus.New().ValidateSequence(entries)
		require.NoError(t, err)
		assert.False(t, res.IsValid())
		assert.Len(t, res.Messages(), 2)

		first, ok := res.At(0)
		require.True(t, ok)
		assert.Equal(t, 2, first.Len())
	})

	t.Run("progressive", func(t *testing.T) {
		res, err := uranus.New(uranus.WithProgressive(true)).ValidateSequence(entries)
		require.NoError(t, err)
		assert.Len(t, res.Messages(), 1)
	})

	t.Run("validity is the AND of every entry", func(t *testing.T) {
		res, err := uranus.New().ValidateSequence(uranus.Entries{
			{Value: "nope", Rules: uranus.Rules{uranus.Enable("isEmail")}},
			{Value: "ada@example.com", Rules: uranus.Rules{uranus.Enable("isEmail")}},
		})
		require.NoError(t, err)
		assert.False(t, res.IsValid())
		assert.Equal(t, []string{"0", "1"}, res.Keys())

		last, ok := res.At(1)
		require.True(t, ok)
		assert.True(t, last.IsValid())
	})

	t.Run("empty sequence is valid", func(t *testing.T) {
		res, err := uranus.New().ValidateSequence(nil)
		require.NoError(t, err)
		assert.True(t, res.IsValid())
	})
}

func TestUnknownRule(t *testing.T) {
	engine := uranus.New()

	t.Run("single value", func(t *testing.T) {
		res, err := engine.ValidateOne("x", uranus.Rules{uranus.Enable("isTotallyMadeUp")})
		require.Error(t, err)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, uranus.ErrConfiguration)
		assert.ErrorIs(t, err, uranus.ErrUnknownRule)
		assert.NotContains(t, err.Error(), "did you mean")
	})

	t.Run("suggests a close name", func(t *testing.T) {
		_, err := engine.ValidateOne("x", uranus.Rules{uranus.Enable("isEmial")})
		require.ErrorIs(t, err, uranus.ErrUnknownRule)
		assert.Contains(t, err.Error(), `did you mean "isEmail"`)
	})

	t.Run("resolved before any predicate runs", func(t *testing.T) {
		var calls int
		counting := uranus.New(uranus.WithPredicates(map[string]rules.Predicate{
			"counted": func(any, ...any) (bool, error) {
				calls++
				return true, nil
			},
		}))

		_, err := counting.ValidateSequence(uranus.Entries{
			{Value: 1, Rules: uranus.Rules{uranus.Enable("counted")}},
			{Value: 2, Rules: uranus.Rules{uranus.Enable("counted"), uranus.Enable("isTotallyMadeUp")}},
		})
		require.ErrorIs(t, err, uranus.ErrConfiguration)
		assert.Contains(t, err.Error(), "entry 1")
		assert.Zero(t, calls)

		_, err = counting.ValidateFields(map[string]any{"a": 1}, uranus.Fields{
			{Name: "a", Rules: uranus.Rules{uranus.Enable("counted")}},
			{Name: "b", Rules: uranus.Rules{uranus.Enable("isTotallyMadeUp")}},
		})
		require.ErrorIs(t, err, uranus.ErrConfiguration)
		assert.Zero(t, calls)
	})

	t.Run("not hidden by progressive mode", func(t *testing.T) {
		_, err := uranus.New(uranus.WithProgressive(true)).ValidateOne(nil, uranus.Rules{
			uranus.Enable("notNull"),
			uranus.Enable("isTotallyMadeUp"),
		})
		assert.ErrorIs(t, err, uranus.ErrUnknownRule)
	})
}

func TestPredicateErrors(t *testing.T) {
	boom := errors.New("boom")
	engine := uranus.New(uranus.WithPredicates(map[string]rules.Predicate{
		"failing":   func(any, ...any) (bool, error) { return false, boom },
		"panicking": func(any, ...any) (bool, error) { panic("kaboom") },
	}))

	t.Run("returned error aborts", func(t *testing.T) {
		res, err := engine.ValidateOne("x", uranus.Rules{uranus.Enable("failing")})
		require.Error(t, err)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, uranus.ErrPredicate)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, uranus.ErrConfiguration)
	})

	t.Run("panic becomes an error", func(t *testing.T) {
		_, err := engine.ValidateOne("x", uranus.Rules{uranus.Enable("panicking")})
		require.ErrorIs(t, err, uranus.ErrPredicate)
		assert.Contains(t, err.Error(), "kaboom")
	})

	t.Run("bad built-in argument", func(t *testing.T) {
		_, err := engine.ValidateOne("abc", uranus.Rules{uranus.Use("minLen", uranus.Arg("three"))})
		require.ErrorIs(t, err, uranus.ErrPredicate)
		assert.ErrorIs(t, err, rules.ErrInvalidArgument)
	})

	t.Run("aborts the whole collection", func(t *testing.T) {
		res, err := engine.ValidateSequence(uranus.Entries{
			{Value: "ok", Rules: uranus.Rules{uranus.Enable("notNull")}},
			{Value: "x", Rules: uranus.Rules{uranus.Enable("failing")}},
		})
		require.ErrorIs(t, err, uranus.ErrPredicate)
		assert.Nil(t, res)
	})
}

func TestDuplicateRules(t *testing.T) {
	rs := uranus.Rules{
		uranus.Use("minLen", uranus.Arg(1)),
		uranus.Enable("isAlpha"),
		uranus.Use("minLen", uranus.Arg(10)),
	}

	t.Run("last outcome wins by default", func(t *testing.T) {
		res, err := uranus.New().ValidateOne("abc", rs)
		require.NoError(t, err)
		assert.Equal(t, []string{"minLen", "isAlpha"}, res.Keys())
		assert.False(t, res.IsValid())

		item, _ := res.Item("minLen")
		assert.False(t, item.Valid())
	})

	t.Run("strict rule names reject", func(t *testing.T) {
		engine := uranus.New(uranus.WithConfig(uranus.Config{StrictRuleNames: true}))
		_, err := engine.ValidateOne("abc", rs)
		require.ErrorIs(t, err, uranus.ErrDuplicateRule)
		assert.ErrorIs(t, err, uranus.ErrConfiguration)
	})

	t.Run("strict rule names reject repeated fields", func(t *testing.T) {
		engine := uranus.New(uranus.WithDuplicatePolicy(uranus.DuplicateReject))
		_, err := engine.ValidateFields(map[string]any{}, uranus.Fields{
			{Name: "a", Rules: uranus.Rules{uranus.Enable("notNull")}},
			{Name: "a", Rules: uranus.Rules{uranus.Enable("isNull")}},
		})
		assert.ErrorIs(t, err, uranus.ErrDuplicateRule)
	})
}

func TestRegistryExtension(t *testing.T) {
	isEven := func(v any, _ ...any) (bool, error) {
		f, ok := rules.Float(v)
		return ok && int(f)%2 == 0, nil
	}

	t.Run("adds rules", func(t *testing.T) {
		engine := uranus.New(uranus.WithPredicates(map[string]rules.Predicate{"isEven": isEven}))
		assert.True(t, engine.Registry().Has("isEven"))
		assert.True(t, engine.Registry().Has("isEmail"))

		res, err := engine.ValidateOne(3, uranus.Rules{uranus.Enable("isEven")})
		require.NoError(t, err)
		assert.False(t, res.IsValid())
	})

	t.Run("overrides built-ins", func(t *testing.T) {
		engine := uranus.New(uranus.WithPredicates(map[string]rules.Predicate{
			"isEmail": func(any, ...any) (bool, error) { return true, nil },
		}))
		res, err := engine.ValidateOne("not an email", uranus.Rules{uranus.Enable("isEmail")})
		require.NoError(t, err)
		assert.True(t, res.IsValid())
	})

	t.Run("does not leak between engines", func(t *testing.T) {
		uranus.New(uranus.WithPredicates(map[string]rules.Predicate{"isEven": isEven}))
		assert.False(t, uranus.New().Registry().Has("isEven"))
	})

	t.Run("custom registry replaces built-ins", func(t *testing.T) {
		engine := uranus.New(uranus.WithRegistry(rules.NewRegistry(map[string]rules.Predicate{"isEven": isEven})))
		assert.Equal(t, 1, engine.Registry().Len())

		_, err := engine.ValidateOne("a", uranus.Rules{uranus.Enable("isEmail")})
		assert.ErrorIs(t, err, uranus.ErrUnknownRule)
	})
}

func TestValidateAll(t *testing.T) {
	engine := uranus.New()

	res, err := engine.ValidateAll(uranus.SingleInput{Value: "42", Rules: uranus.Rules{uranus.Enable("isInt")}})
	require.NoError(t, err)
	assert.True(t, res.IsValid())

	res, err = engine.ValidateAll(uranus.SequenceInput{Entries: uranus.Entries{
		{Value: "x", Rules: uranus.Rules{uranus.Enable("isInt")}},
	}})
	require.NoError(t, err)
	assert.False(t, res.IsValid())

	res, err = engine.ValidateAll(uranus.KeyedInput{
		Source: map[string]any{"firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com"},
		Fields: personFields(),
	})
	require.NoError(t, err)
	assert.True(t, res.IsValid())

	_, err = engine.ValidateAll(nil)
	assert.ErrorIs(t, err, uranus.ErrInputShape)
}

func TestStaticFunctions(t *testing.T) {
	res, err := uranus.ValidateOne("foo@gmail", uranus.Rules{
		uranus.Enable("isEmail"),
		uranus.Enable("isNumeric"),
	}, uranus.WithProgressive(true))
	require.NoError(t, err)
	assert.Len(t, res.Messages(), 1)

	res, err = uranus.ValidateFields(map[string]any{}, personFields())
	require.NoError(t, err)
	assert.Len(t, res.Messages(), 6)

	res, err = uranus.ValidateSequence(uranus.Entries{{Value: "1", Rules: uranus.Rules{uranus.Enable("isInt")}}})
	require.NoError(t, err)
	assert.True(t, res.IsValid())

	res, err = uranus.ValidateAll(uranus.SingleInput{Value: "", Rules: uranus.Rules{uranus.Enable("isNull")}})
	require.NoError(t, err)
	assert.True(t, res.IsValid())
}

type recordingObserver struct {
	mu        sync.Mutex
	outcomes  map[uranus.Outcome]int
	completed []uranus.Form
	failed    int
}

func (o *recordingObserver) RuleEvaluated(_ string, outcome uranus.Outcome) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.outcomes == nil {
		o.outcomes = make(map[uranus.Outcome]int)
	}
	o.outcomes[outcome]++
}

func (o *recordingObserver) ValidationCompleted(form uranus.Form, _ bool, err error, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.completed = append(o.completed, form)
	if err != nil {
		o.failed++
	}
}

func TestObserver(t *testing.T) {
	obs := &recordingObserver{}
	engine := uranus.New(uranus.WithObserver(obs))

	_, err := engine.ValidateOne("foo@gmail", uranus.Rules{uranus.Enable("isEmail"), uranus.Enable("notNull")})
	require.NoError(t, err)
	_, err = engine.ValidateFields(map[string]any{}, personFields())
	require.NoError(t, err)
	_, err = engine.ValidateSequence(uranus.Entries{{Value: 1, Rules: uranus.Rules{uranus.Enable("nope")}}})
	require.Error(t, err)

	assert.Equal(t, 1, obs.outcomes[uranus.OutcomePass])
	assert.Equal(t, 7, obs.outcomes[uranus.OutcomeFail])
	assert.Equal(t, []uranus.Form{uranus.FormOne, uranus.FormFields, uranus.FormSequence}, obs.completed)
	assert.Equal(t, 1, obs.failed)
}

func TestEngineConcurrentUse(t *testing.T) {
	engine := uranus.New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := engine.ValidateFields(map[string]any{}, personFields())
			assert.NoError(t, err)
			assert.Len(t, res.Messages(), 6)
		}()
	}
	wg.Wait()
}

func TestOptionalRule(t *testing.T) {
	engine := uranus.New()

	tests := []struct {
		name    string
		decl    uranus.Declaration
		valid   []any
		invalid []any
	}{
		{"isEmail", uranus.Arg("isEmail"), []any{nil, "", "foo@bar.com"}, []any{"fooo", "baam", "yolo"}},
		{"isNumeric", uranus.Args("isNumeric"), []any{nil, 10, ""}, []any{"fooo", "baam", "yolo"}},
		{"isUrl", uranus.Args("isUrl"), []any{nil, "https://www.foo.com", ""}, []any{"fooo", "baam", "yolo"}},
		{"len with list", uranus.Args("len", []any{5, 10}), []any{nil, "For realz!", ""}, []any{"fooo", "baam", "yolo"}},
		{"len with arguments", uranus.Args("len", 5, 10), []any{"Pizza"}, []any{"Pie"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := uranus.Rules{uranus.Use(uranus.OptionalRule, tt.decl)}
			for _, v := range tt.valid {
				res, err := engine.ValidateOne(v, rs)
				require.NoError(t, err)
				assert.True(t, res.IsValid(), "should be valid: %v", v)
			}
			for _, v := range tt.invalid {
				res, err := engine.ValidateOne(v, rs)
				require.NoError(t, err)
				assert.False(t, res.IsValid(), "should be invalid: %v", v)
				assert.Equal(t, []string{"Validation `optional` failed."}, res.Messages())
			}
		})
	}

	t.Run("custom message", func(t *testing.T) {
		var rs uranus.Rules
		require.NoError(t, json.Unmarshal([]byte(`{"optional": {"msg": "bad email", "args": ["isEmail"]}}`), &rs))

		res, err := engine.ValidateOne("nope", rs)
		require.NoError(t, err)
		assert.Equal(t, []string{"bad email"}, res.Messages())
	})

	for name, decl := range map[string]uranus.Declaration{
		"flag":         uranus.Flag(true),
		"no arguments": uranus.Args(),
		"not a name":   uranus.Args(42),
	} {
		t.Run("rejects "+name, func(t *testing.T) {
			_, err := engine.ValidateOne("x", uranus.Rules{uranus.Use(uranus.OptionalRule, decl)})
			assert.ErrorIs(t, err, uranus.ErrInvalidDeclaration)
		})
	}

	t.Run("wrapped rule resolved upfront", func(t *testing.T) {
		_, err := engine.ValidateOne(nil, uranus.Rules{uranus.Use(uranus.OptionalRule, uranus.Arg("isEmial"))})
		require.ErrorIs(t, err, uranus.ErrUnknownRule)
		assert.Contains(t, err.Error(), `did you mean "isEmail"`)
	})

	t.Run("listed with the registry names", func(t *testing.T) {
		names := engine.RuleNames()
		assert.Contains(t, names, uranus.OptionalRule)
		assert.Contains(t, names, "isEmail")
		assert.True(t, slices.IsSorted(names))
	})
}

func TestBuiltinRuleVectors(t *testing.T) {
	engine := uranus.New()

	tests := []struct {
		rule    uranus.Rule
		valid   []any
		invalid []any
	}{
		{uranus.Enable("required"), []any{"x", 0}, []any{nil, "", "  "}},
		{uranus.Use("is", uranus.Arg("^[A-Z]{4}$")), []any{"FOOO", "BAAM", "YOLO"}, []any{101, 50, 10.0000001, "FOOOOOO", "MEH", "", nil}},
		{uranus.Use("not", uranus.Arg("^[a-z]{4}$")), []any{101, "FOOOOOO", "MEHA", " fooo", "yada!"}, []any{"fooo", "baam", "yolo"}},
		{uranus.Use("isIn", uranus.Args("foobar")), []any{"foo", "bar", "foobar", ""}, []any{"foobarbaz", "barfoo"}},
		{uranus.Use("isIn", uranus.Args(map[string]any{"foo": 1, "bar": 2})), []any{"foo", "bar"}, []any{"baz", ""}},
		{uranus.Enable("isIn"), nil, []any{"foo", ""}},
		{uranus.Enable("notIn"), []any{"foo", ""}, nil},
		{uranus.Use("isByteLength", uranus.Args(2, 3)), []any{"abc", "de"}, []any{"", "a", "abcd"}},
		{uranus.Enable("isDecimal"), []any{"0.01", ".1", "-0"}, []any{"....", "0.1a"}},
		{uranus.Enable("isUUIDv4"), []any{"4a68b601-35bd-4a4a-91a5-f4e634e34943"}, []any{"c478211b-224d-30b1-9116-c06048999ce2", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.rule.Name, func(t *testing.T) {
			rs := uranus.Rules{tt.rule}
			for _, v := range tt.valid {
				res, err := engine.ValidateOne(v, rs)
				require.NoError(t, err)
				assert.True(t, res.IsValid(), "should be valid: %v", v)
			}
			for _, v := range tt.invalid {
				res, err := engine.ValidateOne(v, rs)
				require.NoError(t, err)
				assert.False(t, res.IsValid(), "should be invalid: %v", v)
			}
		})
	}
}
