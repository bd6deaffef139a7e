package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uranus"
	"github.com/dmitrymomot/uranus/pkg/cli"
)

const personRules = `
fields:
  firstName:
    notNull: true
    isAlpha: true
  lastName:
    notNull: true
    isAlpha: true
  email:
    notNull: true
    isEmail:
      msg: email is invalid
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.New("test")
	cmd.Reader = strings.NewReader(stdin)
	cmd.Writer = &out
	cmd.ErrWriter = &errOut
	err := cmd.Run(context.Background(), append([]string{"uranus"}, args...))
	return out.String(), err
}

type report struct {
	Valid    bool     `json:"valid"`
	Messages []string `json:"messages"`
}

func TestValidateCommand(t *testing.T) {
	rulesPath := writeFile(t, "rules.yaml", personRules)

	t.Run("invalid source from stdin", func(t *testing.T) {
		out, err := run(t, `{"firstName": null, "lastName": null, "email": null}`, "validate", "--rules", rulesPath)
		require.ErrorIs(t, err, cli.ErrReportInvalid)

		var r report
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		assert.False(t, r.Valid)
		assert.Len(t, r.Messages, 6)
		assert.Contains(t, r.Messages, "email is invalid")
	})

	t.Run("progressive flag", func(t *testing.T) {
		out, err := run(t, `{}`, "validate", "-r", rulesPath, "--progressive")
		require.ErrorIs(t, err, cli.ErrReportInvalid)

		var r report
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		assert.Len(t, r.Messages, 3)
	})

	t.Run("valid source from file", func(t *testing.T) {
		input := writeFile(t, "input.yaml", "firstName: Ada\nlastName: Lovelace\nemail: ada@example.com\n")
		out, err := run(t, "", "validate", "-r", rulesPath, "--input", input, "--format", "text")
		require.NoError(t, err)
		assert.Equal(t, "valid\n", out)
	})

	t.Run("text report", func(t *testing.T) {
		out, err := run(t, `{"firstName": "Ada", "lastName": "Lovelace", "email": "nope"}`,
			"validate", "-r", rulesPath, "-f", "text")
		require.ErrorIs(t, err, cli.ErrReportInvalid)
		assert.Equal(t, "invalid\n  email: email is invalid\n", out)
	})

	t.Run("entries carry their values", func(t *testing.T) {
		path := writeFile(t, "entries.json", `{
			"progressive": true,
			"entries": [{"value": "foo@gmail", "rules": {"isEmail": true, "isNumeric": true}}]
		}`)
		out, err := run(t, "", "validate", "-r", path)
		require.ErrorIs(t, err, cli.ErrReportInvalid)

		var r report
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		assert.Equal(t, []string{"Validation `isEmail` failed."}, r.Messages)
	})

	t.Run("flag overrides rules file", func(t *testing.T) {
		path := writeFile(t, "entries.yaml", "progressive: true\nentries:\n  - value: foo@gmail\n    rules: {isEmail: true, isNumeric: true}\n")
		out, err := run(t, "", "validate", "-r", path, "--progressive=false")
		require.ErrorIs(t, err, cli.ErrReportInvalid)

		var r report
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		assert.Len(t, r.Messages, 2)
	})
}

func TestValidateCommand_Errors(t *testing.T) {
	rulesPath := writeFile(t, "rules.yaml", personRules)

	t.Run("unknown rule", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "fields:\n  a:\n    isTotallyMadeUp: true\n")
		_, err := run(t, `{"a": 1}`, "validate", "-r", path)
		assert.ErrorIs(t, err, uranus.ErrUnknownRule)
	})

	t.Run("input is not an object", func(t *testing.T) {
		_, err := run(t, `[1, 2]`, "validate", "-r", rulesPath)
		assert.ErrorIs(t, err, uranus.ErrInputShape)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, `{}`, "validate", "-r", rulesPath, "-f", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output format")
	})

	t.Run("missing rules file", func(t *testing.T) {
		_, err := run(t, `{}`, "validate", "-r", filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read rules")
	})

	t.Run("bad log level", func(t *testing.T) {
		_, err := run(t, `{}`, "--log-level", "loud", "validate", "-r", rulesPath)
		assert.Error(t, err)
	})
}

func TestLoadRuleFile(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":         "",
		"both forms":    "fields: {a: {notNull: true}}\nentries: []\n",
		"neither form":  "progressive: true\n",
		"unknown key":   "fields: {}\nextra: 1\n",
		"null rule":     "fields: {a: {notNull: ~}}\n",
		"bad structure": "fields: [1, 2]\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := cli.LoadRuleFile([]byte(doc))
			assert.ErrorIs(t, err, uranus.ErrConfiguration)
		})
	}

	rf, err := cli.LoadRuleFile([]byte(`{"fields": {"b": {"notNull": true}, "a": {"isInt": true}}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, rf.Fields.Names())
	assert.Nil(t, rf.Progressive)
}

func TestRulesCommand(t *testing.T) {
	out, err := run(t, "", "rules")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "isEmail")
	assert.Contains(t, lines, "notNull")

	out, err = run(t, "", "rules", "--format", "json")
	require.NoError(t, err)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	assert.Equal(t, lines, names)
}
