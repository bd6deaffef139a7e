package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/uranus"
	"github.com/dmitrymomot/uranus/pkg/logger"
)

const (
	formatJSON = "json"
	formatText = "text"
)

// RuleFile is the document read by validate.
type RuleFile struct {
	Progressive *bool          `yaml:"progressive"`
	Fields      uranus.Fields  `yaml:"fields"`
	Entries     uranus.Entries `yaml:"entries"`
}

// LoadRuleFile decodes a YAML or JSON rules document. Exactly one of
// "fields" and "entries" must be present.
func LoadRuleFile(data []byte) (RuleFile, error) {
	var rf RuleFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil {
		if errors.Is(err, io.EOF) {
			return rf, fmt.Errorf("%w: empty rules file", uranus.ErrConfiguration)
		}
		if errors.Is(err, uranus.ErrConfiguration) {
			return rf, err
		}
		return rf, fmt.Errorf("%w: %w", uranus.ErrConfiguration, err)
	}

	switch {
	case rf.Fields != nil && rf.Entries != nil:
		return rf, fmt.Errorf("%w: rules file declares both fields and entries", uranus.ErrConfiguration)
	case rf.Fields == nil && rf.Entries == nil:
		return rf, fmt.Errorf("%w: rules file declares neither fields nor entries", uranus.ErrConfiguration)
	}
	return rf, nil
}

type validateOutput struct {
	Valid    bool           `json:"valid"`
	Messages []string       `json:"messages"`
	Report   *uranus.Result `json:"report"`
}

func (a *app) validateCmd() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate a document against a rules file",
		Description: `Validate a JSON or YAML document against a rules file.

A rules file with "fields" validates the input document as a keyed source.
A rules file with "entries" carries its values inline and needs no input.
Exits with code 1 when the report is invalid.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "rules",
				Aliases:  []string{"r"},
				Required: true,
				Usage:    "rules file path (YAML or JSON)",
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Value:   "-",
				Usage:   "input document path, - for stdin",
			},
			&cli.BoolFlag{
				Name:    "progressive",
				Aliases: []string{"p"},
				Usage:   "stop at the first failing rule of each value",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   formatJSON,
				Usage:   "report format (json, text)",
			},
		},
		Action: a.validate,
	}
}

func (a *app) validate(_ context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	if format != formatJSON && format != formatText {
		return fmt.Errorf("unknown output format: %q, valid formats are: json, text", format)
	}

	rulesPath := cmd.String("rules")
	data, err := os.ReadFile(rulesPath)
	if err != nil {
		return fmt.Errorf("failed to read rules from %q: %w", rulesPath, err)
	}
	rf, err := LoadRuleFile(data)
	if err != nil {
		return fmt.Errorf("invalid rules file %q: %w", rulesPath, err)
	}

	opts, err := a.engineOptions()
	if err != nil {
		return err
	}
	if rf.Progressive != nil {
		opts = append(opts, uranus.WithProgressive(*rf.Progressive))
	}
	if cmd.IsSet("progressive") {
		opts = append(opts, uranus.WithProgressive(cmd.Bool("progressive")))
	}
	engine := uranus.New(opts...)

	var in uranus.Input
	if rf.Entries != nil {
		in = uranus.SequenceInput{Entries: rf.Entries}
	} else {
		source, err := readSource(cmd)
		if err != nil {
			return err
		}
		in = uranus.KeyedInput{Source: source, Fields: rf.Fields}
	}

	res, err := engine.ValidateAll(in)
	if err != nil {
		return fmt.Errorf("validation aborted: %w", err)
	}
	a.log.Debug("validation finished", logger.Form(formOf(in)))

	if err := writeReport(cmd.Root().Writer, format, res); err != nil {
		return err
	}
	if !res.IsValid() {
		return ErrReportInvalid
	}
	return nil
}

func formOf(in uranus.Input) string {
	if _, ok := in.(uranus.SequenceInput); ok {
		return string(uranus.FormSequence)
	}
	return string(uranus.FormFields)
}

// readSource decodes the input document into a source object. JSON input
// decodes as YAML.
func readSource(cmd *cli.Command) (map[string]any, error) {
	path := cmd.String("input")

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.Root().Reader)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input from %q: %w", path, err)
	}

	var source map[string]any
	if err := yaml.Unmarshal(data, &source); err != nil {
		return nil, fmt.Errorf("%w: input %q: %w", uranus.ErrInputShape, path, err)
	}
	if source == nil {
		return nil, fmt.Errorf("%w: input %q is not an object", uranus.ErrInputShape, path)
	}
	return source, nil
}

func writeReport(w io.Writer, format string, res *uranus.Result) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(validateOutput{
			Valid:    res.IsValid(),
			Messages: res.Messages(),
			Report:   res,
		})
	}

	if res.IsValid() {
		_, err := fmt.Fprintln(w, "valid")
		return err
	}

	var b strings.Builder
	b.WriteString("invalid\n")
	for _, ve := range uranus.ExtractValidationErrors(res.Err()) {
		if ve.Field != "" {
			fmt.Fprintf(&b, "  %s: %s\n", ve.Field, ve.Message)
			continue
		}
		fmt.Fprintf(&b, "  %s\n", ve.Message)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
