package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/uranus"
)

func (a *app) rulesCmd() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "List the available rule names",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   formatText,
				Usage:   "output format (json, text)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			names := uranus.New().RuleNames()
			w := cmd.Root().Writer

			switch cmd.String("format") {
			case formatText:
				_, err := fmt.Fprintln(w, strings.Join(names, "\n"))
				return err
			case formatJSON:
				return json.NewEncoder(w).Encode(names)
			}
			return fmt.Errorf("unknown output format: %q, valid formats are: json, text", cmd.String("format"))
		},
	}
}
