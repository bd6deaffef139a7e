// Package cli implements the uranus command line.
//
// # Commands
//
// validate - validate a document against a rules file:
//
//	uranus validate --rules rules.yaml --input user.json
//	cat user.json | uranus validate -r rules.yaml --progressive --format text
//
// The rules file is YAML or JSON with either a "fields" mapping (keyed form,
// the input document is the source object) or an "entries" list (sequence
// form, values inline, no input needed), plus an optional "progressive" key:
//
//	progressive: true
//	fields:
//	  email:
//	    notNull: true
//	    isEmail: {msg: "email is invalid"}
//
// The report goes to stdout. The command fails with ErrReportInvalid when
// the report is invalid, which main maps to exit code 1.
//
// rules - list the rule names the engine knows:
//
//	uranus rules [--format json|text]
//
// serve - run the HTTP API (see package api):
//
//	uranus serve [--addr :8080] [--metrics=false]
//
// # Configuration
//
// Engine defaults come from URANUS_PROGRESSIVE and URANUS_STRICT_RULE_NAMES,
// HTTP server settings from URANUS_HTTP_* (see httpserver.Config), and
// logging from --log-level/--log-format or URANUS_LOG_LEVEL/URANUS_LOG_FORMAT.
// Flags win over the rules file, which wins over the environment.
package cli
