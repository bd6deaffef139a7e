package uranus

// Config holds engine settings that can be loaded from the environment
// with pkg/config, e.g. config.Load(&cfg, config.WithPrefix("URANUS_")).
type Config struct {
	// Progressive stops evaluating a value's rules after its first failure.
	Progressive bool `env:"PROGRESSIVE" envDefault:"false"`
	// StrictRuleNames rejects values that declare the same rule twice.
	StrictRuleNames bool `env:"STRICT_RULE_NAMES" envDefault:"false"`
}

// DuplicatePolicy decides what happens when one value declares the same
// rule name more than once.
type DuplicatePolicy uint8

const (
	// DuplicateLastWins evaluates every declaration; the last outcome
	// replaces earlier ones in the report and a warning is logged.
	DuplicateLastWins DuplicatePolicy = iota
	// DuplicateReject fails the call with ErrDuplicateRule.
	DuplicateReject
)
