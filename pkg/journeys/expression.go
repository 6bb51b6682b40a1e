package journeys

import (
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog/log"
)

// expressionEnv is what a user supplied expression can see of a journey
type expressionEnv struct {
	Price            float64       `expr:"price"`
	Outbound         time.Time     `expr:"outbound"`
	Inbound          time.Time     `expr:"inbound"`
	OutboundDuration time.Duration `expr:"outbound_duration"`
	InboundDuration  time.Duration `expr:"inbound_duration"`
	Nights           int           `expr:"nights"`
}

// Expression is a compiled boolean journey filter, for example
//
//	price < 150 && outbound.Weekday().String() == "Friday" && inbound_duration < duration("2h30m")
type Expression struct {
	source  string
	program *vm.Program
}

func CompileExpression(source string) (*Expression, error) {
	program, err := expr.Compile(source, expr.Env(expressionEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid journey expression: %w", err)
	}

	return &Expression{
		source:  source,
		program: program,
	}, nil
}

func (e *Expression) String() string {
	return e.source
}

// Matches reports whether the journey satisfies the expression, a journey the
// expression fails to evaluate on does not match
func (e *Expression) Matches(journey *TrainJourney) bool {
	env := expressionEnv{
		Price:            journey.Price,
		Outbound:         journey.Outbound,
		Inbound:          journey.Inbound,
		OutboundDuration: journey.OutboundDuration,
		InboundDuration:  journey.InboundDuration,
		Nights:           int(journey.Inbound.Truncate(24*time.Hour).Sub(journey.Outbound.Truncate(24*time.Hour)).Hours() / 24),
	}

	output, err := expr.Run(e.program, env)
	if err != nil {
		log.Debug().Err(err).Str("expression", e.source).Msg("Failed to evaluate journey expression")
		return false
	}

	matches, ok := output.(bool)
	return ok && matches
}
