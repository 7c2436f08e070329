package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/pathfinding/dijkstra"
)

// selectionTag names the rule checking Config.Selection.
const selectionTag = "selection"

// validate is the shared validator instance, with the custom rules
// registered in init.
var validate = newValidator()

// newValidator returns a validator with the package rules registered.
// A rule that fails to register panics.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation(selectionTag, validateSelection); err != nil {
		panic(fmt.Sprintf("config: register %q rule: %v", selectionTag, err))
	}
	v.RegisterStructValidation(validateScenario, Scenario{})

	return v
}

// validateSelection accepts the names understood by dijkstra.ParseSelection.
func validateSelection(fl validator.FieldLevel) bool {
	_, err := dijkstra.ParseSelection(fl.Field().String())
	return err == nil
}

// validateScenario checks the size rules of each graph kind:
// a circle needs at least one vertex and has no edge count; a random graph
// cannot have more edges than ordered vertex pairs.
func validateScenario(sl validator.StructLevel) {
	s := sl.Current().Interface().(Scenario)
	switch s.Kind {
	case KindCircle:
		if s.Vertices < 1 {
			sl.ReportError(s.Vertices, "vertices", "Vertices", "circlemin", "")
		}
		if s.Edges != 0 {
			sl.ReportError(s.Edges, "edges", "Edges", "circleedges", "")
		}
	case KindRandom:
		if int64(s.Edges) > int64(s.Vertices)*int64(s.Vertices) {
			sl.ReportError(s.Edges, "edges", "Edges", "maxpairs", "")
		}
	}
}

// Validate reports every invalid setting in one error wrapping
// ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
