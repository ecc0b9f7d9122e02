package menu

import (
	"fmt"
	"strings"

	"github.com/code19m/errx"
	"github.com/samber/lo"
)

// ProblemKind classifies a Problem.
type ProblemKind string

const (
	// UnknownDrink is an error: no drink has the requested number.
	UnknownDrink ProblemKind = "unknown_drink"
	// UnknownFood is an error: no food has the requested number.
	UnknownFood ProblemKind = "unknown_food"
	// SeasonalItem is a warning: the item may run out.
	SeasonalItem ProblemKind = "seasonal_item"
)

// Problem is a message produced by catalog lookups. It is used both as an
// error and as a warning of an outcome, depending on its kind.
type Problem struct {
	Kind       ProblemKind
	MenuNumber int
	Name       string
}

func (p Problem) String() string {
	switch p.Kind {
	case UnknownDrink:
		return fmt.Sprintf("no drink with menu number %d", p.MenuNumber)
	case UnknownFood:
		return fmt.Sprintf("no food with menu number %d", p.MenuNumber)
	case SeasonalItem:
		return fmt.Sprintf("%d %q is seasonal and may be unavailable", p.MenuNumber, p.Name)
	}
	return fmt.Sprintf("%s: %d", p.Kind, p.MenuNumber)
}

// ToErrorX folds lookup problems into one errx validation error that lists
// every unknown menu number. Returns nil for an empty list.
func ToErrorX(problems []Problem) error {
	if len(problems) == 0 {
		return nil
	}

	messages := lo.Map(problems, func(p Problem, _ int) string { return p.String() })
	numbers := lo.Map(problems, func(p Problem, _ int) int { return p.MenuNumber })

	return errx.New(strings.Join(messages, "; "),
		errx.WithCode(CodeUnknownMenuItem),
		errx.WithType(errx.T_Validation),
		errx.WithDetails(errx.D{"menu_numbers": numbers}),
	)
}
