package parser

import (
	"fmt"
	"regexp"
)

// Strategy is how a recorded line targets an element.
type Strategy string

const (
	ByLocator     Strategy = "locator"
	ByText        Strategy = "text"
	ByRole        Strategy = "role"
	ByPlaceholder Strategy = "placeholder"
	ByTestID      Strategy = "test_id"
	ByLabel       Strategy = "label"
	ByArgument    Strategy = "argument"
)

// Locator is the element reference extracted from a line.
type Locator struct {
	Strategy Strategy
	Value    string
	Name     string // accessible name, role strategy only
	Exact    bool

	arg literal
}

// Selector renders the locator as a Playwright selector string.
func (l Locator) Selector() string {
	switch l.Strategy {
	case ByText:
		if l.Exact {
			return fmt.Sprintf("text=%q", l.Value)
		}
		return "text=" + l.Value
	case ByRole:
		if l.Name == "" {
			return "role=" + l.Value
		}
		return fmt.Sprintf("role=%s[name=%q]", l.Value, l.Name)
	case ByPlaceholder:
		return fmt.Sprintf("[placeholder=%q]", l.Value)
	case ByTestID:
		return "data-testid=" + l.Value
	case ByLabel:
		return fmt.Sprintf("internal:label=%q", l.Value)
	default:
		return l.Value
	}
}

var (
	locatorCall     = regexp.MustCompile(`\.locator\(`)
	textCall        = regexp.MustCompile(`\.get_by_text\(`)
	roleCall        = regexp.MustCompile(`\.get_by_role\(`)
	placeholderCall = regexp.MustCompile(`\.get_by_placeholder\(`)
	testIDCall      = regexp.MustCompile(`\.get_by_test_id\(`)
	labelCall       = regexp.MustCompile(`\.get_by_label\(`)
	directCall      = regexp.MustCompile(`^[A-Za-z_]\w*\.[a-z_]+\(`)

	exactArg = regexp.MustCompile(`^\s*,\s*exact\s*=\s*True`)
	nameArg  = regexp.MustCompile(`^\s*,\s*name\s*=\s*`)
)

type locatorRule struct {
	strategy Strategy
	call     *regexp.Regexp
}

// Checked in order; the first rule whose call carries a literal argument wins.
var locatorRules = []locatorRule{
	{ByLocator, locatorCall},
	{ByText, textCall},
	{ByRole, roleCall},
	{ByPlaceholder, placeholderCall},
	{ByTestID, testIDCall},
	{ByLabel, labelCall},
	{ByArgument, directCall},
}

// ExtractLocator finds the element a line refers to.
func ExtractLocator(line string) (Locator, bool) {
	lits, ok := scanLiterals(line)
	if !ok {
		return Locator{}, false
	}
	return extractLocator(line, mask(line, lits), lits)
}

// ExtractSelector returns the raw argument of the first matching locator rule.
func ExtractSelector(line string) (string, bool) {
	loc, ok := ExtractLocator(line)
	if !ok {
		return "", false
	}
	return loc.Value, true
}

// extractLocator matches call shapes against masked so that text inside
// literals never looks like a call.
func extractLocator(line, masked string, lits []literal) (Locator, bool) {
	for _, r := range locatorRules {
		loc := r.call.FindStringIndex(masked)
		if loc == nil {
			continue
		}
		arg, ok := literalAt(lits, line, loc[1])
		if !ok {
			continue
		}

		l := Locator{Strategy: r.strategy, Value: arg.Value, arg: arg}
		rest := masked[arg.end:]
		switch r.strategy {
		case ByText:
			l.Exact = exactArg.MatchString(rest)
		case ByRole:
			if m := nameArg.FindStringIndex(rest); m != nil {
				if name, ok := literalAt(lits, line, arg.end+m[1]); ok {
					l.Name = name.Value
				}
			}
		}
		return l, true
	}
	return Locator{}, false
}
