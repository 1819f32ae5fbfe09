package parser

import (
	"regexp"
	"strings"
)

// candidate is a preprocessed line with its literals already scanned.
type candidate struct {
	text   string
	masked string
	lits   []literal
}

// trailing returns the last literal that opens at or after pos.
func (c candidate) trailing(pos int) (literal, bool) {
	for i := len(c.lits) - 1; i >= 0; i-- {
		if c.lits[i].start >= pos {
			return c.lits[i], true
		}
	}
	return literal{}, false
}

type rule struct {
	kind    Kind
	pattern *regexp.Regexp
	build   func(c candidate, call []int) (Action, bool)
}

// Assertion rules come first: their lines also contain locator calls that
// the action rules would otherwise claim.
var rules = []rule{
	{AssertURL, regexp.MustCompile(`^expect\(\s*\w+\s*\)\.to_have_url\(`), pageValue(AssertURL)},
	{AssertTitle, regexp.MustCompile(`^expect\(\s*\w+\s*\)\.to_have_title\(`), pageValue(AssertTitle)},
	{AssertVisible, regexp.MustCompile(`^expect\(.+\)\.to_be_visible\(\s*\)`), target(AssertVisible)},
	{AssertChecked, regexp.MustCompile(`^expect\(.+\)\.to_be_checked\(\s*\)`), target(AssertChecked)},
	{AssertText, regexp.MustCompile(`^expect\(.+\)\.to_have_text\(`), targetValue(AssertText)},
	{AssertValue, regexp.MustCompile(`^expect\(.+\)\.to_have_value\(`), targetValue(AssertValue)},

	{Navigate, regexp.MustCompile(`^[A-Za-z_]\w*\.goto\(`), pageValue(Navigate)},
	{Click, regexp.MustCompile(`\.click\(`), target(Click)},
	{DoubleClick, regexp.MustCompile(`\.dblclick\(`), target(DoubleClick)},
	{Hover, regexp.MustCompile(`\.hover\(`), target(Hover)},
	{Fill, regexp.MustCompile(`\.fill\(`), targetValue(Fill)},
	{Check, regexp.MustCompile(`\.check\(`), target(Check)},
	{SelectOption, regexp.MustCompile(`\.select_option\(`), targetValue(SelectOption)},
	{SetInputFiles, regexp.MustCompile(`\.set_input_files\(`), targetValue(SetInputFiles)},
}

// Parse classifies each line of a recorded script. Lines that look like
// statements but match no rule are returned as Unmatched; blank lines,
// comments and imports are dropped.
func Parse(content []byte) ([]Action, []Unmatched) {
	lines := strings.Split(string(content), "\n")
	var actions []Action
	var unmatched []Unmatched

	for i, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if skipLine(trimmed) {
			continue
		}

		a, ok := classify(trimmed)
		if !ok {
			unmatched = append(unmatched, Unmatched{Line: i + 1, Text: trimmed})
			continue
		}
		actions = append(actions, a)
	}

	return actions, unmatched
}

// ParseLine classifies a single statement.
func ParseLine(line string) (Action, bool) {
	trimmed := strings.TrimSpace(line)
	if skipLine(trimmed) {
		return Action{}, false
	}
	return classify(trimmed)
}

func skipLine(trimmed string) bool {
	return trimmed == "" ||
		strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, "import ") ||
		strings.HasPrefix(trimmed, "from ")
}

func classify(line string) (Action, bool) {
	lits, ok := scanLiterals(line)
	if !ok {
		return Action{}, false
	}
	c := candidate{text: line, masked: mask(line, lits), lits: lits}

	for _, r := range rules {
		call := r.pattern.FindStringIndex(c.masked)
		if call == nil {
			continue
		}
		// A line that matches a shape but lacks its arguments is not
		// handed to a lower-priority rule.
		return r.build(c, call)
	}
	return Action{}, false
}

// pageValue builds kinds whose only field is the call's trailing literal.
func pageValue(kind Kind) func(candidate, []int) (Action, bool) {
	return func(c candidate, call []int) (Action, bool) {
		lit, ok := c.trailing(call[1])
		if !ok {
			return Action{}, false
		}
		a := Action{Kind: kind}
		switch kind {
		case AssertTitle:
			a.Title = lit.Value
		default:
			a.URL = lit.Value
		}
		return a, true
	}
}

// target builds kinds that carry only a selector.
func target(kind Kind) func(candidate, []int) (Action, bool) {
	return func(c candidate, _ []int) (Action, bool) {
		loc, ok := extractLocator(c.text, c.masked, c.lits)
		if !ok {
			return Action{}, false
		}
		return Action{Kind: kind, Selector: loc.Selector()}, true
	}
}

// keywordArg matches a keyword argument name right before a literal.
var keywordArg = regexp.MustCompile(`(\w+)\s*=\s*$`)

// valueKeywords are the keyword arguments that still carry the value itself.
// Others, such as select_option(label=...) or index=, select by something
// else and leave the line unmatched.
var valueKeywords = map[string]bool{
	"value":    true,
	"files":    true,
	"expected": true,
}

// targetValue builds kinds that carry a selector and a trailing literal.
// The literal must follow the call and must not be the selector itself.
func targetValue(kind Kind) func(candidate, []int) (Action, bool) {
	return func(c candidate, call []int) (Action, bool) {
		loc, ok := extractLocator(c.text, c.masked, c.lits)
		if !ok {
			return Action{}, false
		}
		lit, ok := c.trailing(call[1])
		if !ok || lit.start == loc.arg.start {
			return Action{}, false
		}
		if m := keywordArg.FindStringSubmatch(c.masked[call[1]:lit.start]); m != nil && !valueKeywords[m[1]] {
			return Action{}, false
		}

		a := Action{Kind: kind, Selector: loc.Selector()}
		switch kind {
		case SetInputFiles:
			a.FilePath = lit.Value
		case AssertText:
			a.Text = lit.Value
		default:
			a.Value = lit.Value
		}
		return a, true
	}
}
