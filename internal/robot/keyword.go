package robot

import (
	"strings"

	"github.com/chriserin/rfrecord/internal/parser"
)

// keywords maps each action kind to its Browser library statement cells.
var keywords = map[parser.Kind]func(a parser.Action) []string{
	parser.Navigate:      func(a parser.Action) []string { return []string{"New Page", a.URL} },
	parser.Click:         func(a parser.Action) []string { return []string{"Click", a.Selector} },
	parser.DoubleClick:   func(a parser.Action) []string { return []string{"Click", a.Selector, "clickCount=2"} },
	parser.Hover:         func(a parser.Action) []string { return []string{"Hover", a.Selector} },
	parser.Fill:          func(a parser.Action) []string { return []string{"Fill Text", a.Selector, a.Value} },
	parser.Check:         func(a parser.Action) []string { return []string{"Check Checkbox", a.Selector} },
	parser.SelectOption:  func(a parser.Action) []string { return []string{"Select Options By", a.Selector, "value", a.Value} },
	parser.SetInputFiles: func(a parser.Action) []string { return []string{"Upload File By Selector", a.Selector, a.FilePath} },
	parser.AssertVisible: func(a parser.Action) []string { return []string{"Get Element States", a.Selector, "contains", "visible"} },
	parser.AssertChecked: func(a parser.Action) []string { return []string{"Get Checkbox State", a.Selector, "==", "checked"} },
	parser.AssertText:    func(a parser.Action) []string { return []string{"Get Text", a.Selector, "==", a.Text} },
	parser.AssertValue:   func(a parser.Action) []string { return []string{"Get Property", a.Selector, "value", "==", a.Value} },
	parser.AssertURL:     func(a parser.Action) []string { return []string{"Get Url", "==", a.URL} },
	parser.AssertTitle:   func(a parser.Action) []string { return []string{"Get Title", "==", a.Title} },
}

// Keyword returns the statement cells for a, keyword name first. Argument
// cells are escaped; an unknown kind yields a Log statement instead of
// dropping the step.
func Keyword(a parser.Action) []string {
	fn, ok := keywords[a.Kind]
	if !ok {
		return []string{"Log", escape("unsupported action " + string(a.Kind))}
	}
	cells := fn(a)
	for i := 1; i < len(cells); i++ {
		cells[i] = escape(cells[i])
	}
	return cells
}

var variableStarts = []string{"${", "@{", "&{", "%{"}

// escape makes s safe as a single space-separated cell.
func escape(s string) string {
	if s == "" {
		return "${EMPTY}"
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	for _, v := range variableStarts {
		s = strings.ReplaceAll(s, v, `\`+v)
	}
	if strings.HasPrefix(s, "#") {
		s = `\` + s
	}
	if strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") || strings.Contains(s, "  ") || strings.Contains(s, "\t") {
		s = escapeSpaces(s)
	}
	return s
}

// escapeSpaces turns every space that would touch a separator, or that
// belongs to a run of spaces, into "\ ". Tabs become "\t".
func escapeSpaces(s string) string {
	s = strings.ReplaceAll(s, "\t", `\t`)
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			b.WriteByte(s[i])
			continue
		}
		lone := i > 0 && i < len(s)-1 && s[i-1] != ' ' && s[i+1] != ' '
		if lone {
			b.WriteByte(' ')
		} else {
			b.WriteString(`\ `)
		}
	}
	return b.String()
}
