// Package robot renders parsed recorder actions as a Robot Framework test
// that uses the Browser library.
package robot

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/chriserin/rfrecord/internal/parser"
)

// Browser is a Playwright browser engine accepted by New Browser.
type Browser string

const (
	Chromium Browser = "chromium"
	Firefox  Browser = "firefox"
	Webkit   Browser = "webkit"
)

// Browsers lists the accepted engines.
var Browsers = []Browser{Chromium, Firefox, Webkit}

// ParseBrowser validates a browser name from user input.
func ParseBrowser(s string) (Browser, error) {
	name := Browser(strings.ToLower(strings.TrimSpace(s)))
	for _, b := range Browsers {
		if b == name {
			return b, nil
		}
	}
	return "", fmt.Errorf("invalid browser %q: must be one of chromium, firefox, webkit", s)
}

// Options configures the generated test.
type Options struct {
	TestName string
	Browser  Browser
	Headless bool
}

const separator = "    "

var fileTemplate = template.Must(template.New("robot").Parse(`*** Settings ***
Library{{.Sep}}Browser

*** Test Cases ***
{{.TestName}}
{{.Sep}}New Browser{{.Sep}}{{.Browser}}{{.Sep}}headless={{.Headless}}
{{range .Steps}}{{$.Sep}}{{.}}
{{end}}`))

type fileData struct {
	Sep      string
	TestName string
	Browser  Browser
	Headless string
	Steps    []string
}

// Render builds the test file for actions. The result depends only on its
// arguments. The test name is escaped like an argument cell so that a
// leading "#" or space keeps it a test-case header.
func Render(actions []parser.Action, opts Options) string {
	data := fileData{
		Sep:      separator,
		TestName: escape(opts.TestName),
		Browser:  opts.Browser,
		Headless: pythonBool(opts.Headless),
	}
	for _, a := range actions {
		data.Steps = append(data.Steps, Statement(a))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		panic(err)
	}
	return buf.String()
}

// Statement renders a single action as one test-case line, without indent.
func Statement(a parser.Action) string {
	return strings.Join(Keyword(a), separator)
}

func pythonBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
