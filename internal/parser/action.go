package parser

// Kind identifies which step an Action describes.
type Kind string

const (
	Navigate      Kind = "navigate"
	Click         Kind = "click"
	DoubleClick   Kind = "double_click"
	Hover         Kind = "hover"
	Fill          Kind = "fill"
	Check         Kind = "check"
	SelectOption  Kind = "select_option"
	SetInputFiles Kind = "set_input_files"
	AssertVisible Kind = "assert_visible"
	AssertChecked Kind = "assert_checked"
	AssertText    Kind = "assert_text"
	AssertValue   Kind = "assert_value"
	AssertURL     Kind = "assert_url"
	AssertTitle   Kind = "assert_title"
)

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		Navigate, Click, DoubleClick, Hover, Fill, Check, SelectOption, SetInputFiles,
		AssertVisible, AssertChecked, AssertText, AssertValue, AssertURL, AssertTitle,
	}
}

// Action is one recognized step of a recorded script. Only the fields
// belonging to Kind are set; the rest stay empty.
type Action struct {
	Kind     Kind
	URL      string // navigate, assert_url
	Selector string // element-targeting kinds
	Value    string // fill, select_option, assert_value
	FilePath string // set_input_files
	Text     string // assert_text
	Title    string // assert_title
}

// Unmatched is a candidate line that no rule recognized.
type Unmatched struct {
	Line int // 1-based
	Text string
}
