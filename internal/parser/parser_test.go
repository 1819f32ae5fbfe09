package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, line string) Action {
	t.Helper()
	actions, unmatched := Parse([]byte(line))
	require.Empty(t, unmatched)
	require.Len(t, actions, 1)
	return actions[0]
}

func TestParse_Goto(t *testing.T) {
	a := parseOne(t, `page.goto("https://example.com")`)
	assert.Equal(t, Action{Kind: Navigate, URL: "https://example.com"}, a)
}

func TestParse_Click(t *testing.T) {
	a := parseOne(t, `page.click("#submit-button")`)
	assert.Equal(t, Action{Kind: Click, Selector: "#submit-button"}, a)
}

func TestParse_ClickWithLocator(t *testing.T) {
	a := parseOne(t, `page.locator("#submit").click()`)
	assert.Equal(t, Action{Kind: Click, Selector: "#submit"}, a)
}

func TestParse_ClickByText(t *testing.T) {
	a := parseOne(t, `page.get_by_text("Login").click()`)
	assert.Equal(t, Action{Kind: Click, Selector: "text=Login"}, a)
}

func TestParse_ClickByExactText(t *testing.T) {
	a := parseOne(t, `page.get_by_text("Login", exact=True).click()`)
	assert.Equal(t, Action{Kind: Click, Selector: `text="Login"`}, a)
}

func TestParse_ClickByRole(t *testing.T) {
	a := parseOne(t, `page.get_by_role("button", name="Sign in").click()`)
	assert.Equal(t, Action{Kind: Click, Selector: `role=button[name="Sign in"]`}, a)
}

func TestParse_ClickByRoleWithoutName(t *testing.T) {
	a := parseOne(t, `page.get_by_role("checkbox").click()`)
	assert.Equal(t, Action{Kind: Click, Selector: "role=checkbox"}, a)
}

func TestParse_DoubleClick(t *testing.T) {
	a := parseOne(t, `page.dblclick("#file-item")`)
	assert.Equal(t, Action{Kind: DoubleClick, Selector: "#file-item"}, a)
}

func TestParse_DoubleClickWithLocator(t *testing.T) {
	a := parseOne(t, `page.locator("#file-item").dblclick()`)
	assert.Equal(t, Action{Kind: DoubleClick, Selector: "#file-item"}, a)
}

func TestParse_Hover(t *testing.T) {
	a := parseOne(t, `page.hover("#menu-item")`)
	assert.Equal(t, Action{Kind: Hover, Selector: "#menu-item"}, a)
}

func TestParse_Fill(t *testing.T) {
	a := parseOne(t, `page.fill("#username", "testuser")`)
	assert.Equal(t, Action{Kind: Fill, Selector: "#username", Value: "testuser"}, a)
}

func TestParse_FillWithLocator(t *testing.T) {
	a := parseOne(t, `page.locator("#username").fill("testuser")`)
	assert.Equal(t, Action{Kind: Fill, Selector: "#username", Value: "testuser"}, a)
}

func TestParse_FillEmptyValue(t *testing.T) {
	a := parseOne(t, `page.locator("#search").fill("")`)
	assert.Equal(t, Action{Kind: Fill, Selector: "#search", Value: ""}, a)
}

func TestParse_FillByPlaceholder(t *testing.T) {
	a := parseOne(t, `page.get_by_placeholder("Email").fill("a@b.c")`)
	assert.Equal(t, Action{Kind: Fill, Selector: `[placeholder="Email"]`, Value: "a@b.c"}, a)
}

func TestParse_FillByLabel(t *testing.T) {
	a := parseOne(t, `page.get_by_label("Password").fill("secret")`)
	assert.Equal(t, Action{Kind: Fill, Selector: `internal:label="Password"`, Value: "secret"}, a)
}

func TestParse_FillWithoutValueIsUnmatched(t *testing.T) {
	actions, unmatched := Parse([]byte(`page.fill("#username")`))
	assert.Empty(t, actions)
	require.Len(t, unmatched, 1)
	assert.Equal(t, 1, unmatched[0].Line)
}

func TestParse_Check(t *testing.T) {
	a := parseOne(t, `page.check("#agree-checkbox")`)
	assert.Equal(t, Action{Kind: Check, Selector: "#agree-checkbox"}, a)
}

func TestParse_CheckByTestID(t *testing.T) {
	a := parseOne(t, `page.get_by_test_id("terms").check()`)
	assert.Equal(t, Action{Kind: Check, Selector: "data-testid=terms"}, a)
}

func TestParse_UncheckIsNotCheck(t *testing.T) {
	actions, unmatched := Parse([]byte(`page.locator("#agree").uncheck()`))
	assert.Empty(t, actions)
	assert.Len(t, unmatched, 1)
}

func TestParse_SelectOption(t *testing.T) {
	a := parseOne(t, `page.select_option("#country", "USA")`)
	assert.Equal(t, Action{Kind: SelectOption, Selector: "#country", Value: "USA"}, a)
}

func TestParse_SelectOptionWithLocator(t *testing.T) {
	a := parseOne(t, `page.locator("#country").select_option("USA")`)
	assert.Equal(t, Action{Kind: SelectOption, Selector: "#country", Value: "USA"}, a)
}

func TestParse_SelectOptionByValueKeyword(t *testing.T) {
	a := parseOne(t, `page.locator("#country").select_option(value="USA")`)
	assert.Equal(t, Action{Kind: SelectOption, Selector: "#country", Value: "USA"}, a)
}

func TestParse_SelectOptionByLabelOrIndexIsUnmatched(t *testing.T) {
	for _, line := range []string{
		`page.locator("#country").select_option(label="USA")`,
		`page.select_option("#country", label="USA")`,
		`page.get_by_label("Country").select_option(index="2")`,
	} {
		actions, unmatched := Parse([]byte(line))
		assert.Empty(t, actions, line)
		assert.Len(t, unmatched, 1, line)
	}
}

func TestParse_SetInputFiles(t *testing.T) {
	a := parseOne(t, `page.locator("#upload").set_input_files("document.pdf")`)
	assert.Equal(t, Action{Kind: SetInputFiles, Selector: "#upload", FilePath: "document.pdf"}, a)
}

func TestParse_SetInputFilesDirect(t *testing.T) {
	a := parseOne(t, `page.set_input_files("#upload", "document.pdf")`)
	assert.Equal(t, Action{Kind: SetInputFiles, Selector: "#upload", FilePath: "document.pdf"}, a)
}

func TestParse_ExpectVisible(t *testing.T) {
	a := parseOne(t, `expect(page.locator("#message")).to_be_visible()`)
	assert.Equal(t, Action{Kind: AssertVisible, Selector: "#message"}, a)
}

func TestParse_ExpectChecked(t *testing.T) {
	a := parseOne(t, `expect(page.locator("#agree")).to_be_checked()`)
	assert.Equal(t, Action{Kind: AssertChecked, Selector: "#agree"}, a)
}

func TestParse_ExpectText(t *testing.T) {
	a := parseOne(t, `expect(page.locator("#title")).to_have_text("Welcome")`)
	assert.Equal(t, Action{Kind: AssertText, Selector: "#title", Text: "Welcome"}, a)
}

func TestParse_ExpectValue(t *testing.T) {
	a := parseOne(t, `expect(page.locator("#email")).to_have_value("test@example.com")`)
	assert.Equal(t, Action{Kind: AssertValue, Selector: "#email", Value: "test@example.com"}, a)
}

func TestParse_ExpectURL(t *testing.T) {
	a := parseOne(t, `expect(page).to_have_url("https://example.com/dashboard")`)
	assert.Equal(t, Action{Kind: AssertURL, URL: "https://example.com/dashboard"}, a)
}

func TestParse_ExpectTitle(t *testing.T) {
	a := parseOne(t, `expect(page).to_have_title("Dashboard")`)
	assert.Equal(t, Action{Kind: AssertTitle, Title: "Dashboard"}, a)
}

func TestParse_ExpectVisibleByRole(t *testing.T) {
	a := parseOne(t, `expect(page.get_by_role("heading", name="Welcome")).to_be_visible()`)
	assert.Equal(t, Action{Kind: AssertVisible, Selector: `role=heading[name="Welcome"]`}, a)
}

func TestParse_AssertionBeatsActionInsideExpect(t *testing.T) {
	// The locator call inside expect() must not be read as a click.
	a := parseOne(t, `expect(page.locator("#btn")).to_have_text("click()")`)
	assert.Equal(t, Action{Kind: AssertText, Selector: "#btn", Text: "click()"}, a)
}

func TestParse_CallShapesInsideLiteralsAreIgnored(t *testing.T) {
	a := parseOne(t, `page.fill("#code", "x.click(y)")`)
	assert.Equal(t, Action{Kind: Fill, Selector: "#code", Value: "x.click(y)"}, a)
}

func TestParse_SingleQuotedLiterals(t *testing.T) {
	a := parseOne(t, `page.fill('#username', 'testuser')`)
	assert.Equal(t, Action{Kind: Fill, Selector: "#username", Value: "testuser"}, a)
}

func TestParse_OtherQuoteInsideLiteral(t *testing.T) {
	a := parseOne(t, `page.fill("#bio", "It's me")`)
	assert.Equal(t, Action{Kind: Fill, Selector: "#bio", Value: "It's me"}, a)
}

func TestParse_MixedQuotingIsUnmatched(t *testing.T) {
	actions, unmatched := Parse([]byte(`page.fill("#username", 'testuser')`))
	assert.Empty(t, actions)
	assert.Len(t, unmatched, 1)
}

func TestParse_UnterminatedLiteralIsUnmatched(t *testing.T) {
	actions, unmatched := Parse([]byte(`page.click("#submit)`))
	assert.Empty(t, actions)
	assert.Len(t, unmatched, 1)
}

func TestParse_IndentedCodegenBody(t *testing.T) {
	a := parseOne(t, `    page.goto("https://example.com/")`)
	assert.Equal(t, Action{Kind: Navigate, URL: "https://example.com/"}, a)
}

func TestParse_OtherPageVariable(t *testing.T) {
	a := parseOne(t, `page1.goto("https://example.com/popup")`)
	assert.Equal(t, Action{Kind: Navigate, URL: "https://example.com/popup"}, a)
}

func TestParse_MultipleActions(t *testing.T) {
	content := []byte(`
page.goto("https://example.com/login")
page.fill("#username", "user1")
page.fill("#password", "pass123")
page.click("#submit")
`)
	actions, unmatched := Parse(content)
	require.Empty(t, unmatched)
	require.Len(t, actions, 4)
	assert.Equal(t, Navigate, actions[0].Kind)
	assert.Equal(t, Fill, actions[1].Kind)
	assert.Equal(t, "#username", actions[1].Selector)
	assert.Equal(t, Fill, actions[2].Kind)
	assert.Equal(t, "#password", actions[2].Selector)
	assert.Equal(t, Click, actions[3].Kind)
}

func TestParse_WithAssertions(t *testing.T) {
	content := []byte(`
page.goto("https://example.com/login")
page.fill("#username", "user1")
page.fill("#password", "pass123")
page.click("#submit")
expect(page).to_have_url("https://example.com/dashboard")
expect(page.locator("#welcome-message")).to_be_visible()
expect(page.locator("#welcome-message")).to_have_text("Welcome, user1!")
`)
	actions, unmatched := Parse(content)
	require.Empty(t, unmatched)
	require.Len(t, actions, 7)
	assert.Equal(t, Navigate, actions[0].Kind)
	assert.Equal(t, AssertURL, actions[4].Kind)
	assert.Equal(t, AssertVisible, actions[5].Kind)
	assert.Equal(t, AssertText, actions[6].Kind)
	assert.Equal(t, "Welcome, user1!", actions[6].Text)
}

func TestParse_IgnoresCommentsAndImports(t *testing.T) {
	content := []byte(`
# This is a comment
import playwright
from playwright.sync_api import sync_playwright

page.click("#submit-button")
`)
	actions, unmatched := Parse(content)
	require.Empty(t, unmatched)
	require.Len(t, actions, 1)
	assert.Equal(t, Action{Kind: Click, Selector: "#submit-button"}, actions[0])
}

func TestParse_CodegenScript(t *testing.T) {
	content := []byte(`import re
from playwright.sync_api import Playwright, sync_playwright, expect


def run(playwright: Playwright) -> None:
    browser = playwright.chromium.launch(headless=False)
    context = browser.new_context()
    page = context.new_page()
    page.goto("https://example.com/")
    page.get_by_role("link", name="More information...").click()
    expect(page).to_have_title("IANA")

    # ---------------------
    context.close()
    browser.close()


with sync_playwright() as playwright:
    run(playwright)
`)
	actions, unmatched := Parse(content)
	require.Len(t, actions, 3)
	assert.Equal(t, Action{Kind: Navigate, URL: "https://example.com/"}, actions[0])
	assert.Equal(t, Action{Kind: Click, Selector: `role=link[name="More information..."]`}, actions[1])
	assert.Equal(t, Action{Kind: AssertTitle, Title: "IANA"}, actions[2])

	var lines []int
	for _, u := range unmatched {
		lines = append(lines, u.Line)
	}
	assert.Equal(t, []int{5, 6, 7, 8, 14, 15, 18, 19}, lines)
	assert.Equal(t, "context.close()", unmatched[4].Text)
}

func TestParse_Empty(t *testing.T) {
	actions, unmatched := Parse(nil)
	assert.Empty(t, actions)
	assert.Empty(t, unmatched)
}

func TestParse_PreservesOrder(t *testing.T) {
	content := []byte(`page.click("#a")
page.hover("#b")

page.check("#c")
page.dblclick("#d")`)
	actions, _ := Parse(content)
	require.Len(t, actions, 4)
	var got []string
	for _, a := range actions {
		got = append(got, a.Selector)
	}
	assert.Equal(t, []string{"#a", "#b", "#c", "#d"}, got)
}

func TestParseLine(t *testing.T) {
	a, ok := ParseLine(`  page.hover("#menu")  `)
	require.True(t, ok)
	assert.Equal(t, Action{Kind: Hover, Selector: "#menu"}, a)

	_, ok = ParseLine("# page.hover(\"#menu\")")
	assert.False(t, ok)
}

func TestParse_OnlyKindFieldsPopulated(t *testing.T) {
	content := []byte(`page.goto("https://example.com")
page.click("#a")
page.fill("#b", "v")
page.set_input_files("#c", "f.txt")
expect(page.locator("#d")).to_have_text("t")
expect(page).to_have_title("T")`)
	actions, _ := Parse(content)
	require.Len(t, actions, 6)

	assert.Empty(t, actions[0].Selector)
	assert.Empty(t, actions[1].Value)
	assert.Empty(t, actions[2].FilePath)
	assert.Empty(t, actions[3].Value)
	assert.Empty(t, actions[4].Value)
	assert.Empty(t, actions[5].URL)
}

func TestRules_AssertionsBeforeActions(t *testing.T) {
	require.Len(t, rules, len(Kinds()))
	seenAction := false
	for _, r := range rules {
		isAssertion := strings.HasPrefix(string(r.kind), "assert_")
		if !isAssertion {
			seenAction = true
			continue
		}
		assert.False(t, seenAction, "assertion rule %s follows an action rule", r.kind)
	}
}
