package parser

import "strings"

// literal is a quoted string found on a line. start is the index of the
// opening quote, end the index just past the closing quote.
type literal struct {
	Value string
	start int
	end   int
}

// scanLiterals returns the quoted literals of line in order. The first
// quote character on the line decides the delimiter for the whole line.
// An unterminated literal makes the line unusable and ok is false.
func scanLiterals(line string) (lits []literal, ok bool) {
	first := strings.IndexAny(line, `"'`)
	if first < 0 {
		return nil, true
	}
	quote := line[first]

	i := first
	for i < len(line) {
		open := strings.IndexByte(line[i:], quote)
		if open < 0 {
			break
		}
		open += i
		closing := strings.IndexByte(line[open+1:], quote)
		if closing < 0 {
			return nil, false
		}
		closing += open + 1
		lits = append(lits, literal{Value: line[open+1 : closing], start: open, end: closing + 1})
		i = closing + 1
	}
	return lits, true
}

// literalAt returns the literal opening at pos, skipping leading spaces.
func literalAt(lits []literal, line string, pos int) (literal, bool) {
	for pos < len(line) && line[pos] == ' ' {
		pos++
	}
	for _, l := range lits {
		if l.start == pos {
			return l, true
		}
	}
	return literal{}, false
}

// mask blanks out literal contents, keeping byte offsets intact.
func mask(line string, lits []literal) string {
	if len(lits) == 0 {
		return line
	}
	b := []byte(line)
	for _, l := range lits {
		for i := l.start + 1; i < l.end-1; i++ {
			b[i] = '_'
		}
	}
	return string(b)
}
