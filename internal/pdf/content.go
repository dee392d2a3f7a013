package pdf

import "strings"

// decodeContentText recovers the shown text from a page content
// stream. Only the text-showing operators (Tj, TJ, ' and ") carry
// document text; their string operands are collected, and a vertical
// position change (Td, TD, Tm, T*) closes the current line. Painting
// operators and their operands are ignored.
func decodeContentText(stream []byte) []string {
	var (
		lines    []string
		current  strings.Builder
		operands []contentToken
		lastY    string
	)

	flush := func() {
		if current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
	}

	show := func() {
		for _, op := range operands {
			if op.kind == tokString {
				current.WriteString(op.text)
			}
		}
	}

	// vertical operand position within the operand list, counted from
	// the end: Td/TD are "tx ty", Tm is "a b c d e f" with f vertical.
	yOperand := func() (string, bool) {
		if len(operands) == 0 {
			return "", false
		}
		last := operands[len(operands)-1]
		if last.kind != tokNumber {
			return "", false
		}
		return last.text, true
	}

	lex := newContentLexer(stream)
	for {
		tok, ok := lex.next()
		if !ok {
			break
		}
		if tok.kind != tokOperator {
			operands = append(operands, tok)
			continue
		}

		switch tok.text {
		case "Tj", "TJ":
			show()
		case "'", "\"":
			// ' and " move to the next line before showing.
			flush()
			show()
		case "Td", "TD", "Tm":
			if y, ok := yOperand(); ok && y != lastY {
				flush()
				lastY = y
			}
		case "T*":
			flush()
		}
		operands = operands[:0]
	}
	flush()

	return lines
}

const (
	tokOperator = iota
	tokString
	tokNumber
	tokOther
)

type contentToken struct {
	kind int
	text string
}

type contentLexer struct {
	data []byte
	pos  int
}

func newContentLexer(data []byte) *contentLexer {
	return &contentLexer{data: data}
}

func (l *contentLexer) next() (contentToken, bool) {
	for l.pos < len(l.data) {
		b := l.data[l.pos]
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\f' || b == 0:
			l.pos++
		case b == '(':
			l.pos++
			return contentToken{tokString, l.readString()}, true
		case b == '<' && l.pos+1 < len(l.data) && l.data[l.pos+1] == '<':
			l.pos += 2
			return contentToken{tokOther, "<<"}, true
		case b == '<':
			l.pos++
			return contentToken{tokString, l.readHexString()}, true
		case b == '/':
			l.pos++
			l.readWhile(isRegular)
			return contentToken{tokOther, "/"}, true
		case b == '[' || b == ']' || b == '{' || b == '}' || b == '>':
			l.pos++
			return contentToken{tokOther, string(b)}, true
		case b == '+' || b == '-' || b == '.' || isDigit(b):
			return contentToken{tokNumber, l.readWhile(isNumeric)}, true
		case b == '%':
			for l.pos < len(l.data) && l.data[l.pos] != '\n' {
				l.pos++
			}
		default:
			// Operators: letters plus the ' and " show forms, T* and
			// the type 3 glyph operators d0/d1.
			if op := l.readWhile(isOperatorChar); op != "" {
				return contentToken{tokOperator, op}, true
			}
			l.pos++
			return contentToken{tokOther, string(b)}, true
		}
	}
	return contentToken{}, false
}

// readString consumes a literal string after the opening parenthesis,
// handling balanced parentheses and backslash escapes.
func (l *contentLexer) readString() string {
	var sb strings.Builder
	depth := 1
	for l.pos < len(l.data) {
		b := l.data[l.pos]
		l.pos++
		switch b {
		case '(':
			depth++
			sb.WriteByte(b)
		case ')':
			depth--
			if depth == 0 {
				return sb.String()
			}
			sb.WriteByte(b)
		case '\\':
			if l.pos >= len(l.data) {
				return sb.String()
			}
			e := l.data[l.pos]
			l.pos++
			switch e {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case '\n', '\r':
				// line continuation
			default:
				if e >= '0' && e <= '7' {
					sb.WriteByte(l.readOctal(e))
				} else {
					sb.WriteByte(e)
				}
			}
		default:
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

func (l *contentLexer) readOctal(first byte) byte {
	v := first - '0'
	for n := 0; n < 2 && l.pos < len(l.data); n++ {
		b := l.data[l.pos]
		if b < '0' || b > '7' {
			break
		}
		v = v<<3 | (b - '0')
		l.pos++
	}
	return v
}

func (l *contentLexer) readHexString() string {
	var sb strings.Builder
	var hi byte
	haveHi := false
	for l.pos < len(l.data) {
		b := l.data[l.pos]
		l.pos++
		if b == '>' {
			break
		}
		v, ok := hexVal(b)
		if !ok {
			continue
		}
		if haveHi {
			sb.WriteByte(hi<<4 | v)
			haveHi = false
		} else {
			hi = v
			haveHi = true
		}
	}
	if haveHi {
		sb.WriteByte(hi << 4)
	}
	return sb.String()
}

func (l *contentLexer) readWhile(pred func(byte) bool) string {
	start := l.pos
	for l.pos < len(l.data) && pred(l.data[l.pos]) {
		l.pos++
	}
	return string(l.data[start:l.pos])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isNumeric(b byte) bool {
	return isDigit(b) || b == '+' || b == '-' || b == '.'
}

func isRegular(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', 0, '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return false
	}
	return true
}

func isOperatorChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '*' || b == '\'' || b == '"' || b == '0' || b == '1'
}

func hexVal(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
