package program

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aprimc/from-lambda/expr"
)

// ParseConst parses the rendering of a constant as printed by the host
// disassembler: None, True, False, integers, floats, imaginary numbers,
// quoted strings and tuples of these.
func ParseConst(s string) (interface{}, error) {
	s = strings.TrimSpace(s)

	switch s {
	case "None":
		return nil, nil
	case "True":
		return true, nil
	case "False":
		return false, nil
	case "":
		return nil, fmt.Errorf("empty constant")
	}

	switch s[0] {
	case '\'', '"':
		return unquote(s)
	case '(':
		return parseParenthesized(s)
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	if strings.HasSuffix(s, "j") {
		if f, err := strconv.ParseFloat(s[:len(s)-1], 64); err == nil {
			return complex(0, f), nil
		}
	}

	return nil, fmt.Errorf("cannot parse constant %s", s)
}

func parseParenthesized(s string) (interface{}, error) {
	if !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("unbalanced parentheses in %s", s)
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])

	items, err := splitTopLevel(inner)
	if err != nil {
		return nil, err
	}

	if len(items) == 1 && !strings.HasSuffix(inner, ",") {
		return parseComplex(inner)
	}

	t := make(expr.TupleValue, 0, len(items))
	for _, item := range items {
		v, err := ParseConst(item)
		if err != nil {
			return nil, err
		}
		t = append(t, v)
	}
	return t, nil
}

// parseComplex parses the inside of "(1+2j)".
func parseComplex(s string) (interface{}, error) {
	if !strings.HasSuffix(s, "j") {
		return nil, fmt.Errorf("cannot parse constant (%s)", s)
	}

	split := strings.LastIndexAny(s, "+-")
	for split > 0 && (s[split-1] == 'e' || s[split-1] == 'E') {
		split = strings.LastIndexAny(s[:split-1], "+-")
	}
	if split <= 0 {
		return nil, fmt.Errorf("cannot parse constant (%s)", s)
	}

	re, err := strconv.ParseFloat(s[:split], 64)
	if err != nil {
		return nil, fmt.Errorf("cannot parse constant (%s)", s)
	}
	im, err := strconv.ParseFloat(s[split:len(s)-1], 64)
	if err != nil {
		return nil, fmt.Errorf("cannot parse constant (%s)", s)
	}
	return complex(re, im), nil
}

// splitTopLevel splits s at commas outside quotes and brackets. A trailing
// comma does not produce an empty item.
func splitTopLevel(s string) ([]string, error) {
	var (
		items []string
		depth int
		quote byte
		start int
	)

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case quote != 0:
			if ch == '\\' {
				i++
			} else if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
		case ch == '(' || ch == '[' || ch == '{':
			depth++
		case ch == ')' || ch == ']' || ch == '}':
			depth--
		case ch == ',' && depth == 0:
			items = append(items, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}

	if quote != 0 || depth != 0 {
		return nil, fmt.Errorf("unbalanced constant %s", s)
	}

	if last := strings.TrimSpace(s[start:]); last != "" {
		items = append(items, last)
	}
	return items, nil
}

func unquote(s string) (string, error) {
	q := s[0]
	if len(s) < 2 || s[len(s)-1] != q {
		return "", fmt.Errorf("unterminated string %s", s)
	}

	var b strings.Builder
	body := s[1 : len(s)-1]
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch != '\\' {
			b.WriteByte(ch)
			continue
		}

		i++
		if i == len(body) {
			return "", fmt.Errorf("dangling escape in %s", s)
		}
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'x':
			if i+3 > len(body) {
				return "", fmt.Errorf("short \\x escape in %s", s)
			}
			n, err := strconv.ParseUint(body[i+1:i+3], 16, 8)
			if err != nil {
				return "", fmt.Errorf("bad \\x escape in %s", s)
			}
			b.WriteRune(rune(n))
			i += 2
		default:
			b.WriteByte(body[i])
		}
	}

	return b.String(), nil
}
