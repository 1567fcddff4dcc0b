package program

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aprimc/from-lambda/instr"
)

// ParseListing reads disassembler output. Each instruction line has the
// layout
//
//	[line] [>>] offset OPNAME [arg] [(argrepr)]
//
// Comment lines "# name: f" start a new function and "# params: x, y" set
// its parameters. Other comments and blank lines are skipped. Instructions
// before the first name header belong to a function called "<lambda>".
func ParseListing(r io.Reader) ([]*Function, error) {
	var (
		fns []*Function
		cur *Function
	)

	current := func() *Function {
		if cur == nil {
			cur = &Function{Name: "<lambda>"}
			fns = append(fns, cur)
		}
		return cur
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "#"):
			key, value, ok := strings.Cut(strings.TrimSpace(line[1:]), ":")
			if !ok {
				continue
			}
			switch strings.TrimSpace(key) {
			case "name":
				cur = &Function{Name: strings.TrimSpace(value)}
				fns = append(fns, cur)
			case "params":
				current().Params = splitParams(value)
			}
			continue
		case strings.HasPrefix(line, "Disassembly of"):
			continue
		}

		raw, err := parseInstLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		f := current()
		f.Code = append(f.Code, raw)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return fns, nil
}

func splitParams(s string) []string {
	var params []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			params = append(params, p)
		}
	}
	return params
}

func parseInstLine(line string) (instr.Raw, error) {
	raw := instr.Raw{}

	rest := line
	tok, rest := nextField(rest)

	// A leading source line number is followed by ">>" or the offset.
	if _, err := strconv.Atoi(tok); err == nil {
		next, _ := nextField(rest)
		if _, err := strconv.Atoi(next); err == nil || next == ">>" {
			tok, rest = nextField(rest)
		}
	}
	if tok == ">>" {
		tok, rest = nextField(rest)
	}

	offset, err := strconv.Atoi(tok)
	if err != nil {
		return raw, fmt.Errorf("expected offset, got %q", tok)
	}
	raw.Offset = offset

	raw.OpName, rest = nextField(rest)
	if raw.OpName == "" {
		return raw, fmt.Errorf("missing opcode at offset %d", offset)
	}

	argTok, afterArg := nextField(rest)
	argval, hasArg := 0, false
	if n, err := strconv.Atoi(argTok); err == nil {
		argval, hasArg = n, true
		rest = afterArg
	}

	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "(") && strings.HasSuffix(rest, ")") {
		raw.ArgRepr = rest[1 : len(rest)-1]
	} else if rest != "" {
		return raw, fmt.Errorf("unexpected text %q after %s", rest, raw.OpName)
	}

	raw.Arg, err = listingOperand(raw.OpName, argval, hasArg, raw.ArgRepr)
	if err != nil {
		return raw, fmt.Errorf("%s at offset %d: %w", raw.OpName, offset, err)
	}

	// Jump reprs ("to 22") are fully captured in Arg.
	if strings.HasPrefix(raw.ArgRepr, "to ") {
		raw.ArgRepr = ""
	}

	return raw, nil
}

func nextField(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

// listingOperand recovers the operand value of an instruction from the
// numeric argument and its rendering.
func listingOperand(
	opName string,
	argval int,
	hasArg bool,
	repr string,
) (interface{}, error) {
	c, known := instr.DefaultISA.Lookup(opName)

	switch {
	case strings.HasPrefix(repr, "to "):
		return strconv.Atoi(strings.TrimPrefix(repr, "to "))
	case known && c == instr.LoadConst:
		return ParseConst(repr)
	case known && (c.HasName() || c == instr.CompareOp):
		return repr, nil
	case hasArg:
		return argval, nil
	case repr != "":
		return repr, nil
	default:
		return nil, nil
	}
}
