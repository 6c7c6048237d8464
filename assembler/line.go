package assembler

import (
	"fmt"
	"regexp"
	"strings"
)

// LineKind is the three-way classification of a raw source line.
type LineKind int

const (
	SymbolLine LineKind = iota
	InstructionLine
	CommentLine
)

func (k LineKind) String() string {
	switch k {
	case SymbolLine:
		return "symbol"
	case InstructionLine:
		return "instruction"
	case CommentLine:
		return "comment"
	}
	return "unknown"
}

// Line is one parsed source statement. Empty fields are absent.
type Line struct {
	Symbol    string
	Directive string
	Operand   string
}

var charLiteral = regexp.MustCompile(`^C'[^']*'`)

// ClassifyLine sorts raw into a LineKind. A tab-prefixed line is an
// instruction and bumps counter by the default instruction width right away;
// the pass applies the directive-specific correction on top of that.
func ClassifyLine(raw string, counter *Address) LineKind {
	if strings.TrimSpace(raw) == "" {
		return CommentLine
	}
	switch raw[0] {
	case '\t':
		*counter += Address(ILEN_BYTES)
		return InstructionLine
	case '#':
		return CommentLine
	}
	return SymbolLine
}

// ParseLine splits a classified line into its fields. A symbol line whose
// first token is a directive or mnemonic not followed by another one
// (`END FIRST`, a bare `RSUB` in column 1) carries no label.
func ParseLine(raw string, kind LineKind) (Line, error) {
	var line Line
	rest := strings.TrimSpace(raw)
	if kind == SymbolLine {
		tok, tail := nextToken(rest)
		next, _ := nextToken(tail)
		if !isKeyword(tok) || isKeyword(next) {
			line.Symbol = tok
			rest = tail
		}
	}
	line.Directive, rest = nextToken(rest)
	if line.Directive == "" {
		return line, ErrMissingDirective
	}
	//char literals may contain whitespace
	rest = strings.TrimLeft(rest, " \t")
	if lit := charLiteral.FindString(rest); lit != "" {
		if tail := rest[len(lit):]; tail != "" && !strings.ContainsAny(tail[:1], " \t\r\n") {
			return line, fmt.Errorf("%s: %w", rest, ErrBadLiteral)
		}
		line.Operand = lit
	} else {
		line.Operand, _ = nextToken(rest)
	}
	return line, nil
}

func isKeyword(tok string) bool {
	_, isOp := InstrTable[tok]
	return isOp || IsDirective(tok)
}

func nextToken(s string) (string, string) {
	s = strings.TrimLeft(s, " \t\r\n")
	if i := strings.IndexAny(s, " \t\r\n"); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}
