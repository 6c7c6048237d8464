package assembler

import (
	"fmt"
	"regexp"
	"strconv"
)

var byteLiteral = regexp.MustCompile(`^([CX])'(.*)'$`)

// AddressIncrement returns how many bytes directive reserves given operand.
// Both passes call it for every line, so it must stay pure.
func AddressIncrement(directive, operand string) (int, error) {
	switch directive {
	case RESB, RESW:
		if operand == "" {
			return 0, fmt.Errorf("%s: %w", directive, ErrMissingOperand)
		}
		// counts are unsigned, a negative reservation would rewind the counter
		n, err := strconv.ParseUint(operand, 10, 16)
		if err != nil {
			return 0, fmt.Errorf("%s %s: %w", directive, operand, ErrNumber)
		}
		if directive == RESW {
			return 3 * int(n), nil
		}
		return int(n), nil
	case BYTE:
		kind, body, err := splitByteLiteral(operand)
		if err != nil {
			return 0, err
		}
		if kind == 'X' {
			return len(body) / 2, nil
		}
		return len(body), nil
	case END:
		return 0, nil
	}
	return ILEN_BYTES, nil
}

// splitByteLiteral takes C'..' or X'..' apart.
func splitByteLiteral(operand string) (byte, string, error) {
	if operand == "" {
		return 0, "", fmt.Errorf("%s: %w", BYTE, ErrMissingOperand)
	}
	m := byteLiteral.FindStringSubmatch(operand)
	if m == nil {
		return 0, "", fmt.Errorf("%s %s: %w", BYTE, operand, ErrBadLiteral)
	}
	return m[1][0], m[2], nil
}

// lineIncrement is what a classified line adds to the counter after
// ClassifyLine ran. Instruction lines were already bumped by the default
// width, so only the correction is left.
func lineIncrement(kind LineKind, line Line) (int, error) {
	inc, err := AddressIncrement(line.Directive, line.Operand)
	if err != nil {
		return 0, err
	}
	if kind == InstructionLine {
		inc -= ILEN_BYTES
	}
	return inc, nil
}

// checks if memory is out of bounds (SIC max memory is 0x0000 to 0x7FFF)
func isMemoryOutOfBounds(counter Address) bool {
	return counter >= MAX_MEMORY
}
