package assembler

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// MAX_LITERAL is the longest operand literal that fits one text record.
const MAX_LITERAL = 60

// ResolveDirective turns a WORD or BYTE operand into the value it stands
// for. Other directives produce no object code and report false.
func ResolveDirective(directive, operand string) (Instruction, bool, error) {
	switch directive {
	case WORD:
		if operand == "" {
			return Instruction{}, false, fmt.Errorf("%s: %w", WORD, ErrMissingOperand)
		}
		v, err := strconv.Atoi(operand)
		if err != nil {
			return Instruction{}, false, fmt.Errorf("%s %s: %w", WORD, operand, ErrNumber)
		}
		return Instruction{Mnemonic: WORD, Opcode: v}, true, nil
	case BYTE:
		kind, body, err := splitByteLiteral(operand)
		if err != nil {
			return Instruction{}, false, err
		}
		raw := []byte(body)
		if kind == 'X' {
			if raw, err = hex.DecodeString(body); err != nil {
				return Instruction{}, false, fmt.Errorf("%s %s: %w", BYTE, operand, ErrNumber)
			}
		}
		v := 0
		for _, b := range raw {
			v = v<<8 | int(b)
		}
		return Instruction{Mnemonic: BYTE, Opcode: v}, true, nil
	}
	return Instruction{}, false, nil
}

// directiveCode renders the text-record payload of a pseudo-op.
func directiveCode(directive, operand string) (string, error) {
	if (directive == BYTE || directive == WORD) && len(operand) > MAX_LITERAL {
		// TODO: split long BYTE literals across several text records
		return "", fmt.Errorf("%s: %w", directive, ErrLiteralTooLong)
	}
	ins, ok, err := ResolveDirective(directive, operand)
	if err != nil || !ok {
		return "", err
	}
	if ins.Mnemonic == WORD {
		// words are 24 bits, negatives wrap to two's complement
		return fmt.Sprintf("%06X", ins.Opcode&0xFFFFFF), nil
	}

	kind, body, _ := splitByteLiteral(operand)
	if kind == 'C' {
		return strings.ToUpper(hex.EncodeToString([]byte(body))), nil
	}
	return body, nil
}

// instructionCode renders OOAAAA for a machine instruction.
func instructionCode(ins Instruction, addr Address) string {
	return fmt.Sprintf("%02X%04X", ins.Opcode, int(addr)&0xFFFF)
}
