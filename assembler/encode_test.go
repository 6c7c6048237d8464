package assembler

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestDirectiveCode(t *testing.T) {
	tests := []struct {
		directive string
		operand   string
		want      string
	}{
		{"BYTE", "X'1F'", "1F"},
		{"BYTE", "X'f1'", "f1"},
		{"BYTE", "C'AB'", "4142"},
		{"BYTE", "C'EOF'", "454F46"},
		{"WORD", "5", "000005"},
		{"WORD", "4096", "001000"},
		{"WORD", "-1", "FFFFFF"},
		{"RESW", "3", ""},
		{"RESB", "3", ""},
		{"EXPORTS", "ALPHA", ""},
	}
	for _, tt := range tests {
		got, err := directiveCode(tt.directive, tt.operand)
		if err != nil {
			t.Errorf("directiveCode(%s, %s): unexpected error: %v", tt.directive, tt.operand, err)
			continue
		}
		if got != tt.want {
			t.Errorf("directiveCode(%s, %s) = %q, want %q", tt.directive, tt.operand, got, tt.want)
		}
	}
}

func TestWordRoundTrip(t *testing.T) {
	code, err := directiveCode("WORD", "5")
	if err != nil {
		t.Fatal(err)
	}
	v, err := strconv.ParseInt(code, 16, 32)
	if err != nil {
		t.Fatal(err)
	}
	if v != 5 {
		t.Errorf("decoded WORD = %d, want 5", v)
	}
}

func TestDirectiveCodeErrors(t *testing.T) {
	tests := []struct {
		directive string
		operand   string
		err       error
	}{
		{"WORD", "five", ErrNumber},
		{"WORD", "", ErrMissingOperand},
		{"BYTE", "X'1G'", ErrNumber},
		{"BYTE", "X'123'", ErrNumber},
		{"BYTE", "Z'12'", ErrBadLiteral},
		{"BYTE", "C'" + strings.Repeat("A", 60) + "'", ErrLiteralTooLong},
	}
	for _, tt := range tests {
		if _, err := directiveCode(tt.directive, tt.operand); !errors.Is(err, tt.err) {
			t.Errorf("directiveCode(%s, %q) error = %v, want %v", tt.directive, tt.operand, err, tt.err)
		}
	}
}

func TestResolveDirective(t *testing.T) {
	ins, ok, err := ResolveDirective("BYTE", "X'05AB'")
	if err != nil || !ok {
		t.Fatalf("ResolveDirective: %v, %v", ok, err)
	}
	if ins.Mnemonic != "BYTE" || ins.Opcode != 0x05AB {
		t.Errorf("got %+v, want BYTE 0x05AB", ins)
	}
	if _, ok, _ := ResolveDirective("RESB", "4"); ok {
		t.Errorf("RESB resolved to a value")
	}
}

func TestInstructionCode(t *testing.T) {
	ins, _ := LookupInstruction("STCH")
	if got := instructionCode(ins, 0x1039); got != "541039" {
		t.Errorf("instructionCode = %q, want 541039", got)
	}
	ins, _ = LookupInstruction("RSUB")
	if got := instructionCode(ins, 0); got != "4C0000" {
		t.Errorf("instructionCode = %q, want 4C0000", got)
	}
}
