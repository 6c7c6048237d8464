package assembler

// Address is a location in the SIC address space.
type Address int

const (
	MAX_MEMORY Address = 0x7FFF
	ILEN_BYTES int     = 3 // every SIC instruction is one word
)

// Instruction is a mnemonic paired with its opcode. Resolved WORD and BYTE
// operands reuse it, carrying the directive name and the operand value.
type Instruction struct {
	Mnemonic string
	Opcode   int
}

// opcode mappings for the SIC machine
var InstrTable = map[string]int{
	"ADD":  0x18,
	"AND":  0x40,
	"COMP": 0x28,
	"DIV":  0x24,
	"J":    0x3C,
	"JEQ":  0x30,
	"JGT":  0x34,
	"JLT":  0x38,
	"JSUB": 0x48,
	"LDA":  0x00,
	"LDCH": 0x50,
	"LDL":  0x08,
	"LDX":  0x04,
	"MUL":  0x20,
	"OR":   0x44,
	"RD":   0xD8,
	"RSUB": 0x4C,
	"STA":  0x0C,
	"STCH": 0x54,
	"STL":  0x14,
	"STSW": 0xE8,
	"STX":  0x10,
	"SUB":  0x1C,
	"TD":   0xE0,
	"TIX":  0x2C,
	"WD":   0xDC,
}

// LookupInstruction finds the machine instruction for a mnemonic.
func LookupInstruction(mnemonic string) (Instruction, bool) {
	op, ok := InstrTable[mnemonic]
	if !ok {
		return Instruction{}, false
	}
	return Instruction{Mnemonic: mnemonic, Opcode: op}, true
}
