package assembler

const (
	START   = "START"
	END     = "END"
	RESB    = "RESB"
	RESW    = "RESW"
	RESR    = "RESR"
	BYTE    = "BYTE"
	WORD    = "WORD"
	EXPORTS = "EXPORTS"
)

// IsDirective reports whether tok names an assembler pseudo-op. The match is
// exact and case-sensitive.
func IsDirective(tok string) bool {
	switch tok {
	case START, END, RESB, RESW, RESR, BYTE, WORD, EXPORTS:
		return true
	}
	return false
}
