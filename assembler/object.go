package assembler

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Modification marks bytes a loader has to relocate.
type Modification struct {
	Start     Address
	HalfBytes int
	Symbol    string
}

func (m Modification) String() string {
	return fmt.Sprintf("M%06X%02X+%s\n", int(m.Start), m.HalfBytes, m.Symbol)
}

// ObjectProgram accumulates the records of one assembly. Every record keeps
// its trailing newline.
type ObjectProgram struct {
	Head string
	End  string
	Text []string
	Mods []string
}

func headRecord(name string, load Address, length int) string {
	return fmt.Sprintf("H%-6.6s%06X%06X\n", name, int(load), length)
}

func endRecord(load Address) string {
	return fmt.Sprintf("E%06X\n", int(load))
}

func (o *ObjectProgram) AddText(code string) {
	o.Text = append(o.Text, "T"+code+"\n")
}

func (o *ObjectProgram) AddMod(m Modification) {
	o.Mods = append(o.Mods, m.String())
}

// WriteTo emits head, text, modification and end records in that order.
func (o *ObjectProgram) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	write := func(rec string) error {
		n, err := bw.WriteString(rec)
		total += int64(n)
		return err
	}
	if err := write(o.Head); err != nil {
		return total, err
	}
	for _, rec := range o.Text {
		if err := write(rec); err != nil {
			return total, err
		}
	}
	for _, rec := range o.Mods {
		if err := write(rec); err != nil {
			return total, err
		}
	}
	if err := write(o.End); err != nil {
		return total, err
	}
	return total, bw.Flush()
}

func (o *ObjectProgram) String() string {
	var sb strings.Builder
	o.WriteTo(&sb)
	return sb.String()
}

// Header is the decoded H record.
type Header struct {
	Name   string
	Load   Address
	Length int
}

// Header decodes the H record fields.
func (o *ObjectProgram) Header() (Header, error) {
	rec := strings.TrimRight(o.Head, "\n")
	if len(rec) != 19 || rec[0] != 'H' {
		return Header{}, fmt.Errorf("%w: %q", ErrBadRecord, rec)
	}
	load, err := strconv.ParseUint(rec[7:13], 16, 32)
	if err != nil {
		return Header{}, fmt.Errorf("%w: load address %q", ErrBadRecord, rec[7:13])
	}
	length, err := strconv.ParseUint(rec[13:19], 16, 32)
	if err != nil {
		return Header{}, fmt.Errorf("%w: length %q", ErrBadRecord, rec[13:19])
	}
	return Header{Name: strings.TrimRight(rec[1:7], " "), Load: Address(load), Length: int(length)}, nil
}

// ReadObject parses a serialized object program.
func ReadObject(r io.Reader) (*ObjectProgram, error) {
	o := &ObjectProgram{}
	scanner := bufio.NewScanner(r)
	linum := 0
	for scanner.Scan() {
		linum++
		rec := scanner.Text()
		if rec == "" {
			continue
		}
		switch rec[0] {
		case 'H':
			o.Head = rec + "\n"
		case 'T':
			o.Text = append(o.Text, rec+"\n")
		case 'M':
			o.Mods = append(o.Mods, rec+"\n")
		case 'E':
			o.End = rec + "\n"
		default:
			return nil, lineErr(linum, rec, ErrBadRecord)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if o.Head == "" || o.End == "" {
		return nil, fmt.Errorf("%w: missing header or end record", ErrBadRecord)
	}
	return o, nil
}
