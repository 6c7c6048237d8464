package assembler

import (
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
)

// Result is the outcome of a full assembly.
type Result struct {
	Object  *ObjectProgram
	Symbols *SymbolTable
	Length  int
}

// Assemble runs both passes over src, rewinding it in between.
func Assemble(src io.ReadSeeker, opts Options) (*Result, error) {
	first, err := FirstPass(src, opts)
	if err != nil {
		return nil, fmt.Errorf("pass 1: %w", err)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding source: %w", err)
	}
	obj, err := SecondPass(src, first, opts)
	if err != nil {
		return nil, fmt.Errorf("pass 2: %w", err)
	}
	return &Result{Object: obj, Symbols: first.Symbols, Length: first.Length()}, nil
}

// AssembleFile assembles filename and writes the object program to outfile.
// Nothing is created unless assembly succeeds.
func AssembleFile(filename, outfile string, opts Options) (*Result, error) {
	glog.V(1).Infof("Assembling %s...", filename)
	src, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	res, err := Assemble(src, opts)
	if err != nil {
		return nil, err
	}

	out, err := os.Create(outfile)
	if err != nil {
		return nil, err
	}
	if _, err := res.Object.WriteTo(out); err != nil {
		out.Close()
		return nil, fmt.Errorf("writing %s: %w", outfile, err)
	}
	if err := out.Close(); err != nil {
		return nil, err
	}
	glog.V(1).Infof("wrote %s (%d bytes of program)", outfile, res.Length)
	return res, nil
}

// ObjectFileName is where the object program for filename goes by default.
func ObjectFileName(filename string) string {
	return filename + ".obj"
}

// PrintSymbols lists the symbol table in definition order.
func PrintSymbols(w io.Writer, st *SymbolTable) error {
	fmt.Fprintf(w, "Symbols (%d):\n", st.Len())
	for _, sym := range st.Symbols {
		if _, err := fmt.Fprintf(w, "  %s: 0x%X\n", sym.Name, int(sym.Address)); err != nil {
			return err
		}
	}
	return nil
}
