package assembler

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/golang/glog"
)

// Options tunes how forgiving the assembler is.
type Options struct {
	// Strict turns undefined and duplicate symbols into errors instead of
	// warnings.
	Strict bool
}

// FirstPassResult is everything pass 2 needs from pass 1.
type FirstPassResult struct {
	Symbols *SymbolTable
	Name    string
	Load    Address
	End     Address // counter value when END was reached (or at EOF)
}

// Length is the program size in bytes.
func (r *FirstPassResult) Length() int {
	return int(r.End - r.Load)
}

type firstPass struct {
	opts    Options
	syms    *SymbolTable
	counter Address
	load    Address
	name    string
	started bool
	done    bool
}

// FirstPass walks the source once, recording every label at the address it
// was defined at. Lines after END only get checked for a second START.
func FirstPass(r io.Reader, opts Options) (*FirstPassResult, error) {
	p := &firstPass{opts: opts, syms: NewSymbolTable()}
	scanner := bufio.NewScanner(r)
	linum := 0
	for scanner.Scan() {
		linum++
		if err := p.line(scanner.Text()); err != nil {
			return nil, lineErr(linum, scanner.Text(), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	glog.V(1).Infof("pass 1: %d symbols, program %q spans 0x%X-0x%X", p.syms.Len(), p.name, p.load, p.counter)
	return &FirstPassResult{Symbols: p.syms, Name: p.name, Load: p.load, End: p.counter}, nil
}

func (p *firstPass) line(raw string) error {
	if p.done {
		return p.trailing(raw)
	}
	if isMemoryOutOfBounds(p.counter) {
		return ErrMemoryBounds
	}
	curr_addr := p.counter
	kind := ClassifyLine(raw, &p.counter)
	if kind == CommentLine {
		return nil
	}
	line, err := ParseLine(raw, kind)
	if err != nil {
		return err
	}

	switch line.Directive {
	case START:
		if p.started {
			return ErrDuplicateStart
		}
		load, err := parseLoadAddress(line.Operand)
		if err != nil {
			return err
		}
		p.counter, p.load, p.name, p.started = load, load, line.Symbol, true
		glog.V(2).Infof("(0x%X) %s", p.counter, raw)
		return nil
	case END:
		p.done = true
	}

	if kind == SymbolLine && line.Symbol != "" {
		if !p.syms.Define(line.Symbol, curr_addr) {
			if p.opts.Strict {
				return fmt.Errorf("%w: %s", ErrDuplicateSymbol, line.Symbol)
			}
			glog.Warningf("symbol %s redefined at 0x%X, keeping first definition", line.Symbol, curr_addr)
		}
	}

	inc, err := lineIncrement(kind, line)
	if err != nil {
		return err
	}
	p.counter += Address(inc)
	glog.V(2).Infof("(0x%X) %s", curr_addr, raw)
	return nil
}

// trailing handles a line past END: anything but a START is ignored.
func (p *firstPass) trailing(raw string) error {
	var scratch Address
	kind := ClassifyLine(raw, &scratch)
	if kind == CommentLine {
		return nil
	}
	if line, err := ParseLine(raw, kind); err == nil && line.Directive == START {
		return ErrDuplicateStart
	}
	return nil
}

// START operands are hexadecimal
func parseLoadAddress(operand string) (Address, error) {
	if operand == "" {
		return 0, fmt.Errorf("%s: %w", START, ErrMissingOperand)
	}
	v, err := strconv.ParseUint(operand, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", START, operand, ErrNumber)
	}
	return Address(v), nil
}
