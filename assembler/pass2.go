package assembler

import (
	"bufio"
	"fmt"
	"io"

	"github.com/golang/glog"
)

// RSUB takes no operand and is never relocated.
const RSUB = "RSUB"

type secondPass struct {
	opts    Options
	first   *FirstPassResult
	obj     *ObjectProgram
	mods    []Modification
	counter Address
	load    Address
	started bool
	done    bool
}

// SecondPass re-reads the source and generates the object program. Addresses
// are recomputed line by line exactly as FirstPass did.
func SecondPass(r io.Reader, first *FirstPassResult, opts Options) (*ObjectProgram, error) {
	p := &secondPass{opts: opts, first: first, obj: &ObjectProgram{}}
	scanner := bufio.NewScanner(r)
	linum := 0
	for !p.done && scanner.Scan() {
		linum++
		if err := p.line(scanner.Text()); err != nil {
			return nil, lineErr(linum, scanner.Text(), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	if !p.done {
		return nil, ErrMissingEnd
	}
	glog.V(1).Infof("pass 2: %d text records, %d modification records", len(p.obj.Text), len(p.obj.Mods))
	return p.obj, nil
}

func (p *secondPass) line(raw string) error {
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
		p.counter, p.load, p.started = load, load, true
		p.obj.Head = headRecord(line.Symbol, load, int(p.first.End-load))
		glog.V(2).Infof("(0x%X) %s", p.counter, raw)
		return nil
	case END:
		if !p.started {
			return ErrEndWithoutStart
		}
		p.obj.End = endRecord(p.load)
		for _, m := range p.mods {
			p.obj.AddMod(m)
		}
		p.done = true
		inc, err := lineIncrement(kind, line)
		if err != nil {
			return err
		}
		p.counter += Address(inc)
		glog.V(2).Infof("(0x%X) %s", curr_addr, raw)
		return nil
	}

	if err := p.generate(line); err != nil {
		return err
	}
	inc, err := lineIncrement(kind, line)
	if err != nil {
		return err
	}
	p.counter += Address(inc)
	glog.V(2).Infof("(0x%X) %s", curr_addr, raw)
	return nil
}

// generate emits the text record for one line and queues its relocation.
func (p *secondPass) generate(line Line) error {
	if IsDirective(line.Directive) {
		code, err := directiveCode(line.Directive, line.Operand)
		if err != nil {
			return err
		}
		if code != "" {
			p.obj.AddText(code)
		}
		return nil
	}

	ins, ok := LookupInstruction(line.Directive)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMnemonic, line.Directive)
	}
	var addr Address
	if line.Operand != "" {
		sym, found := p.first.Symbols.Lookup(line.Operand)
		if !found {
			if p.opts.Strict {
				return fmt.Errorf("%w: %s", ErrUndefinedSymbol, line.Operand)
			}
			glog.Warningf("undefined symbol %s, assembling address 0", line.Operand)
		}
		addr = sym.Address
	}
	p.obj.AddText(instructionCode(ins, addr))

	if ins.Mnemonic != RSUB && line.Operand != "" {
		p.mods = append(p.mods, Modification{Start: p.load, HalfBytes: 4, Symbol: line.Operand})
	}
	return nil
}
