package assembler

// Symbol is a label and the address it was defined at.
type Symbol struct {
	Name    string
	Address Address
}

// SymbolTable is append-only. Symbols keeps definition order, the index
// serves lookups.
type SymbolTable struct {
	Symbols []Symbol
	index   map[string]int
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{index: make(map[string]int)}
}

// Define adds name at addr. The first definition of a name wins; a repeat
// leaves the table untouched and returns false.
func (st *SymbolTable) Define(name string, addr Address) bool {
	if _, ok := st.index[name]; ok {
		return false
	}
	st.index[name] = len(st.Symbols)
	st.Symbols = append(st.Symbols, Symbol{Name: name, Address: addr})
	return true
}

func (st *SymbolTable) Lookup(name string) (Symbol, bool) {
	i, ok := st.index[name]
	if !ok {
		return Symbol{}, false
	}
	return st.Symbols[i], true
}

func (st *SymbolTable) Len() int {
	return len(st.Symbols)
}
