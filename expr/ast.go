package expr

// Node is an expression tree node.
type Node interface {
	node()
}

// Number is a numeric literal, or a value substituted for a variable
// (Substituted is then true and the number prints parenthesized).
type Number struct {
	Value       float64
	Literal     string
	Substituted bool
}

// Variable references the declared variable at Index.
type Variable struct {
	Name  string
	Index int
}

// Unary is a prefix sign: Op is "-" or "+".
type Unary struct {
	Op string
	X  Node
}

// Binary is an infix operation. Op is one of "+", "-", "*", "/", "**"; Lit
// keeps the spelling the user typed ("^" is accepted for "**").
type Binary struct {
	Op   string
	Lit  string
	L, R Node
}

// Paren is an explicit parenthesized group from the source.
type Paren struct {
	X Node
}

func (*Number) node()   {}
func (*Variable) node() {}
func (*Unary) node()    {}
func (*Binary) node()   {}
func (*Paren) node()    {}
