package emit

// Expr is an expression tree node.
type Expr interface {
	exprNode()
}

// Ident is a local identifier: a parameter, receiver or variable.
type Ident struct {
	Name string
}

// Ref is a package-level identifier such as a variable or function.
type Ref struct {
	PkgPath string
	Name    string
}

// Select is X.Sel.
type Select struct {
	X   Expr
	Sel string
}

// Call is Fun(Args...). Ellipsis spreads the last argument.
type Call struct {
	Fun      Expr
	Args     []Expr
	Ellipsis bool
}

// Nil is the nil placeholder.
type Nil struct{}

// AddrOf is &X.
type AddrOf struct {
	X Expr
}

// KeyValue is one element of a composite literal.
type KeyValue struct {
	Key   string
	Value Expr
}

// Composite is Type{Key: Value, ...}.
type Composite struct {
	Type   Type
	Fields []KeyValue
}

// Lit is a Go literal spelled verbatim, such as "1" or `"Point"`.
type Lit struct {
	Value string
}

// TypeExpr is a type in expression position, such as a conversion callee.
type TypeExpr struct {
	T Type
}

// Binary is X Op Y.
type Binary struct {
	X  Expr
	Op string
	Y  Expr
}

func (Ident) exprNode()     {}
func (Ref) exprNode()       {}
func (Select) exprNode()    {}
func (Call) exprNode()      {}
func (Nil) exprNode()       {}
func (AddrOf) exprNode()    {}
func (Composite) exprNode() {}
func (Lit) exprNode()       {}
func (TypeExpr) exprNode()  {}
func (Binary) exprNode()    {}

// CallOf is a shorthand for Call{Fun: fun, Args: args}.
func CallOf(fun Expr, args ...Expr) Call {
	return Call{Fun: fun, Args: args}
}

// Sel is a shorthand for a selector chain x.a.b.
func Sel(x Expr, names ...string) Expr {
	for _, n := range names {
		x = Select{X: x, Sel: n}
	}

	return x
}
