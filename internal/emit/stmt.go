package emit

// Stmt is a statement in a method body.
type Stmt interface {
	stmtNode()
}

// Return is return Results....
type Return struct {
	Results []Expr
}

// ExprStmt evaluates X for its effects.
type ExprStmt struct {
	X Expr
}

// Define is Names... := Value.
type Define struct {
	Names []string
	Value Expr
}

// Assign is LHS = RHS.
type Assign struct {
	LHS Expr
	RHS Expr
}

// IfErrReturn is if Err != nil { return Results... }.
type IfErrReturn struct {
	Err     string
	Results []Expr
}

func (Return) stmtNode()      {}
func (ExprStmt) stmtNode()    {}
func (Define) stmtNode()      {}
func (Assign) stmtNode()      {}
func (IfErrReturn) stmtNode() {}
