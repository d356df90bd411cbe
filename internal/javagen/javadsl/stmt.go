package javadsl

// Stmt is a Java statement inside a method or initializer body.
type Stmt interface {
	isStmt()
}

// Decl renders Type name = value; A nil Value declares without initializer.
type Decl struct {
	Type  Type
	Name  string
	Value Expr
}

// Java renders the declaration on one line.
func (d Decl) Java() string {
	if d.Value == nil {
		return d.Type.Java() + " " + d.Name + ";"
	}
	return d.Type.Java() + " " + d.Name + " = " + d.Value.Java() + ";"
}

// Assign renders target = value; or a compound assignment when Op is set.
type Assign struct {
	Target Expr
	Op     string // e.g. "+"; empty for plain assignment
	Value  Expr
}

// Java renders the assignment on one line.
func (a Assign) Java() string {
	return a.Target.Java() + " " + a.Op + "= " + a.Value.Java() + ";"
}

// ExprStmt is an expression evaluated for its side effect.
type ExprStmt struct {
	X Expr
}

// Java renders the expression followed by a semicolon.
func (e ExprStmt) Java() string {
	return e.X.Java() + ";"
}

// Blank is an empty separator line.
type Blank struct{}

// Comment renders a // line comment.
type Comment struct {
	Text string
}

// Java renders the comment.
func (c Comment) Java() string {
	return "// " + c.Text
}

// Return renders return value;
type Return struct {
	Value Expr
}

// Java renders the return statement.
func (r Return) Java() string {
	return "return " + r.Value.Java() + ";"
}

// AnonDecl declares a variable bound to an anonymous subclass:
//
//	Type name = new Type(args) {
//	    members
//	};
//
// Reassign drops the type and only assigns the instance.
type AnonDecl struct {
	Type     Type
	Name     string
	Args     []Expr
	Members  []Member
	Reassign bool
}

// Head renders the opening line of the declaration.
func (a AnonDecl) Head() string {
	head := a.Name + " = " + New{Type: a.Type, Args: a.Args}.Java() + " {"
	if a.Reassign {
		return head
	}
	return a.Type.Java() + " " + head
}

// Try is a try-with-resources block with a single catch clause.
type Try struct {
	Resource  *Decl
	Body      []Stmt
	CatchType string
	CatchVar  string
	Handler   []Stmt
}

// Head renders the opening line of the try block.
func (t Try) Head() string {
	if t.Resource == nil {
		return "try {"
	}
	res := t.Resource.Java()
	return "try (" + res[:len(res)-1] + ") {"
}

// CatchHead renders the opening line of the catch clause.
func (t Try) CatchHead() string {
	return "catch (" + Type{Class: t.CatchType}.Java() + " " + t.CatchVar + ") {"
}

func (Decl) isStmt()     {}
func (Assign) isStmt()   {}
func (ExprStmt) isStmt() {}
func (Blank) isStmt()    {}
func (Comment) isStmt()  {}
func (Return) isStmt()   {}
func (AnonDecl) isStmt() {}
func (Try) isStmt()      {}
