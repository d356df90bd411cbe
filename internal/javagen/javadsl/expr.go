// Package javadsl is a small typed model of the Java source the generator
// produces: expressions, statements, class members and a compilation unit.
//
// Expressions render themselves with Java(). Statements and members are
// laid out by a Printer, which owns indentation and blank lines.
package javadsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ssidorov-gg/apache-ignite/internal/javatypes"
)

// Expr is a Java expression.
type Expr interface {
	Java() string
}

// Type is a reference to a Java type. Class is fully qualified and rendered
// by its short name.
type Type struct {
	Class  string
	Params []string
	Array  bool
}

// T builds a Type with optional generic parameters.
func T(class string, params ...string) Type {
	return Type{Class: class, Params: params}
}

// ArrayOf builds an array Type.
func ArrayOf(class string) Type {
	return Type{Class: class, Array: true}
}

// Java renders the type, e.g. Map<String, Integer> or int[].
func (t Type) Java() string {
	var sb strings.Builder
	sb.WriteString(javatypes.ShortClassName(t.Class))
	if len(t.Params) > 0 {
		sb.WriteString("<")
		for i, p := range t.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(javatypes.ShortClassName(p))
		}
		sb.WriteString(">")
	}
	if t.Array {
		sb.WriteString("[]")
	}
	return sb.String()
}

// Ident is a variable or parameter name.
type Ident string

// Java renders the identifier.
func (i Ident) Java() string {
	return string(i)
}

// Lit is a string literal.
type Lit string

// Java renders the literal in double quotes with escaping.
func (l Lit) Java() string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range string(l) {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				sb.WriteString(fmt.Sprintf(`\u%04x`, r))
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// Raw is an escape hatch for expressions that have no typed form.
type Raw string

// Java returns the raw text unchanged.
func (r Raw) Java() string {
	return string(r)
}

// Null is the null literal.
var Null = Raw("null")

// Int is an integral literal. Values outside the int range get the long suffix.
type Int int64

// Java renders the number.
func (i Int) Java() string {
	s := strconv.FormatInt(int64(i), 10)
	if int64(i) > 2147483647 || int64(i) < -2147483648 {
		s += "L"
	}
	return s
}

// Float is a floating point literal.
type Float float64

// Java renders the shortest representation of the number.
func (f Float) Java() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// Bool is a boolean literal.
type Bool bool

// Java renders true or false.
func (b Bool) Java() string {
	return strconv.FormatBool(bool(b))
}

// ClassLit is a class literal such as String.class.
type ClassLit string

// Java renders the short class name followed by .class.
func (c ClassLit) Java() string {
	return javatypes.ShortClassName(string(c)) + ".class"
}

// Const is a static member reference such as CacheMode.PARTITIONED.
type Const struct {
	Class string
	Name  string
}

// Java renders Class.Name, or Name alone when Class is empty (static import).
func (c Const) Java() string {
	if c.Class == "" {
		return c.Name
	}
	return javatypes.ShortClassName(c.Class) + "." + c.Name
}

// New is a constructor invocation.
type New struct {
	Type Type
	Args []Expr
	// Diamond renders the type arguments as <>.
	Diamond bool
}

// Java renders new Type(args).
func (n New) Java() string {
	name := n.Type.Java()
	if n.Diamond {
		name = javatypes.ShortClassName(n.Type.Class) + "<>"
	}
	return "new " + name + "(" + joinExprs(n.Args) + ")"
}

// Call is a method invocation. A nil Recv renders an unqualified call.
type Call struct {
	Recv   Expr
	Method string
	Args   []Expr
}

// Java renders recv.method(args).
func (c Call) Java() string {
	call := c.Method + "(" + joinExprs(c.Args) + ")"
	if c.Recv == nil {
		return call
	}
	return c.Recv.Java() + "." + call
}

// Invoke is shorthand for a Call on recv.
func Invoke(recv Expr, method string, args ...Expr) Call {
	return Call{Recv: recv, Method: method, Args: args}
}

// FieldRef is a field access such as EVTS_CACHE.length.
type FieldRef struct {
	Recv Expr
	Name string
}

// Java renders recv.name.
func (f FieldRef) Java() string {
	return f.Recv.Java() + "." + f.Name
}

// Index is an array element access.
type Index struct {
	Array Expr
	Index Expr
}

// Java renders array[index].
func (i Index) Java() string {
	return i.Array.Java() + "[" + i.Index.Java() + "]"
}

// NewArray allocates an array of the given size.
type NewArray struct {
	Elem string
	Size Expr
}

// Java renders new Elem[size].
func (n NewArray) Java() string {
	return "new " + javatypes.ShortClassName(n.Elem) + "[" + n.Size.Java() + "]"
}

// ArrayLit is an array creation with an initializer.
type ArrayLit struct {
	Elem  string
	Items []Expr
}

// Java renders new Elem[] {items}.
func (a ArrayLit) Java() string {
	return "new " + javatypes.ShortClassName(a.Elem) + "[] {" + joinExprs(a.Items) + "}"
}

// Sum is an addition chain.
type Sum []Expr

// Java renders the operands joined by +.
func (s Sum) Java() string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = e.Java()
	}
	return strings.Join(parts, " + ")
}

// Cast is a primitive cast such as (byte) 1.
type Cast struct {
	Type  string
	Value Expr
}

// Java renders (type) value.
func (c Cast) Java() string {
	return "(" + c.Type + ") " + c.Value.Java()
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.Java()
	}
	return strings.Join(parts, ", ")
}
