package javadsl

import (
	"fmt"
	"strings"
)

// DefaultIndent is one level of indentation.
const DefaultIndent = "    "

// Printer lays out statements, members and files.
type Printer struct {
	Indent string

	sb    strings.Builder
	depth int
}

// NewPrinter returns a printer using DefaultIndent.
func NewPrinter() *Printer {
	return &Printer{Indent: DefaultIndent}
}

// Print renders a compilation unit.
func (p *Printer) Print(f File) []byte {
	p.reset()

	if f.Package != "" {
		p.line("package " + f.Package + ";")
		p.blank()
	}

	if len(f.Imports) > 0 {
		for _, imp := range f.Imports {
			p.line("import " + imp + ";")
		}
		p.blank()
	}

	if len(f.StaticImports) > 0 {
		for _, imp := range f.StaticImports {
			p.line("import static " + imp + ";")
		}
		p.blank()
	}

	p.class(f.Class)

	return []byte(p.sb.String())
}

// Stmts renders a statement list at depth zero.
func (p *Printer) Stmts(stmts []Stmt) string {
	p.reset()
	p.stmts(stmts)
	return p.sb.String()
}

func (p *Printer) reset() {
	p.sb.Reset()
	p.depth = 0
	if p.Indent == "" {
		p.Indent = DefaultIndent
	}
}

func (p *Printer) line(s string) {
	p.sb.WriteString(strings.Repeat(p.Indent, p.depth))
	p.sb.WriteString(s)
	p.sb.WriteByte('\n')
}

func (p *Printer) blank() {
	p.sb.WriteByte('\n')
}

func (p *Printer) open(s string) {
	p.line(s)
	p.depth++
}

func (p *Printer) close(s string) {
	p.depth--
	p.line(s)
}

func (p *Printer) doc(lines []string) {
	switch len(lines) {
	case 0:
		return
	case 1:
		p.line("/** " + lines[0] + " **/")
	default:
		p.line("/**")
		for _, l := range lines {
			if l == "" {
				p.line(" *")
				continue
			}
			p.line(" * " + l)
		}
		p.line(" **/")
	}
}

func (p *Printer) class(c Class) {
	p.doc(c.Doc)
	p.open(c.Head())
	p.members(c.Members)
	p.close("}")
}

func (p *Printer) members(members []Member) {
	for i, m := range members {
		if i > 0 {
			p.blank()
		}
		p.member(m)
	}
}

func (p *Printer) member(m Member) {
	switch m := m.(type) {
	case Field:
		p.doc(m.Doc)
		p.line(m.Java())
	case Method:
		p.doc(m.Doc)
		p.open(m.Head())
		p.stmts(m.Body)
		p.close("}")
	case StaticInit:
		p.open("static {")
		p.stmts(m.Body)
		p.close("}")
	case Class:
		p.class(m)
	default:
		panic(fmt.Sprintf("javadsl: unknown member %T", m))
	}
}

func (p *Printer) stmts(stmts []Stmt) {
	for _, s := range stmts {
		p.stmt(s)
	}
}

func (p *Printer) stmt(s Stmt) {
	switch s := s.(type) {
	case Decl:
		p.line(s.Java())
	case Assign:
		p.line(s.Java())
	case ExprStmt:
		p.line(s.Java())
	case Blank:
		p.blank()
	case Comment:
		p.line(s.Java())
	case Return:
		p.line(s.Java())
	case AnonDecl:
		p.open(s.Head())
		p.members(s.Members)
		p.close("};")
	case Try:
		p.open(s.Head())
		p.stmts(s.Body)
		p.close("}")
		p.open(s.CatchHead())
		p.stmts(s.Handler)
		p.close("}")
	default:
		panic(fmt.Sprintf("javadsl: unknown statement %T", s))
	}
}
