package javadsl

// Member is a declaration inside a class body.
type Member interface {
	isMember()
}

// Param is a method parameter.
type Param struct {
	Type Type
	Name string
}

// Field declares a class field.
type Field struct {
	Doc       []string
	Modifiers string
	Type      Type
	Name      string
	Value     Expr
}

// Java renders the field declaration on one line.
func (f Field) Java() string {
	d := Decl{Type: f.Type, Name: f.Name, Value: f.Value}.Java()
	if f.Modifiers == "" {
		return d
	}
	return f.Modifiers + " " + d
}

// Method declares a method with a body.
type Method struct {
	Doc         []string
	Annotations []string
	Modifiers   string
	Returns     Type
	Name        string
	Params      []Param
	Throws      []string
	Body        []Stmt
}

// Head renders the signature line including the opening brace.
func (m Method) Head() string {
	s := ""
	for _, a := range m.Annotations {
		s += a + " "
	}
	if m.Modifiers != "" {
		s += m.Modifiers + " "
	}
	s += m.Returns.Java() + " " + m.Name + "("
	for i, p := range m.Params {
		if i > 0 {
			s += ", "
		}
		s += p.Type.Java() + " " + p.Name
	}
	s += ")"
	for i, t := range m.Throws {
		if i == 0 {
			s += " throws "
		} else {
			s += ", "
		}
		s += Type{Class: t}.Java()
	}
	return s + " {"
}

// StaticInit is a static initializer block.
type StaticInit struct {
	Body []Stmt
}

// Class declares a class. Nested classes are members of their enclosing class.
type Class struct {
	Doc       []string
	Modifiers string
	Name      string
	Members   []Member
}

// Head renders the class declaration line including the opening brace.
func (c Class) Head() string {
	if c.Modifiers == "" {
		return "class " + c.Name + " {"
	}
	return c.Modifiers + " class " + c.Name + " {"
}

// File is one compilation unit.
type File struct {
	Package       string
	Imports       []string
	StaticImports []string
	Class         Class
}

func (Field) isMember()      {}
func (Method) isMember()     {}
func (StaticInit) isMember() {}
func (Class) isMember()      {}
