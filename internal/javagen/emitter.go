package javagen

import (
	"fmt"
	"math"
	"strings"

	"github.com/ssidorov-gg/apache-ignite/internal/bean"
	"github.com/ssidorov-gg/apache-ignite/internal/defaults"
	"github.com/ssidorov-gg/apache-ignite/internal/javagen/javadsl"
	"github.com/ssidorov-gg/apache-ignite/internal/javatypes"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

const (
	// dataSourceProp is the store factory property bound inside create().
	dataSourceProp = "dataSourceBean"

	secretsVar      = "props"
	dataSourcesName = "DataSources"
	eventsCounter   = "k"
)

// Emitter turns one bean tree into statements. An Emitter is owned by a
// single construction method and must not be shared between goroutines.
type Emitter struct {
	groups  []defaults.EventGroup
	methods map[*bean.Bean]string

	// declared holds local variable names already declared in this method.
	declared map[string]bool
	// emitted holds bean instances already constructed in this method.
	emitted map[*bean.Bean]bool

	out []javadsl.Stmt
}

// NewEmitter returns an emitter with an empty context. methods names the
// factory method of each bean that is referenced by a call instead of
// being constructed in place.
func NewEmitter(groups []defaults.EventGroup, methods map[*bean.Bean]string) *Emitter {
	if methods == nil {
		methods = map[*bean.Bean]string{}
	}
	return &Emitter{
		groups:   groups,
		methods:  methods,
		declared: map[string]bool{},
		emitted:  map[*bean.Bean]bool{},
	}
}

// Emit constructs b with a fresh context. Nested factory-method beans are
// referenced by calls named after their identifiers.
func Emit(b *bean.Bean, groups []defaults.EventGroup) []javadsl.Stmt {
	e := NewEmitter(groups, MethodNames(CollectComplexBeans(b), nil))
	e.Bean(b)
	return e.Stmts()
}

// Stmts returns the statements emitted so far with redundant blank lines removed.
func (e *Emitter) Stmts() []javadsl.Stmt {
	return tidy(e.out)
}

func (e *Emitter) add(stmts ...javadsl.Stmt) {
	e.out = append(e.out, stmts...)
}

func (e *Emitter) blank() {
	e.add(javadsl.Blank{})
}

// declare binds name to value, declaring it on first use and reassigning it
// afterwards. The statement is set off from the previous one by a blank line.
func (e *Emitter) declare(typ javadsl.Type, name string, value javadsl.Expr) {
	e.blank()
	if e.declared[name] {
		e.add(javadsl.Assign{Target: javadsl.Ident(name), Value: value})
		return
	}
	e.declared[name] = true
	e.add(javadsl.Decl{Type: typ, Name: name, Value: value})
}

func (e *Emitter) set(target javadsl.Expr, property string, args ...javadsl.Expr) {
	e.add(javadsl.ExprStmt{X: javadsl.Invoke(target, javatypes.Setter(property), args...)})
}

// Bean constructs b: complex arguments first, then the declaration, then
// every property.
func (e *Emitter) Bean(b *bean.Bean) {
	if p := b.FindProperty(dataSourceProp); p != nil && p.Kind == bean.KindDataSource {
		e.storeFactory(b, p)
		return
	}

	args := e.args(b)
	e.declare(javadsl.T(b.Class), b.ID, javadsl.New{Type: javadsl.T(b.Class), Args: args})
	e.emitted[b] = true

	if len(b.Props) > 0 {
		e.blank()
		e.Properties(b)
	}
}

// Properties emits the setter calls of b against its variable.
func (e *Emitter) Properties(b *bean.Bean) {
	e.properties(javadsl.Ident(b.ID), b)
}

// storeFactory emits a store factory whose data source is bound when the
// store is created.
func (e *Emitter) storeFactory(b *bean.Bean, ds *bean.Property) {
	args := e.args(b)

	create := javadsl.Method{
		Doc:         []string{"{@inheritDoc}"},
		Annotations: []string{"@Override"},
		Modifiers:   "public",
		Returns:     javadsl.T(StoreClass(b.Class)),
		Name:        "create",
		Body: []javadsl.Stmt{
			javadsl.ExprStmt{X: javadsl.Call{Method: "setDataSource", Args: []javadsl.Expr{dataSourceRef(ds.ID)}}},
			javadsl.Blank{},
			javadsl.Return{Value: javadsl.Raw("super.create()")},
		},
	}

	e.blank()
	e.add(javadsl.AnonDecl{
		Type:     javadsl.T(b.Class),
		Name:     b.ID,
		Args:     args,
		Members:  []javadsl.Member{create},
		Reassign: e.declared[b.ID],
	})
	e.declared[b.ID] = true
	e.emitted[b] = true

	rest := b.WithoutProperties(dataSourceProp)
	if len(rest.Props) > 0 {
		e.blank()
		e.properties(javadsl.Ident(b.ID), rest)
	}
}

// ref returns an expression for b, hoisting its construction when needed.
func (e *Emitter) ref(b *bean.Bean) javadsl.Expr {
	if name, ok := e.methods[b]; ok {
		return javadsl.Call{Method: name}
	}
	if e.emitted[b] {
		return javadsl.Ident(b.ID)
	}
	if !b.IsComplex() {
		return e.inline(b)
	}

	e.Bean(b)
	e.blank()

	return javadsl.Ident(b.ID)
}

// inline renders a bean without properties as a constructor call.
func (e *Emitter) inline(b *bean.Bean) javadsl.Expr {
	return javadsl.New{Type: javadsl.T(b.Class), Args: e.args(b)}
}

func (e *Emitter) args(b *bean.Bean) []javadsl.Expr {
	if len(b.Args) == 0 {
		return nil
	}
	out := make([]javadsl.Expr, 0, len(b.Args))
	for _, arg := range b.Args {
		out = append(out, e.arg(arg))
	}
	return out
}

func (e *Emitter) arg(arg bean.Argument) javadsl.Expr {
	if arg.Kind == bean.KindBean {
		if arg.Bean == nil {
			return javadsl.Null
		}
		return e.ref(arg.Bean)
	}
	if arg.Value == nil {
		return javadsl.Null
	}

	switch arg.Kind {
	case bean.KindConstant:
		if arg.Class == "" {
			return javadsl.Raw(fmt.Sprint(arg.Value))
		}
		return javadsl.Const{Class: arg.Class, Name: fmt.Sprint(arg.Value)}
	default:
		return scalar(arg.Kind, arg.Value)
	}
}

func (e *Emitter) properties(target javadsl.Expr, b *bean.Bean) {
	for i := range b.Props {
		e.property(target, &b.Props[i])
	}
}

func (e *Emitter) property(target javadsl.Expr, p *bean.Property) {
	switch p.Kind {
	case bean.KindBean:
		e.set(target, p.Name, e.ref(p.Bean))
	case bean.KindEnum:
		e.set(target, p.Name, javadsl.Const{Class: p.Class, Name: p.EnumValue()})
	case bean.KindDataSource:
		e.set(target, p.Name, dataSourceRef(p.ID))
	case bean.KindArray:
		e.array(target, p)
	case bean.KindCollection:
		e.collection(target, p)
	case bean.KindMap:
		e.mapping(target, p)
	case bean.KindProperties:
		e.propertiesBag(target, p)
	case bean.KindEventTypes:
		e.eventTypes(target, p)
	default:
		e.set(target, p.Name, scalar(p.Kind, p.Value))
	}
}

func (e *Emitter) array(target javadsl.Expr, p *bean.Property) {
	if len(p.Beans) == 0 {
		items := make([]javadsl.Expr, len(p.Values))
		for i, v := range p.Values {
			items[i] = element(p.ElemClass, v)
		}
		if p.VarArg {
			e.set(target, p.Name, items...)
			return
		}
		e.set(target, p.Name, javadsl.ArrayLit{Elem: p.ElemClass, Items: items})
		return
	}

	if p.VarArg {
		items := make([]javadsl.Expr, len(p.Beans))
		for i, item := range p.Beans {
			items[i] = e.ref(item)
		}
		e.set(target, p.Name, items...)
		return
	}

	arr := javadsl.Ident(p.ID)
	e.declare(javadsl.ArrayOf(p.ElemClass), p.ID,
		javadsl.NewArray{Elem: p.ElemClass, Size: javadsl.Int(len(p.Beans))})
	e.blank()

	for i, item := range p.Beans {
		slot := javadsl.Index{Array: arr, Index: javadsl.Int(i)}
		if name, ok := e.methods[item]; ok {
			e.add(javadsl.Assign{Target: slot, Value: javadsl.Call{Method: name}})
			continue
		}
		args := e.args(item)
		e.add(javadsl.Assign{Target: slot, Value: javadsl.New{Type: javadsl.T(item.Class), Args: args}})
		e.properties(slot, item)
		e.blank()
	}

	e.set(target, p.Name, arr)
}

func (e *Emitter) collection(target javadsl.Expr, p *bean.Property) {
	if len(p.Beans) == 0 && p.ImplClass == bean.CollectionImpl {
		items := make([]javadsl.Expr, len(p.Values))
		for i, v := range p.Values {
			items[i] = element(p.ElemClass, v)
		}
		e.set(target, p.Name, javadsl.Invoke(javadsl.Ident("Arrays"), "asList", items...))
		return
	}

	coll := javadsl.Ident(p.ID)
	e.declare(javadsl.T(p.Iface, p.ElemClass), p.ID,
		javadsl.New{Type: javadsl.T(p.ImplClass), Diamond: true})
	e.blank()

	for _, v := range p.Values {
		e.add(javadsl.ExprStmt{X: javadsl.Invoke(coll, "add", element(p.ElemClass, v))})
	}
	for _, item := range p.Beans {
		ref := e.ref(item)
		e.add(javadsl.ExprStmt{X: javadsl.Invoke(coll, "add", ref)})
		e.blank()
	}

	e.blank()
	e.set(target, p.Name, coll)
}

// MapClass returns the implementation of a map property.
func MapClass(m *defaults.Map) string {
	if m != nil && m.Ordered {
		return "java.util.LinkedHashMap"
	}
	return "java.util.HashMap"
}

func (e *Emitter) mapping(target javadsl.Expr, p *bean.Property) {
	m := p.Map
	if m == nil {
		m = &defaults.Map{KeyClass: "java.lang.String", ValClass: "java.lang.String", KeyField: "name", ValField: "value"}
	}
	impl := MapClass(m)

	id := javadsl.Ident(p.ID)
	e.declare(javadsl.T(impl, m.KeyClass, m.ValClass), p.ID, javadsl.New{Type: javadsl.T(impl), Diamond: true})
	e.blank()

	for _, entry := range p.Entries {
		key := element(m.KeyClass, entry.Value(m.KeyField))
		e.add(javadsl.ExprStmt{X: javadsl.Invoke(id, "put", key, mapValue(m.ValClass, entry.Value(m.ValField)))})
	}

	e.blank()
	e.set(target, p.Name, id)
}

func mapValue(class string, v any) javadsl.Expr {
	list, ok := v.([]any)
	if !ok {
		return element(class, v)
	}
	items := make([]javadsl.Expr, len(list))
	for i, item := range list {
		items[i] = element(class, item)
	}
	return javadsl.ArrayLit{Elem: class, Items: items}
}

func (e *Emitter) propertiesBag(target javadsl.Expr, p *bean.Property) {
	id := javadsl.Ident(p.ID)
	e.declare(javadsl.T("java.util.Properties"), p.ID, javadsl.New{Type: javadsl.T("java.util.Properties")})
	e.blank()

	for _, entry := range p.Entries {
		e.add(javadsl.ExprStmt{X: javadsl.Invoke(id, "setProperty",
			javadsl.Lit(entry.String("name")), javadsl.Lit(entry.String("value")))})
	}

	e.blank()
	e.set(target, p.Name, id)
}

func (e *Emitter) eventGroups(names []string) []defaults.EventGroup {
	var out []defaults.EventGroup
	for _, name := range names {
		for _, g := range e.groups {
			if g.Value == name {
				out = append(out, g)
				break
			}
		}
	}
	return out
}

// eventTypes emits the union of the selected event groups. A single group
// is passed directly; several are copied into one array.
func (e *Emitter) eventTypes(target javadsl.Expr, p *bean.Property) {
	groups := e.eventGroups(p.Groups)
	switch len(groups) {
	case 0:
		return
	case 1:
		e.set(target, p.Name, javadsl.Const{Name: groups[0].Value})
		return
	}

	length := func(g defaults.EventGroup) javadsl.Expr {
		return javadsl.FieldRef{Recv: javadsl.Ident(g.Value), Name: "length"}
	}

	size := make(javadsl.Sum, len(groups))
	for i, g := range groups {
		size[i] = length(g)
	}

	events := javadsl.Ident(p.ID)
	counter := javadsl.Ident(eventsCounter)

	e.declare(javadsl.ArrayOf("int"), p.ID, javadsl.NewArray{Elem: "int", Size: size})
	e.blank()
	e.declare(javadsl.T("int"), eventsCounter, javadsl.Int(0))

	for i, g := range groups {
		e.blank()
		e.add(javadsl.ExprStmt{X: javadsl.Invoke(javadsl.Ident("System"), "arraycopy",
			javadsl.Ident(g.Value), javadsl.Int(0), events, counter, length(g))})
		if i < len(groups)-1 {
			e.add(javadsl.Assign{Target: counter, Op: "+", Value: length(g)})
		}
	}

	e.blank()
	e.set(target, p.Name, events)
}

// StoreClass returns the store created by a store factory class.
func StoreClass(factory string) string {
	return strings.TrimSuffix(factory, "Factory")
}

func dataSourceRef(id string) javadsl.Expr {
	return javadsl.FieldRef{Recv: javadsl.Ident(dataSourcesName), Name: dataSourceField(id)}
}

func dataSourceField(id string) string {
	return "INSTANCE_" + identifier(id)
}

func identifier(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return r
		}
		return '_'
	}, s)
}

func secret(key any) javadsl.Call {
	return javadsl.Invoke(javadsl.Ident(secretsVar), "getProperty", javadsl.Lit(fmt.Sprint(key)))
}

// scalar renders a scalar property or argument value.
func scalar(kind bean.Kind, v any) javadsl.Expr {
	if v == nil {
		return javadsl.Null
	}

	switch kind {
	case bean.KindString, bean.KindPath:
		return javadsl.Lit(fmt.Sprint(v))
	case bean.KindInt:
		return number(v)
	case bean.KindByte:
		return javadsl.Cast{Type: "byte", Value: number(v)}
	case bean.KindBool:
		if bv, ok := v.(bool); ok {
			return javadsl.Bool(bv)
		}
		return javadsl.Bool(model.Truthy(v))
	case bean.KindClass:
		return javadsl.ClassLit(javatypes.FullClassName(fmt.Sprint(v)))
	case bean.KindSecretRef:
		return secret(v)
	case bean.KindSecretChars:
		return javadsl.Invoke(secret(v), "toCharArray")
	default:
		return literal(v)
	}
}

// element renders an item of an array, collection or map by its declared class.
func element(class string, v any) javadsl.Expr {
	if v == nil {
		return javadsl.Null
	}

	switch {
	case class == "java.lang.Class":
		return javadsl.ClassLit(javatypes.FullClassName(fmt.Sprint(v)))
	case class == "java.lang.String":
		return javadsl.Lit(fmt.Sprint(v))
	case class == "java.util.UUID":
		return javadsl.Invoke(javadsl.Ident("UUID"), "fromString", javadsl.Lit(fmt.Sprint(v)))
	case class == "byte":
		return javadsl.Cast{Type: "byte", Value: number(v)}
	case javatypes.IsEnum(class):
		return javadsl.Const{Class: class, Name: fmt.Sprint(v)}
	default:
		return literal(v)
	}
}

func literal(v any) javadsl.Expr {
	switch v := v.(type) {
	case string:
		return javadsl.Lit(v)
	case bool:
		return javadsl.Bool(v)
	default:
		return number(v)
	}
}

func number(v any) javadsl.Expr {
	switch n := v.(type) {
	case int:
		return javadsl.Int(n)
	case int32:
		return javadsl.Int(n)
	case int64:
		return javadsl.Int(n)
	case float64:
		if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
			return javadsl.Int(int64(n))
		}
		return javadsl.Float(n)
	case float32:
		return javadsl.Float(float64(n))
	case string:
		return javadsl.Raw(n)
	default:
		return javadsl.Raw(fmt.Sprint(v))
	}
}

// tidy drops leading, trailing and repeated blank lines.
func tidy(stmts []javadsl.Stmt) []javadsl.Stmt {
	out := make([]javadsl.Stmt, 0, len(stmts))
	for _, s := range stmts {
		if _, ok := s.(javadsl.Blank); ok {
			if len(out) == 0 {
				continue
			}
			if _, prev := out[len(out)-1].(javadsl.Blank); prev {
				continue
			}
		}
		out = append(out, s)
	}
	for len(out) > 0 {
		if _, ok := out[len(out)-1].(javadsl.Blank); !ok {
			break
		}
		out = out[:len(out)-1]
	}
	return out
}
