package sig

import (
	"sort"
	"strings"
)

// Class is a class, interface, enum or annotation type. During parsing only
// the name-based fields are populated; superclass, interface and containment
// links are established by ResolveReferences.
type Class struct {
	QualifiedName  string
	Kind           ClassKind
	Modifiers      *Modifiers
	TypeParameters TypeParameterList

	// IsStub marks classes synthesized by the resolver for names that were
	// referenced but never declared in the parsed files.
	IsStub bool

	simpleName     string
	pkg            *Package
	containing     *Class
	superClass     *Class
	superClassType Type
	interfaces     []*Class
	inner          []*Class

	constructors []*Method
	methods      []*Method
	fields       []*Field
	properties   []*Property
}

func NewClass(qualifiedName, simpleName string, kind ClassKind, mods *Modifiers) *Class {
	return &Class{
		QualifiedName: qualifiedName,
		Kind:          kind,
		Modifiers:     mods,
		simpleName:    simpleName,
	}
}

// SimpleName is the name within the owning package. For classes declared
// with outer-class qualification ("Outer.Inner") it still contains dots
// until inner-class resolution reduces it to the last component.
func (c *Class) SimpleName() string {
	return c.simpleName
}

func (c *Class) Package() *Package {
	return c.pkg
}

// ContainingClass returns the outer class for inner classes, nil otherwise.
func (c *Class) ContainingClass() *Class {
	return c.containing
}

// SuperClass returns the resolved superclass, nil only for java.lang.Object
// and interfaces before resolution.
func (c *Class) SuperClass() *Class {
	return c.superClass
}

func (c *Class) SuperClassType() Type {
	return c.superClassType
}

func (c *Class) Interfaces() []*Class {
	return c.interfaces
}

func (c *Class) InterfaceTypes() []Type {
	types := make([]Type, len(c.interfaces))
	for i, itf := range c.interfaces {
		types[i] = NewType(itf.QualifiedName)
	}
	return types
}

func (c *Class) InnerClasses() []*Class {
	inner := make([]*Class, len(c.inner))
	copy(inner, c.inner)
	sort.Slice(inner, func(i, j int) bool { return inner[i].QualifiedName < inner[j].QualifiedName })
	return inner
}

func (c *Class) Constructors() []*Method { return c.constructors }
func (c *Class) Methods() []*Method      { return c.methods }
func (c *Class) Fields() []*Field        { return c.fields }
func (c *Class) Properties() []*Property { return c.properties }

func (c *Class) IsInterface() bool  { return c.Kind == ClassKindInterface }
func (c *Class) IsEnum() bool       { return c.Kind == ClassKindEnum }
func (c *Class) IsAnnotation() bool { return c.Kind == ClassKindAnnotation }

// IsInner reports whether the class was declared with outer-class
// qualification. Before resolution this is derived from the dotted simple
// name, afterwards from the containment link.
func (c *Class) IsInner() bool {
	return c.containing != nil || strings.Contains(c.simpleName, ".")
}

// AddConstructor merges a constructor into the class, ignoring an exact
// duplicate signature so that re-parsing identical files is idempotent.
func (c *Class) AddConstructor(m *Method) *Method {
	for _, existing := range c.constructors {
		if existing.sameSignature(m) {
			return existing
		}
	}
	m.cls = c
	c.constructors = append(c.constructors, m)
	return m
}

// AddMethod merges a method into the class, ignoring duplicates by
// name and parameter types.
func (c *Class) AddMethod(m *Method) *Method {
	for _, existing := range c.methods {
		if existing.sameSignature(m) {
			return existing
		}
	}
	m.cls = c
	c.methods = append(c.methods, m)
	return m
}

// AddField merges a field by name.
func (c *Class) AddField(f *Field) *Field {
	for _, existing := range c.fields {
		if existing.Name == f.Name {
			return existing
		}
	}
	f.cls = c
	c.fields = append(c.fields, f)
	return f
}

// AddProperty merges a property by name.
func (c *Class) AddProperty(p *Property) *Property {
	for _, existing := range c.properties {
		if existing.Name == p.Name {
			return existing
		}
	}
	p.cls = c
	c.properties = append(c.properties, p)
	return p
}

// FindMethod returns the method with the given name and comma-joined
// parameter type list, or nil.
func (c *Class) FindMethod(name, parameterTypes string) *Method {
	for _, m := range c.methods {
		if m.Name == name && m.parameterTypesKey() == parameterTypes {
			return m
		}
	}
	return nil
}

func (c *Class) FindField(name string) *Field {
	for _, f := range c.fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (c *Class) setSuperClass(super *Class, typ Type) {
	c.superClass = super
	c.superClassType = typ
}

func (c *Class) addInterface(itf *Class) {
	for _, existing := range c.interfaces {
		if existing == itf {
			return
		}
	}
	c.interfaces = append(c.interfaces, itf)
}

func (c *Class) addInnerClass(inner *Class) {
	for _, existing := range c.inner {
		if existing == inner {
			return
		}
	}
	c.inner = append(c.inner, inner)
	inner.containing = c
}
