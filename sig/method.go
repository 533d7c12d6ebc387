package sig

import "strings"

// Method is a constructor or method of a class. Throws classes start out as
// names recorded during parsing and become resolved ClassItems after
// ResolveReferences has run.
type Method struct {
	Name           string
	IsConstructor  bool
	Modifiers      *Modifiers
	ReturnType     Type
	TypeParameters TypeParameterList
	Parameters     []*Parameter

	// AnnotationDefault is the raw default expression of an annotation
	// element, empty when absent.
	AnnotationDefault string

	cls         *Class
	throwsNames []string
	throws      []*Class
}

func (m *Method) Class() *Class {
	return m.cls
}

// SetThrowsNames records the throws-list names for later resolution. Only
// the parser calls this.
func (m *Method) SetThrowsNames(names []string) {
	m.throwsNames = names
}

// ThrowsNames returns the declared exception names, from the resolved
// classes once resolution has run.
func (m *Method) ThrowsNames() []string {
	if len(m.throws) > 0 {
		names := make([]string, len(m.throws))
		for i, c := range m.throws {
			names[i] = c.QualifiedName
		}
		return names
	}
	return m.throwsNames
}

// Throws returns the resolved exception classes. Empty before resolution.
func (m *Method) Throws() []*Class {
	return m.throws
}

func (m *Method) IsVarargs() bool {
	return m.Modifiers != nil && m.Modifiers.Vararg
}

// parameterTypesKey distinguishes overloads when merging duplicate
// declarations across files.
func (m *Method) parameterTypesKey() string {
	types := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		types[i] = p.Type.String()
	}
	return strings.Join(types, ",")
}

func (m *Method) sameSignature(other *Method) bool {
	return m.Name == other.Name &&
		m.IsConstructor == other.IsConstructor &&
		m.parameterTypesKey() == other.parameterTypesKey()
}
