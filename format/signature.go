package format

import (
	"io"
	"sort"
	"strings"

	"github.com/dhamidi/apisig/sig"
)

// SignatureEncoder writes a codebase in the signature file grammar, so the
// output parses back into an equivalent codebase. Stub classes synthesized
// during resolution are not emitted; only declared API surface is.
type SignatureEncoder struct {
	w   io.Writer
	api *sig.Codebase
}

func NewSignatureEncoder(w io.Writer) *SignatureEncoder {
	return &SignatureEncoder{w: w}
}

func (e *SignatureEncoder) Encode(api *sig.Codebase) error {
	e.api = api
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *SignatureEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(e.api.Format().Header())
	sb.WriteString("\n")

	for _, pkg := range e.api.Packages() {
		classes := declaredClasses(pkg)
		if len(classes) == 0 {
			continue
		}
		sb.WriteString("package ")
		if mods := pkg.Modifiers.String(); mods != "" {
			sb.WriteString(mods)
			sb.WriteString(" ")
		}
		sb.WriteString(pkg.Name)
		sb.WriteString(" {\n\n")
		for _, c := range classes {
			e.writeClass(&sb, pkg, c)
			sb.WriteString("\n")
		}
		sb.WriteString("}\n\n")
	}
	return []byte(sb.String()), nil
}

// declaredClasses collects the non-stub classes of a package, inner classes
// included, ordered by qualified name. Inner classes are emitted as separate
// package-level declarations with dotted names, matching the input grammar.
func declaredClasses(pkg *sig.Package) []*sig.Class {
	var classes []*sig.Class
	var collect func(c *sig.Class)
	collect = func(c *sig.Class) {
		if !c.IsStub {
			classes = append(classes, c)
		}
		for _, inner := range c.InnerClasses() {
			collect(inner)
		}
	}
	for _, c := range pkg.Classes() {
		collect(c)
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].QualifiedName < classes[j].QualifiedName
	})
	return classes
}

func (e *SignatureEncoder) writeClass(sb *strings.Builder, pkg *sig.Package, c *sig.Class) {
	sb.WriteString("  ")

	// Implicit modifiers are suppressed on output; the parser restores them.
	mods := *c.Modifiers
	switch c.Kind {
	case sig.ClassKindInterface, sig.ClassKindAnnotation:
		mods.Abstract = false
	case sig.ClassKindEnum:
		mods.Final = false
		mods.Static = false
	}
	if text := mods.String(); text != "" {
		sb.WriteString(text)
		sb.WriteString(" ")
	}

	switch c.Kind {
	case sig.ClassKindInterface:
		sb.WriteString("interface ")
	case sig.ClassKindAnnotation:
		sb.WriteString("@interface ")
	case sig.ClassKindEnum:
		sb.WriteString("enum ")
	default:
		sb.WriteString("class ")
	}
	sb.WriteString(strings.TrimPrefix(c.QualifiedName, pkg.Name+"."))
	sb.WriteString(c.TypeParameters.String())

	interfaces := interfaceNames(c)
	if c.IsInterface() {
		if len(interfaces) > 0 {
			sb.WriteString(" extends ")
			sb.WriteString(strings.Join(interfaces, ", "))
		}
	} else {
		if super := declaredSuperclass(c); super != "" {
			sb.WriteString(" extends ")
			sb.WriteString(super)
		}
		if len(interfaces) > 0 {
			sb.WriteString(" implements ")
			sb.WriteString(strings.Join(interfaces, ", "))
		}
	}
	sb.WriteString(" {\n")

	for _, m := range c.Constructors() {
		e.writeConstructor(sb, m)
	}
	for _, m := range c.Methods() {
		e.writeMethod(sb, m)
	}
	for _, f := range c.Fields() {
		e.writeField(sb, f)
	}
	for _, p := range c.Properties() {
		e.writeProperty(sb, p)
	}
	sb.WriteString("  }\n")
}

// declaredSuperclass returns the superclass reference to print, or "" when
// the superclass is implied by the class kind.
func declaredSuperclass(c *sig.Class) string {
	typ := c.SuperClassType()
	if typ.String() == "" {
		return ""
	}
	erased := typ.Erased()
	switch {
	case erased == sig.JavaLangObject:
		return ""
	case c.IsEnum() && erased == sig.JavaLangEnum:
		return ""
	case c.IsAnnotation() && erased == sig.JavaLangAnnotation:
		return ""
	}
	return typ.String()
}

func interfaceNames(c *sig.Class) []string {
	var names []string
	for _, itf := range c.Interfaces() {
		names = append(names, itf.QualifiedName)
	}
	return names
}

func (e *SignatureEncoder) writeConstructor(sb *strings.Builder, m *sig.Method) {
	sb.WriteString("    ctor ")
	if text := m.Modifiers.String(); text != "" {
		sb.WriteString(text)
		sb.WriteString(" ")
	}
	sb.WriteString(m.TypeParameters.String())
	if !m.TypeParameters.IsEmpty() {
		sb.WriteString(" ")
	}
	sb.WriteString(m.Name)
	e.writeParameters(sb, m)
	writeThrows(sb, m)
	sb.WriteString(";\n")
}

func (e *SignatureEncoder) writeMethod(sb *strings.Builder, m *sig.Method) {
	sb.WriteString("    method ")
	mods, returnType := e.renderTyped(m.Modifiers, m.ReturnType)
	if mods != "" {
		sb.WriteString(mods)
		sb.WriteString(" ")
	}
	if !m.TypeParameters.IsEmpty() {
		sb.WriteString(m.TypeParameters.String())
		sb.WriteString(" ")
	}
	sb.WriteString(returnType)
	sb.WriteString(" ")
	sb.WriteString(m.Name)
	e.writeParameters(sb, m)
	writeThrows(sb, m)
	if m.AnnotationDefault != "" {
		sb.WriteString(" default ")
		sb.WriteString(m.AnnotationDefault)
	}
	sb.WriteString(";\n")
}

func (e *SignatureEncoder) writeParameters(sb *strings.Builder, m *sig.Method) {
	sb.WriteString("(")
	for i, p := range m.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		if p.HasDefault && p.DefaultValue == sig.UnknownDefaultValue {
			sb.WriteString("optional ")
		}
		mods, typ := e.renderTyped(p.Modifiers, p.Type)
		if mods != "" {
			sb.WriteString(mods)
			sb.WriteString(" ")
		}
		sb.WriteString(typ)
		if name, ok := p.PublicName(); ok {
			sb.WriteString(" ")
			sb.WriteString(name)
		}
		if p.HasDefault && p.DefaultValue != sig.UnknownDefaultValue {
			sb.WriteString(" = ")
			sb.WriteString(p.DefaultValue)
		}
	}
	sb.WriteString(")")
}

func writeThrows(sb *strings.Builder, m *sig.Method) {
	names := m.ThrowsNames()
	if len(names) == 0 {
		return
	}
	sb.WriteString(" throws ")
	sb.WriteString(strings.Join(names, ", "))
}

func (e *SignatureEncoder) writeField(sb *strings.Builder, f *sig.Field) {
	if f.IsEnumConstant {
		sb.WriteString("    enum_constant ")
	} else {
		sb.WriteString("    field ")
	}
	mods, typ := e.renderTyped(f.Modifiers, f.Type)
	if mods != "" {
		sb.WriteString(mods)
		sb.WriteString(" ")
	}
	sb.WriteString(typ)
	sb.WriteString(" ")
	sb.WriteString(f.Name)
	if f.HasValue {
		sb.WriteString(" = ")
		sb.WriteString(f.ValueString())
	}
	sb.WriteString(";\n")
}

func (e *SignatureEncoder) writeProperty(sb *strings.Builder, p *sig.Property) {
	sb.WriteString("    property ")
	mods, typ := e.renderTyped(p.Modifiers, p.Type)
	if mods != "" {
		sb.WriteString(mods)
		sb.WriteString(" ")
	}
	sb.WriteString(typ)
	sb.WriteString(" ")
	sb.WriteString(p.Name)
	sb.WriteString(";\n")
}

// renderTyped renders a modifier list and a type together. Formats with
// Kotlin-style null syntax turn nullness annotations back into type suffixes:
// nullable becomes '?', non-null is bare, and a non-primitive type with no
// nullness annotation is a platform type written with '!'.
func (e *SignatureEncoder) renderTyped(mods *sig.Modifiers, typ sig.Type) (string, string) {
	text := typ.String()
	if !e.api.Format().KotlinNulls() || typ.IsPrimitive() || typ.IsVoid() || text == "" {
		return mods.String(), text
	}

	varargs := strings.HasSuffix(text, "...")
	text = strings.TrimSuffix(text, "...")
	switch {
	case mods.HasAnnotation(sig.AnnotationNullable):
		text += "?"
	case mods.HasAnnotation(sig.AnnotationNonNull):
		// Bare non-primitive types are non-null under these formats.
	default:
		text += "!"
	}
	if varargs {
		text += "..."
	}
	return mods.WithoutNullness().String(), text
}
