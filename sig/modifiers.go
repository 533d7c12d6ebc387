package sig

import "strings"

// Modifiers carries the visibility, keyword flags and annotation source
// strings attached to a package, class, member or parameter. Annotation
// sources are stored without the leading '@' and with their raw argument
// text, e.g. "androidx.annotation.IntRange(from=1)".
type Modifiers struct {
	Visibility Visibility

	Static       bool
	Final        bool
	Abstract     bool
	Deprecated   bool
	Transient    bool
	Volatile     bool
	Synchronized bool
	Native       bool
	Strictfp     bool
	Sealed       bool
	Default      bool
	Infix        bool
	Operator     bool
	Inline       bool
	Value        bool
	Suspend      bool
	Vararg       bool
	Functional   bool
	Data         bool

	annotations []string
}

func NewModifiers() *Modifiers {
	return &Modifiers{Visibility: VisibilityPackage}
}

func (m *Modifiers) AddAnnotation(source string) {
	m.annotations = append(m.annotations, source)
}

func (m *Modifiers) Annotations() []string {
	return m.annotations
}

// HasAnnotation reports whether an annotation with the given qualified name
// is present, ignoring argument lists.
func (m *Modifiers) HasAnnotation(qualifiedName string) bool {
	for _, a := range m.annotations {
		if annotationName(a) == qualifiedName {
			return true
		}
	}
	return false
}

func (m *Modifiers) HasNullnessAnnotation() bool {
	return m.HasAnnotation(AnnotationNullable) || m.HasAnnotation(AnnotationNonNull)
}

// Equal reports whether two modifier lists are identical, including the
// order and text of their annotations. Used to detect contradicting
// redeclarations across merged files.
func (m *Modifiers) Equal(other *Modifiers) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Visibility != other.Visibility {
		return false
	}
	if m.flagString() != other.flagString() {
		return false
	}
	if len(m.annotations) != len(other.annotations) {
		return false
	}
	for i := range m.annotations {
		if m.annotations[i] != other.annotations[i] {
			return false
		}
	}
	return true
}

// String renders annotations and keywords in the canonical order used by the
// signature writer. The package-private default visibility renders as
// nothing.
func (m *Modifiers) String() string {
	var parts []string
	for _, a := range m.annotations {
		parts = append(parts, "@"+a)
	}
	if m.Visibility != VisibilityPackage {
		parts = append(parts, string(m.Visibility))
	}
	for _, f := range []struct {
		set     bool
		keyword string
	}{
		{m.Default, "default"},
		{m.Abstract, "abstract"},
		{m.Static, "static"},
		{m.Final, "final"},
		{m.Deprecated, "deprecated"},
		{m.Sealed, "sealed"},
		{m.Transient, "transient"},
		{m.Volatile, "volatile"},
		{m.Synchronized, "synchronized"},
		{m.Native, "native"},
		{m.Strictfp, "strictfp"},
		{m.Infix, "infix"},
		{m.Operator, "operator"},
		{m.Inline, "inline"},
		{m.Value, "value"},
		{m.Suspend, "suspend"},
		{m.Functional, "fun"},
		{m.Data, "data"},
	} {
		if f.set {
			parts = append(parts, f.keyword)
		}
	}
	return strings.Join(parts, " ")
}

// WithoutNullness returns a copy with the nullness annotations removed. The
// signature writer uses it for formats that render nullness as type suffixes
// instead of annotations.
func (m *Modifiers) WithoutNullness() *Modifiers {
	clone := *m
	clone.annotations = nil
	for _, a := range m.annotations {
		if name := annotationName(a); name == AnnotationNullable || name == AnnotationNonNull {
			continue
		}
		clone.annotations = append(clone.annotations, a)
	}
	return &clone
}

// WithoutAnnotations returns a copy carrying only visibility and keyword
// flags.
func (m *Modifiers) WithoutAnnotations() *Modifiers {
	clone := *m
	clone.annotations = nil
	return &clone
}

func (m *Modifiers) flagString() string {
	flags := []bool{
		m.Static, m.Final, m.Abstract, m.Deprecated, m.Transient,
		m.Volatile, m.Synchronized, m.Native, m.Strictfp, m.Sealed,
		m.Default, m.Infix, m.Operator, m.Inline, m.Value, m.Suspend,
		m.Vararg, m.Functional, m.Data,
	}
	buf := make([]byte, len(flags))
	for i, f := range flags {
		if f {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}
