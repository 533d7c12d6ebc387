// Package sig holds the object model for API signature files: a Codebase of
// packages, classes and members built by sig/parser and finalized by
// ResolveReferences. After resolution the model is read-only from the
// caller's perspective.
package sig

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
	VisibilityInternal  Visibility = "internal"
	VisibilityPackage   Visibility = "package"
)

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
)

// Well-known classes synthesized or defaulted during reference resolution.
const (
	JavaLangObject     = "java.lang.Object"
	JavaLangEnum       = "java.lang.Enum"
	JavaLangAnnotation = "java.lang.annotation.Annotation"
	JavaLangThrowable  = "java.lang.Throwable"
	JavaLangString     = "java.lang.String"
)
