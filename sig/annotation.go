package sig

import "strings"

// Qualified names of the nullness annotations synthesized for Kotlin-style
// null suffixes in formats that support them.
const (
	AnnotationNullable = "androidx.annotation.Nullable"
	AnnotationNonNull  = "androidx.annotation.NonNull"
)

const defaultAnnotationPrefix = "androidx.annotation."

// shortAnnotationPrefixes maps the unqualified annotation names that the
// signature writer shortens to the package prefix they are restored with.
var shortAnnotationPrefixes = map[string]string{
	"AnyThread":          "androidx.annotation.",
	"BinderThread":       "androidx.annotation.",
	"CallSuper":          "androidx.annotation.",
	"ColorInt":           "androidx.annotation.",
	"FloatRange":         "androidx.annotation.",
	"IntDef":             "androidx.annotation.",
	"IntRange":           "androidx.annotation.",
	"LongDef":            "androidx.annotation.",
	"MainThread":         "androidx.annotation.",
	"NonNull":            "androidx.annotation.",
	"Nullable":           "androidx.annotation.",
	"Px":                 "androidx.annotation.",
	"RequiresApi":        "androidx.annotation.",
	"RequiresFeature":    "androidx.annotation.",
	"RequiresPermission": "androidx.annotation.",
	"StringDef":          "androidx.annotation.",
	"UiThread":           "androidx.annotation.",
	"VisibleForTesting":  "androidx.annotation.",
	"WorkerThread":       "androidx.annotation.",
	"SuppressLint":       "android.annotation.",
	"SystemApi":          "android.annotation.",
	"TargetApi":          "android.annotation.",
	"TestApi":            "android.annotation.",
}

// DefaultShortAnnotations returns a copy of the built-in table mapping short
// annotation names to their package prefix. The parser owns its own table so
// callers can extend it without touching process-wide state.
func DefaultShortAnnotations() map[string]string {
	table := make(map[string]string, len(shortAnnotationPrefixes))
	for name, prefix := range shortAnnotationPrefixes {
		table[name] = prefix
	}
	return table
}

// QualifyAnnotationName expands a short annotation name (no dots) against the
// given table, falling back to the androidx.annotation prefix. Already
// qualified names pass through unchanged. The name must not include the
// leading '@' or any argument list.
func QualifyAnnotationName(name string, table map[string]string) string {
	if strings.Contains(name, ".") {
		return name
	}
	if prefix, ok := table[name]; ok {
		return prefix + name
	}
	return defaultAnnotationPrefix + name
}

// UnqualifyAnnotationName reverses QualifyAnnotationName for the well-known
// prefixes, used when writing signature files back out.
func UnqualifyAnnotationName(qualified string) string {
	for _, prefix := range []string{"androidx.annotation.", "android.annotation."} {
		if short, ok := strings.CutPrefix(qualified, prefix); ok && !strings.Contains(short, ".") {
			return short
		}
	}
	return qualified
}

// annotationName extracts the qualified name from an annotation source
// string, dropping the argument list if present.
func annotationName(source string) string {
	if i := strings.IndexByte(source, '('); i >= 0 {
		return source[:i]
	}
	return source
}
