package sig

import "fmt"

// Format identifies the signature file format version declared in the
// header line of a signature file. All files merged into one Codebase must
// declare the same format.
type Format int

const (
	FormatUnknown Format = iota
	// FormatV2 uses nullness annotations spelled out in the modifier list.
	FormatV2
	// FormatV3 introduces Kotlin-style null suffixes on types.
	FormatV3
	// FormatV4 keeps the V3 type syntax.
	FormatV4
)

const HeaderPrefix = "// Signature format: "

var formatVersions = map[Format]string{
	FormatV2: "2.0",
	FormatV3: "3.0",
	FormatV4: "4.0",
}

// FormatFromVersion maps a header version string to a Format.
func FormatFromVersion(version string) (Format, bool) {
	for f, v := range formatVersions {
		if v == version {
			return f, true
		}
	}
	return FormatUnknown, false
}

func (f Format) Version() string {
	if v, ok := formatVersions[f]; ok {
		return v
	}
	return ""
}

// KotlinNulls reports whether types in this format carry Kotlin-style null
// suffixes (trailing ? for nullable, ! for platform types).
func (f Format) KotlinNulls() bool {
	return f >= FormatV3
}

// Header returns the header line (without trailing newline) that declares
// this format at the top of a signature file.
func (f Format) Header() string {
	return fmt.Sprintf("%s%s", HeaderPrefix, f.Version())
}

func (f Format) String() string {
	if f == FormatUnknown {
		return "unknown"
	}
	return f.Version()
}
