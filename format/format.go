// Package format renders a parsed codebase back out: the signature file
// grammar itself, or a JSON projection for tooling.
package format

import (
	"encoding"

	"github.com/dhamidi/apisig/sig"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(api *sig.Codebase) error
}
