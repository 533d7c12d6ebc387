package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/dhamidi/apisig/sig"
)

// Special textual encodings the signature writer uses for values that have
// no plain literal form.
var specialFloats = map[string]float32{
	"(1.0f/0.0f)":  float32(math.Inf(1)),
	"(-1.0f/0.0f)": float32(math.Inf(-1)),
	"(0.0f/0.0f)":  float32(math.NaN()),
}

var specialDoubles = map[string]float64{
	"(1.0/0.0)":  math.Inf(1),
	"(-1.0/0.0)": math.Inf(-1),
	"(0.0/0.0)":  math.NaN(),
}

// parseConstantValue converts the literal text of a field initializer into a
// typed value based on the declared type: bool, int32 (byte/short/int and
// char codepoints), int64 for longs, float32/float64 with the infinity and
// NaN encodings, unescaped strings, nil for null. Types outside the constant
// grammar keep the raw text.
func parseConstantValue(file string, line int, typ sig.Type, text string) (interface{}, error) {
	if text == "null" {
		return nil, nil
	}
	switch typ.Erased() {
	case "boolean":
		switch text {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, parseErrorf(file, line, "invalid boolean constant: %s", text)
	case "byte", "short", "int":
		v, err := strconv.ParseInt(text, 0, 32)
		if err != nil {
			return nil, parseErrorf(file, line, "invalid integer constant: %s", text)
		}
		return int32(v), nil
	case "long":
		trimmed := strings.TrimSuffix(strings.TrimSuffix(text, "L"), "l")
		v, err := strconv.ParseInt(trimmed, 0, 64)
		if err != nil {
			return nil, parseErrorf(file, line, "invalid long constant: %s", text)
		}
		return v, nil
	case "char":
		return parseCharValue(file, line, text)
	case "float":
		if v, ok := specialFloats[text]; ok {
			return v, nil
		}
		trimmed := strings.TrimSuffix(strings.TrimSuffix(text, "f"), "F")
		v, err := strconv.ParseFloat(trimmed, 32)
		if err != nil {
			return nil, parseErrorf(file, line, "invalid float constant: %s", text)
		}
		return float32(v), nil
	case "double":
		if v, ok := specialDoubles[text]; ok {
			return v, nil
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, parseErrorf(file, line, "invalid double constant: %s", text)
		}
		return v, nil
	case sig.JavaLangString, "String":
		return javaUnescapeString(file, line, text)
	}
	return text, nil
}

// parseCharValue accepts the codepoint-as-integer encoding the writer
// produces, plus single-quoted character literals for hand-written files.
func parseCharValue(file string, line int, text string) (interface{}, error) {
	if strings.HasPrefix(text, "'") {
		if !strings.HasSuffix(text, "'") || len(text) < 3 {
			return nil, parseErrorf(file, line, "invalid char constant: %s", text)
		}
		inner, err := javaUnescapeString(file, line, `"`+text[1:len(text)-1]+`"`)
		if err != nil {
			return nil, err
		}
		runes := []rune(inner)
		if len(runes) != 1 {
			return nil, parseErrorf(file, line, "invalid char constant: %s", text)
		}
		return runes[0], nil
	}
	v, err := strconv.ParseInt(text, 0, 32)
	if err != nil {
		return nil, parseErrorf(file, line, "invalid char constant: %s", text)
	}
	return rune(v), nil
}

// javaUnescapeString decodes a double-quoted Java string literal, including
// \uXXXX escapes.
func javaUnescapeString(file string, line int, literal string) (string, error) {
	if len(literal) < 2 || literal[0] != '"' || literal[len(literal)-1] != '"' {
		return "", parseErrorf(file, line, "invalid string constant: %s", literal)
	}
	body := literal[1 : len(literal)-1]
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch != '\\' {
			sb.WriteByte(ch)
			continue
		}
		i++
		if i >= len(body) {
			return "", parseErrorf(file, line, "invalid escape at end of string constant: %s", literal)
		}
		switch body[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case '0':
			sb.WriteByte(0)
		case '\\':
			sb.WriteByte('\\')
		case '\'':
			sb.WriteByte('\'')
		case '"':
			sb.WriteByte('"')
		case 'u':
			if i+4 >= len(body) {
				return "", parseErrorf(file, line, "invalid unicode escape in string constant: %s", literal)
			}
			v, err := strconv.ParseUint(body[i+1:i+5], 16, 32)
			if err != nil {
				return "", parseErrorf(file, line, "invalid unicode escape in string constant: %s", literal)
			}
			sb.WriteRune(rune(v))
			i += 4
		default:
			return "", parseErrorf(file, line, "unsupported escape \\%c in string constant", body[i])
		}
	}
	return sb.String(), nil
}
