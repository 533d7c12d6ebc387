// Package parser reads API signature files into a sig.Codebase: a
// hand-rolled tokenizer and recursive-descent grammar parser, plus the
// literal-value conversion helpers the grammar needs. Reference resolution
// happens afterwards in sig.ResolveReferences.
package parser

import "fmt"

// ParseError is the single error type for all fatal lexical, grammar and
// consistency failures. Parsing a file is all-or-nothing; a ParseError means
// nothing from the offending file was merged beyond the point of failure and
// the whole parse call failed.
type ParseError struct {
	File    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return e.Message
}

func parseErrorf(file string, line int, format string, args ...interface{}) *ParseError {
	return &ParseError{
		File:    file,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}
