package pkg

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrMissingKey     = errors.New("missing key field")
	ErrMissingValue   = errors.New("missing value field")
	ErrInvalidDecimal = errors.New("value is not a valid decimal")
)

// ParseError reports the line a safe parse failed on.
type ParseError struct {
	Line []byte
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing line %q: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SplitParse is the hot-path parser. It assumes a `key;-?\d+\.\d` line and
// does not check it.
func SplitParse(line []byte) (key []byte, val int32) {
	semiColonIndex := bytes.IndexByte(line, ';')
	key = line[:semiColonIndex]
	val = ParseIndec(line[semiColonIndex+1:])
	return
}

// SplitParseSafe validates every step and returns a *ParseError instead of
// trusting the input.
func SplitParseSafe(line []byte) (key []byte, val int32, err error) {
	semiColonIndex := bytes.IndexByte(line, ';')
	if semiColonIndex < 0 {
		return nil, 0, &ParseError{Line: line, Err: ErrMissingValue}
	}
	if semiColonIndex == 0 {
		return nil, 0, &ParseError{Line: line, Err: ErrMissingKey}
	}

	key, rest := line[:semiColonIndex], line[semiColonIndex+1:]
	if len(rest) == 0 {
		return nil, 0, &ParseError{Line: line, Err: ErrMissingValue}
	}
	if !isIndec(rest) {
		return nil, 0, &ParseError{Line: line, Err: ErrInvalidDecimal}
	}

	return key, ParseIndec(rest), nil
}

// maxIndecDigits keeps the integer part inside int32 tenths.
const maxIndecDigits = 8

// isIndec reports whether bs is `-?\d+\.\d`.
func isIndec(bs []byte) bool {
	if len(bs) > 0 && bs[0] == '-' {
		bs = bs[1:]
	}
	n := len(bs)
	if n < 3 || n-2 > maxIndecDigits || bs[n-2] != '.' || !isDigit(bs[n-1]) {
		return false
	}
	for _, c := range bs[:n-2] {
		if !isDigit(c) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

var ErrInvalidEncoding = errors.New("input is not valid UTF-8")

// ValidateText checks the whole buffer once so the parsers may treat every
// byte as trusted text afterwards.
func ValidateText(data []byte) error {
	if !utf8.Valid(data) {
		return ErrInvalidEncoding
	}
	return nil
}
