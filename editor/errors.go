package editor

import "fmt"

// ErrorCode is the fixed taxonomy of import failures reported to the
// control surface.
type ErrorCode uint8

const (
	// CodeInvalidDocument: the raw input could not be parsed as a
	// vector document at all.
	CodeInvalidDocument ErrorCode = iota + 1
	// CodeNoPathFound: parsing succeeded but the document holds no
	// usable path-like geometry.
	CodeNoPathFound
)

func (c ErrorCode) String() string {
	switch c {
	case CodeInvalidDocument:
		return "invalid document"
	case CodeNoPathFound:
		return "no path found"
	default:
		return "<unknown ErrorCode>"
	}
}

// ImportError is the structured, terminal failure of one import
// attempt. No retry is attempted internally; the control surface is
// notified exactly once.
type ImportError struct {
	Code ErrorCode
	Err  error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("import failed (%s): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("import failed (%s)", e.Code)
}

func (e *ImportError) Unwrap() error { return e.Err }
