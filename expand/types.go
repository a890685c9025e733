// Package expand: expansion modes.
package expand

import "fmt"

// Mode controls which derived columns Expand appends.
type Mode int

const (
	// ModeCrossProduct appends one column per unordered pair of distinct
	// original columns, in lower-triangular enumeration order.
	ModeCrossProduct Mode = iota

	// ModeSquare appends one column per original column having more than
	// two distinct values.
	ModeSquare

	// ModeCombined appends squares first, then cross-products, after the
	// original columns.
	ModeCombined
)

// String implements fmt.Stringer with the canonical wire names.
func (m Mode) String() string {
	switch m {
	case ModeCrossProduct:
		return "crossproduct"
	case ModeSquare:
		return "square"
	case ModeCombined:
		return "combined"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps the canonical mode strings ("crossproduct", "square",
// "combined") onto Mode values. Unrecognized strings yield ErrUnknownMode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "crossproduct":
		return ModeCrossProduct, nil
	case "square":
		return ModeSquare, nil
	case "combined":
		return ModeCombined, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMode)
	}
}
