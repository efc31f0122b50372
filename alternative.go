package hypotest

import (
	"fmt"
	"strings"
)

// Alternative is the direction of the alternative hypothesis. It is fixed when a test
// is constructed. The zero value is not a valid alternative.
type Alternative int

const (
	Left Alternative = iota + 1
	Right
	Bilateral
)

func (a Alternative) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	case Bilateral:
		return "bilateral"
	}
	return fmt.Sprintf("Alternative(%d)", int(a))
}

// Tail returns the wording used in test descriptions, e.g. "left one-tailed".
func (a Alternative) Tail() string {
	switch a {
	case Left:
		return "left one-tailed"
	case Right:
		return "right one-tailed"
	case Bilateral:
		return "two-tailed"
	}
	return "unknown"
}

// Valid reports whether a is one of Left, Right or Bilateral.
func (a Alternative) Valid() bool {
	return a == Left || a == Right || a == Bilateral
}

// ParseAlternative parses "left", "right" or "bilateral" (case-insensitive).
// "less", "greater", "two-sided" and "two-tailed" are accepted as aliases.
func ParseAlternative(s string) (Alternative, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "less":
		return Left, nil
	case "right", "greater":
		return Right, nil
	case "bilateral", "two-sided", "two-tailed":
		return Bilateral, nil
	}
	return 0, newError(InvalidArgument, "ParseAlternative", "unrecognized alternative %q", s)
}

func (a Alternative) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, newError(InvalidArgument, "Alternative.MarshalText", "unrecognized alternative %d", int(a))
	}
	return []byte(a.String()), nil
}

func (a *Alternative) UnmarshalText(text []byte) error {
	parsed, err := ParseAlternative(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
