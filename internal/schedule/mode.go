package schedule

import (
	"fmt"
	"strings"
)

// DeliveryMode describes how a section meets.
type DeliveryMode int

// Delivery modes. InPerson is the zero value.
const (
	InPerson DeliveryMode = iota
	Online
	Hybrid
	Arranged
)

// String returns the lower-case mode name.
func (m DeliveryMode) String() string {
	switch m {
	case InPerson:
		return "in-person"
	case Online:
		return "online"
	case Hybrid:
		return "hybrid"
	case Arranged:
		return "arranged"
	default:
		return fmt.Sprintf("DeliveryMode(%d)", int(m))
	}
}

// MarshalText encodes the mode as its name.
func (m DeliveryMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes any form accepted by ParseDeliveryMode.
func (m *DeliveryMode) UnmarshalText(text []byte) error {
	parsed, err := ParseDeliveryMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseDeliveryMode parses a mode name, case-insensitively.
func ParseDeliveryMode(s string) (DeliveryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in-person", "in person", "inperson", "":
		return InPerson, nil
	case "online":
		return Online, nil
	case "hybrid":
		return Hybrid, nil
	case "arranged":
		return Arranged, nil
	default:
		return InPerson, fmt.Errorf("unknown delivery mode %q", s)
	}
}
