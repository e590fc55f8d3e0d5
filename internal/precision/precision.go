package precision

import "fmt"

// Tag selects the scalar representation used for grid storage and kernel
// arithmetic. It is fixed for the lifetime of a run and never mixed within
// one buffer pair.
type Tag string

const (
	F64 Tag = "f64"
	F32 Tag = "f32"
	F16 Tag = "f16"
)

// Parse maps a command-line token to a Tag. Unknown tokens are a
// configuration error, never a fallback to another precision.
func Parse(token string) (Tag, error) {
	switch Tag(token) {
	case F64, F32, F16:
		return Tag(token), nil
	default:
		return "", fmt.Errorf("unknown precision: %q (want f64, f32 or f16)", token)
	}
}

func (t Tag) String() string { return string(t) }

// Bits reports the storage width of the scalar type.
func (t Tag) Bits() int {
	switch t {
	case F64:
		return 64
	case F32:
		return 32
	case F16:
		return 16
	}
	return 0
}

// All lists the supported tags, widest first. The widest tag of a given
// backend and shape serves as the error reference for the narrower ones.
func All() []Tag { return []Tag{F64, F32, F16} }
