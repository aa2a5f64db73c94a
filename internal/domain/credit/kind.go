package credit

import "errors"

var ErrInvalidKind = errors.New("invalid credit kind")

// Kind is the closed set of credit types a membership can carry.
type Kind string

const (
	KindClass    Kind = "class"
	KindRedLight Kind = "red_light"
	KindDryCryo  Kind = "dry_cryo"
)

// Kinds lists every credit kind in issuance order.
var Kinds = []Kind{KindClass, KindRedLight, KindDryCryo}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindClass, KindRedLight, KindDryCryo:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

// Bundle is the number of credits of each kind granted per cycle.
type Bundle struct {
	Class    int
	RedLight int
	DryCryo  int
}

func (b Bundle) Amount(k Kind) int {
	switch k {
	case KindClass:
		return b.Class
	case KindRedLight:
		return b.RedLight
	case KindDryCryo:
		return b.DryCryo
	default:
		return 0
	}
}

func (b Bundle) IsZero() bool {
	return b.Class <= 0 && b.RedLight <= 0 && b.DryCryo <= 0
}
