package board

import (
	"fmt"
	"strings"
)

// Variant fixes the board geometry of a game.
type Variant struct {
	Name      string
	Size      int // squares per side
	PieceRows int // rows filled by Black, and by Red unless RedRows is set
	RedRows   int
}

var (
	Checkers = Variant{Name: "checkers", Size: 8, PieceRows: 3}
	Gekitai  = Variant{Name: "gekitai", Size: 6, PieceRows: 2}
)

// GekitaiClassic keeps the uneven 9 vs 3 opening layout.
var GekitaiClassic = Variant{Name: "gekitai-classic", Size: 6, PieceRows: 3, RedRows: 1}

// Variants lists the supported variants in menu order.
var Variants = []Variant{Checkers, Gekitai, GekitaiClassic}

// BlackRows is the number of top rows Black fills at setup.
func (v Variant) BlackRows() int { return v.PieceRows }

// RedStartRows is the number of bottom rows Red fills at setup.
func (v Variant) RedStartRows() int {
	if v.RedRows > 0 {
		return v.RedRows
	}
	return v.PieceRows
}

// ParseVariant looks a variant up by name, ignoring case.
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, v := range Variants {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown variant: %q", name)
}

// Title is the display name of the variant.
func (v Variant) Title() string {
	if v.Name == "" {
		return ""
	}
	return strings.ToUpper(v.Name[:1]) + strings.ReplaceAll(v.Name[1:], "-", " ")
}

// RuleSet selects what Apply does beyond relocating the piece.
type RuleSet struct {
	CaptureJumped bool `json:"capture_jumped"` // remove the piece jumped over
	PromoteKings  bool `json:"promote_kings"`  // crown men reaching the far row
}

// DefaultRules captures and promotes.
var DefaultRules = RuleSet{CaptureJumped: true, PromoteKings: true}
