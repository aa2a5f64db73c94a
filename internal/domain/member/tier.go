package member

import (
	"strings"

	"clubhouse/internal/domain/credit"
)

type Tier string

const (
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
	TierDiamond  Tier = "diamond"
)

var tierBundles = map[Tier]credit.Bundle{
	TierSilver:   {},
	TierGold:     {Class: 0, RedLight: 4, DryCryo: 2},
	TierPlatinum: {Class: 0, RedLight: 6, DryCryo: 4},
	TierDiamond:  {Class: 10, RedLight: 10, DryCryo: 6},
}

// NormalizeTier maps a free-form tier label such as "Gold Membership" onto a
// known tier. Unknown labels fall back to silver, which carries no credits.
func NormalizeTier(name string) Tier {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSpace(strings.TrimSuffix(n, " membership"))

	tier := Tier(n)
	if _, ok := tierBundles[tier]; ok {
		return tier
	}
	return TierSilver
}

// Allocate returns the per-cycle credit bundle for a tier label. It never fails.
func Allocate(tierName string) credit.Bundle {
	return tierBundles[NormalizeTier(tierName)]
}

func (t Tier) String() string {
	return string(t)
}
