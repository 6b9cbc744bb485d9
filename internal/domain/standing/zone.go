package standing

type Zone string

const (
	ZoneNone       Zone = "none"
	ZonePromotion  Zone = "promotion"
	ZoneRelegation Zone = "relegation"
)

// PromotionCutoff is the last position that qualifies for promotion.
const PromotionCutoff = 4

// RelegationSpots is the number of bottom rows in the relegation zone.
const RelegationSpots = 3

func IsPromotion(position int) bool {
	return position >= 1 && position <= PromotionCutoff
}

// IsRelegation marks the bottom three rows: positions strictly above
// length-3.
func IsRelegation(position, length int) bool {
	if position < 1 || length < 1 || position > length {
		return false
	}
	return position > length-RelegationSpots
}

// ClassifyZone resolves overlaps on short tables in favour of promotion.
func ClassifyZone(position, length int) Zone {
	switch {
	case IsPromotion(position):
		return ZonePromotion
	case IsRelegation(position, length):
		return ZoneRelegation
	default:
		return ZoneNone
	}
}
