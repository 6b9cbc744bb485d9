package standing

import "testing"

func TestZones_TenRowTable(t *testing.T) {
	t.Parallel()

	const length = 10
	for pos := 1; pos <= length; pos++ {
		promo := IsPromotion(pos)
		releg := IsRelegation(pos, length)
		switch {
		case pos <= 4:
			if !promo || releg {
				t.Fatalf("pos %d: promo=%v releg=%v", pos, promo, releg)
			}
		case pos <= 7:
			if promo || releg {
				t.Fatalf("pos %d should be neutral, promo=%v releg=%v", pos, promo, releg)
			}
		default:
			if promo || !releg {
				t.Fatalf("pos %d should be relegation, promo=%v releg=%v", pos, promo, releg)
			}
		}
	}
}

func TestClassifyZone_ShortTablePrefersPromotion(t *testing.T) {
	t.Parallel()

	// 5 rows: positions 3-5 are relegation, 1-4 promotion.
	if !IsPromotion(4) || !IsRelegation(4, 5) {
		t.Fatalf("expected overlap at position 4 of 5")
	}
	if got := ClassifyZone(4, 5); got != ZonePromotion {
		t.Fatalf("expected promotion precedence, got %s", got)
	}
	if got := ClassifyZone(5, 5); got != ZoneRelegation {
		t.Fatalf("expected relegation for last row, got %s", got)
	}
	if got := ClassifyZone(6, 20); got != ZoneNone {
		t.Fatalf("expected none, got %s", got)
	}
}

func TestIsRelegation_OutOfRange(t *testing.T) {
	t.Parallel()

	if IsRelegation(0, 10) || IsRelegation(11, 10) || IsRelegation(1, 0) {
		t.Fatalf("out of range positions must not classify")
	}
}
