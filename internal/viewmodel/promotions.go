package viewmodel

import (
	"time"

	"github.com/iqscore/scorefeed/internal/domain/odds"
)

type BookmakerView struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type PromotionRow struct {
	League       string        `json:"league"`
	Home         string        `json:"home"`
	Away         string        `json:"away"`
	BetType      string        `json:"bet_type"`
	Odd          string        `json:"odd"`
	Bookmaker    BookmakerView `json:"bookmaker"`
	ExpiresDay   string        `json:"expires_day"`
	ExpiresClock string        `json:"expires_clock"`
	OfferLink    string        `json:"offer_link"`
}

type PromotionsView struct {
	UpdatedAt  *time.Time     `json:"updated_at,omitempty"`
	UpdatedDay string         `json:"updated_day"`
	Rows       []PromotionRow `json:"rows"`
}

// PromotionsList splits each expiry into a day and a clock string. An expiry
// that did not parse shows its raw text as the day and no clock.
func PromotionsList(list odds.PromotionList) PromotionsView {
	view := PromotionsView{
		UpdatedAt:  list.ScrapedAt,
		UpdatedDay: FormatDay(list.ScrapedAt, list.ScrapedAtRaw),
		Rows:       make([]PromotionRow, 0, len(list.Promotions)),
	}
	for _, p := range list.Promotions {
		row := PromotionRow{
			League:     p.League,
			Home:       p.Home,
			Away:       p.Away,
			BetType:    p.BetType,
			Odd:        p.Odd,
			Bookmaker:  BookmakerView{Name: p.Bookmaker.Name, Logo: p.Bookmaker.Logo},
			ExpiresDay: FormatDay(p.ExpiresAt, p.ExpiresRaw),
			OfferLink:  p.OfferLink,
		}
		if p.ExpiresAt != nil {
			row.ExpiresClock = FormatClock(p.ExpiresAt, "")
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}
