package scraper

import (
	"github.com/iqscore/scorefeed/internal/domain/odds"
	"github.com/iqscore/scorefeed/internal/platform/textfix"
)

// normalizePromotions maps {scraped_at, matches: [{league, homeTeam, awayTeam,
// betType, odd, bookmaker: {name, logo}, expiryTime, offerLink}]}.
func normalizePromotions(raw []byte) (odds.PromotionList, error) {
	root, err := decodePayload(FamilyPromotions, raw)
	if err != nil {
		return odds.PromotionList{}, err
	}

	var list odds.PromotionList
	var items []any
	switch typed := root.(type) {
	case []any:
		items = typed
	case map[string]any:
		found, ok := getSliceAny(typed, "matches", "promotions", "offers", "data")
		if !ok {
			return odds.PromotionList{}, shapeError(FamilyPromotions, "matches is not an array")
		}
		items = found
		list.ScrapedAtRaw = getStringAny(typed, "scraped_at", "date_scraped")
		list.ScrapedAt = parseTimestamp(list.ScrapedAtRaw)
	default:
		return odds.PromotionList{}, shapeError(FamilyPromotions, "payload is neither an object nor an array")
	}

	list.Promotions = make([]odds.Promotion, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		p := odds.Promotion{
			League:     getStringAny(obj, "league", "liga"),
			Home:       getStringAny(obj, "homeTeam", "home_team", "local"),
			Away:       getStringAny(obj, "awayTeam", "away_team", "visitante"),
			BetType:    getStringAny(obj, "betType", "bet_type", "market"),
			Odd:        getStringAny(obj, "odd", "odds", "cuota"),
			ExpiresRaw: getStringAny(obj, "expiryTime", "expiry_time", "expires_at"),
			OfferLink:  getStringAny(obj, "offerLink", "offer_link", "link", "url"),
		}
		if p.Home == "" && p.Away == "" && p.BetType == "" {
			continue
		}
		if isHeaderEcho(p.Home, "homeTeam", "home_team", "local") {
			continue
		}
		p.ExpiresAt = parseTimestamp(p.ExpiresRaw)

		switch bm := lookupValue(obj, "bookmaker", "casa").(type) {
		case map[string]any:
			p.Bookmaker = odds.Bookmaker{
				Name: getStringAny(bm, "name", "nombre"),
				Logo: getStringAny(bm, "logo", "image", "logo_url"),
			}
		case string:
			p.Bookmaker = odds.Bookmaker{Name: textfix.Clean(bm)}
		}
		list.Promotions = append(list.Promotions, p)
	}
	return list, nil
}

func lookupValue(src map[string]any, keys ...string) any {
	v, _ := lookup(src, keys...)
	return v
}
