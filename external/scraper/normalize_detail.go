package scraper

import (
	"github.com/iqscore/scorefeed/internal/domain/match"
	"github.com/shopspring/decimal"
)

// normalizeMatchDetail maps {homeTeam, awayTeam, matchDetails: {score, status,
// dateTime}, probabilities: {home, draw, away, homeValue, drawValue,
// awayValue}}. Absent fields stay absent so the summary can fill them.
func normalizeMatchDetail(raw []byte) (match.Detail, error) {
	obj, err := decodeObject(FamilyMatchDetail, raw)
	if err != nil {
		return match.Detail{}, err
	}

	var d match.Detail
	if team := normalizeTeam(lookupValue(obj, "homeTeam", "home_team")); team.Name != "" || team.Logo != "" {
		d.Home = &team
	}
	if team := normalizeTeam(lookupValue(obj, "awayTeam", "away_team")); team.Name != "" || team.Logo != "" {
		d.Away = &team
	}

	details := getMapAny(obj, "matchDetails", "match_details", "details")
	hasDetails := details != nil
	if !hasDetails {
		details = obj
	}
	d.Score = getStringAny(details, "score", "marcador")
	d.Status = getStringAny(details, "status", "estado")
	d.DateTime = getStringAny(details, "dateTime", "date_time", "datetime")

	if probs := getMapAny(obj, "probabilities", "probabilidades"); probs != nil {
		d.Probabilities = match.PartialProbabilities{
			Home: probability(probs, "homeValue", "home"),
			Draw: probability(probs, "drawValue", "draw"),
			Away: probability(probs, "awayValue", "away"),
		}
	}

	if d.Home == nil && d.Away == nil && !hasDetails && d.Score == "" && d.Status == "" {
		return match.Detail{}, shapeError(FamilyMatchDetail, "no match fields present")
	}
	return d, nil
}

// probability prefers the numeric value and falls back to a label like "45%".
func probability(src map[string]any, numericKey, labelKey string) *decimal.Decimal {
	if v, ok := getDecimalAny(src, numericKey); ok {
		return &v
	}
	if v, ok := getDecimalAny(src, labelKey); ok {
		return &v
	}
	return nil
}
