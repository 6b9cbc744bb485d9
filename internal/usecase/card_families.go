package usecase

// Card families, matching the upstream endpoint families they read from.
const (
	familyLeagueOdds = "league_odds"
	familyScorers    = "scorers"
	familyStandings  = "standings"
	familyPromotions = "promotions"
	familyLeagueCard = "league_card"
	familyNews       = "news"
	familyTopMatches = "top_matches"
)
