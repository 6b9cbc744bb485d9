package httpapi

import (
	"net/http"
	"strings"

	"github.com/iqscore/scorefeed/internal/domain/match"
	jsoniter "github.com/json-iterator/go"
)

const maxRequestBodyBytes = 64 << 10

type teamRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Logo        string `json:"logo" validate:"omitempty,max=2048"`
	YellowCards string `json:"yellow_cards" validate:"omitempty,max=8"`
	Possession  string `json:"possession" validate:"omitempty,max=8"`
}

// matchDetailRequest mirrors a card from /v1/matches/top so clients can post
// one back unchanged.
type matchDetailRequest struct {
	Home        teamRequest `json:"home"`
	Away        teamRequest `json:"away"`
	Date        string      `json:"date" validate:"omitempty,max=64"`
	Time        string      `json:"time" validate:"omitempty,max=16"`
	Status      string      `json:"status" validate:"omitempty,max=32"`
	Score       string      `json:"score" validate:"omitempty,max=16"`
	CurrentTime string      `json:"current_time" validate:"omitempty,max=16"`
	DetailLink  string      `json:"detail_link" validate:"required,max=2048"`
}

func decodeMatchDetailRequest(w http.ResponseWriter, r *http.Request) (matchDetailRequest, error) {
	var req matchDetailRequest
	decoder := jsoniter.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return matchDetailRequest{}, err
	}
	req.DetailLink = strings.TrimSpace(req.DetailLink)
	return req, nil
}

func (r matchDetailRequest) toMatch() match.Match {
	return match.Match{
		Home:        r.Home.toTeam(),
		Away:        r.Away.toTeam(),
		Date:        strings.TrimSpace(r.Date),
		Time:        strings.TrimSpace(r.Time),
		Status:      match.ParseStatus(r.Status),
		Score:       strings.TrimSpace(r.Score),
		CurrentTime: strings.TrimSpace(r.CurrentTime),
		DetailLink:  r.DetailLink,
	}
}

func (t teamRequest) toTeam() match.Team {
	return match.Team{
		Name:        strings.TrimSpace(t.Name),
		Logo:        strings.TrimSpace(t.Logo),
		YellowCards: strings.TrimSpace(t.YellowCards),
		Possession:  strings.TrimSpace(t.Possession),
	}
}
