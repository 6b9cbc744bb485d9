package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/iqscore/scorefeed/internal/platform/logging"
	"github.com/iqscore/scorefeed/internal/usecase"
)

// Services are the card use cases the handler serves. A nil service leaves
// its route answering 404.
type Services struct {
	Odds       *usecase.OddsService
	Promotions *usecase.PromotionService
	LeagueCard *usecase.LeagueCardService
	Standings  *usecase.StandingService
	Scorers    *usecase.ScorerService
	News       *usecase.NewsService
	Matches    *usecase.MatchService
	Home       *usecase.HomeService
}

type Handler struct {
	oddsService       *usecase.OddsService
	promotionService  *usecase.PromotionService
	leagueCardService *usecase.LeagueCardService
	standingService   *usecase.StandingService
	scorerService     *usecase.ScorerService
	newsService       *usecase.NewsService
	matchService      *usecase.MatchService
	homeService       *usecase.HomeService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		oddsService:       services.Odds,
		promotionService:  services.Promotions,
		leagueCardService: services.LeagueCard,
		standingService:   services.Standings,
		scorerService:     services.Scorers,
		newsService:       services.News,
		matchService:      services.Matches,
		homeService:       services.Home,
		logger:            logger.Named("httpapi"),
		validator:         validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHome")
	defer span.End()

	page, err := h.homeService.Get(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get home failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	for _, card := range page.Cards {
		if card.Err != nil {
			h.logger.WarnContext(ctx, "home card failed", "card", card.Name, "error", card.Err)
		}
	}

	writeSuccess(ctx, w, http.StatusOK, page)
}
