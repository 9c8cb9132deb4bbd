package model

// Match is a single contest between two competitors. Both competitors are
// carried as hydrated values rather than ids; the backend emits the full
// nested objects and tolerates the duplication since match competitors are
// immutable once scored.
type Match struct {
	ID               int
	Ordinal          int
	Competitor1      Competitor
	Competitor2      Competitor
	Competitor1Score *int
	Competitor2Score *int
	NextMatchID      *int
	Status           int
}

type MatchResponse struct {
	ID               int                 `json:"id"`
	Ordinal          int                 `json:"ordinal"`
	Competitor1      *CompetitorResponse `json:"competitor_1"`
	Competitor2      *CompetitorResponse `json:"competitor_2"`
	Competitor1Score *int                `json:"competitor_1_score"`
	Competitor2Score *int                `json:"competitor_2_score"`
	NextMatchID      *int                `json:"next_match_id"`
	Status           int                 `json:"status"`
}

func MatchFromResponse(res MatchResponse) Match {
	m := Match{
		ID:               res.ID,
		Ordinal:          res.Ordinal,
		Competitor1Score: res.Competitor1Score,
		Competitor2Score: res.Competitor2Score,
		NextMatchID:      res.NextMatchID,
		Status:           res.Status,
	}
	if res.Competitor1 != nil {
		m.Competitor1 = CompetitorFromResponse(*res.Competitor1)
	}
	if res.Competitor2 != nil {
		m.Competitor2 = CompetitorFromResponse(*res.Competitor2)
	}
	return m
}
