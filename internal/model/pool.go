package model

// Pool groups the matches of one round-robin (or bracket slice) within a
// stage. Ordinal defines display and seeding order; the backend owns it.
type Pool struct {
	ID      int
	Ordinal int
	Matches []Match
}

type PoolResponse struct {
	ID      int             `json:"id"`
	Ordinal int             `json:"ordinal"`
	Matches []MatchResponse `json:"matches"`
}

func PoolFromResponse(res PoolResponse) Pool {
	p := Pool{
		ID:      res.ID,
		Ordinal: res.Ordinal,
	}
	for _, m := range res.Matches {
		p.Matches = append(p.Matches, MatchFromResponse(m))
	}
	return p
}
