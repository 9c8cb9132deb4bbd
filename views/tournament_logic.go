package views

import (
	"sort"

	"github.com/ianwestfall/tourneyman-web/internal/model"
)

// StageData is a stage reshaped for display: pools and their matches sorted
// by ordinal, with competitor display names resolved up front.
type StageData struct {
	Stage model.Stage
	Label string
	Pools []PoolData
}

type PoolData struct {
	Pool    model.Pool
	Matches []MatchData
}

type MatchData struct {
	Match       model.Match
	Competitor1 string
	Competitor2 string
}

func PrepareStageData(stages []model.Stage) []StageData {
	out := make([]StageData, 0, len(stages))

	for _, stage := range stages {
		data := StageData{
			Stage: stage,
			Label: stage.Type.Label(),
		}

		pools := make([]model.Pool, len(stage.Pools))
		copy(pools, stage.Pools)
		sort.Slice(pools, func(i, j int) bool {
			return pools[i].Ordinal < pools[j].Ordinal
		})

		for _, pool := range pools {
			matches := make([]model.Match, len(pool.Matches))
			copy(matches, pool.Matches)
			sort.Slice(matches, func(i, j int) bool {
				return matches[i].Ordinal < matches[j].Ordinal
			})

			pd := PoolData{Pool: pool}
			for _, m := range matches {
				pd.Matches = append(pd.Matches, MatchData{
					Match:       m,
					Competitor1: m.Competitor1.DisplayName(),
					Competitor2: m.Competitor2.DisplayName(),
				})
			}
			data.Pools = append(data.Pools, pd)
		}

		out = append(out, data)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Stage.Ordinal < out[j].Stage.Ordinal
	})

	return out
}
