package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageTypeLabels(t *testing.T) {
	assert.Equal(t, "Pool", StagePool.Label())
	assert.Equal(t, "Single Elimination Bracket", StageSingleElimination.Label())
	assert.Equal(t, "Double Elimination Bracket", StageDoubleElimination.Label())

	// Unknown types fall back to the raw code
	assert.Equal(t, "9", StageType(9).Label())
}

func TestStageTypesOptionOrder(t *testing.T) {
	types := StageTypes()
	require.Len(t, types, 3)
	assert.Equal(t, StagePool, types[0].Value)
	assert.Equal(t, StageSingleElimination, types[1].Value)
	assert.Equal(t, StageDoubleElimination, types[2].Value)
}

func TestStageCreateRequestBody(t *testing.T) {
	stage := Stage{
		ID:      4,
		Ordinal: 1,
		Type:    StageSingleElimination,
		Status:  2,
		Params:  map[string]any{"seeded": true},
	}

	body, err := json.Marshal(stage.CreateRequestBody())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(body, &fields))

	assert.ElementsMatch(t, []string{"type", "params"}, mapKeys(fields))
	assert.Equal(t, float64(1), fields["type"])
}

// The full chain: stage -> pools -> matches -> competitors, all hydrated
// from one payload.
func TestStageHydratesPoolMatchCompetitorChain(t *testing.T) {
	payload := `{
		"id": 1,
		"ordinal": 0,
		"type": 0,
		"status": 1,
		"params": {},
		"pools": [
			{
				"id": 10,
				"ordinal": 0,
				"matches": [
					{
						"id": 100, "ordinal": 0, "status": 2,
						"competitor_1": {"id": 1, "first_name": "Jane", "last_name": "Doe", "organization": "A", "location": "NYC"},
						"competitor_2": {"id": 2, "first_name": "John", "last_name": "Roe", "organization": "B", "location": "LA"},
						"competitor_1_score": 5, "competitor_2_score": 3,
						"next_match_id": 102
					},
					{
						"id": 101, "ordinal": 1, "status": 2,
						"competitor_1": {"id": 3, "first_name": null, "last_name": "Park", "organization": "C", "location": "SF"},
						"competitor_2": {"id": 4, "first_name": "Ana", "last_name": "Lima", "organization": "D", "location": "RIO"},
						"competitor_1_score": 2, "competitor_2_score": 7,
						"next_match_id": 102
					}
				]
			},
			{
				"id": 11,
				"ordinal": 1,
				"matches": [
					{
						"id": 102, "ordinal": 0, "status": 0,
						"competitor_1": {"id": 1, "first_name": "Jane", "last_name": "Doe", "organization": "A", "location": "NYC"},
						"competitor_2": {"id": 4, "first_name": "Ana", "last_name": "Lima", "organization": "D", "location": "RIO"},
						"competitor_1_score": 1, "competitor_2_score": 1,
						"next_match_id": null
					},
					{
						"id": 103, "ordinal": 1, "status": 0,
						"competitor_1": {"id": 2, "first_name": "John", "last_name": "Roe", "organization": "B", "location": "LA"},
						"competitor_2": {"id": 3, "first_name": null, "last_name": "Park", "organization": "C", "location": "SF"},
						"competitor_1_score": 4, "competitor_2_score": 6,
						"next_match_id": null
					}
				]
			}
		]
	}`

	var res StageResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &res))

	stage := StageFromResponse(res)

	require.Len(t, stage.Pools, 2)
	require.Len(t, stage.Pools[0].Matches, 2)
	require.Len(t, stage.Pools[1].Matches, 2)

	first := stage.Pools[0].Matches[0]
	assert.Equal(t, 100, first.ID)
	assert.Equal(t, "Jane Doe", first.Competitor1.DisplayName())
	assert.Equal(t, "John Roe", first.Competitor2.DisplayName())
	require.NotNil(t, first.Competitor1Score)
	assert.Equal(t, 5, *first.Competitor1Score)
	require.NotNil(t, first.NextMatchID)
	assert.Equal(t, 102, *first.NextMatchID)

	// Nullable first names survive the chain
	second := stage.Pools[0].Matches[1]
	assert.Equal(t, "Park", second.Competitor1.DisplayName())

	// And the final pool's matches carry no next match
	assert.Nil(t, stage.Pools[1].Matches[0].NextMatchID)
}
