package model

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStatusCode(t *testing.T) {
	assert.Equal(t, "Pending", ConvertStatusCode(0))
	assert.Equal(t, "Ready", ConvertStatusCode(1))
	assert.Equal(t, "Active", ConvertStatusCode(2))
	assert.Equal(t, "Complete", ConvertStatusCode(3))

	// Unknown codes pass through instead of failing
	assert.Equal(t, "7", ConvertStatusCode(7))
	assert.Equal(t, "-1", ConvertStatusCode(-1))
}

func TestTournamentPublicCoercion(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    bool
	}{
		{"number one", `{"id": 1, "public": 1}`, true},
		{"number zero", `{"id": 1, "public": 0}`, false},
		{"string true", `{"id": 1, "public": "true"}`, true},
		{"string false is truthy", `{"id": 1, "public": "false"}`, true},
		{"empty string", `{"id": 1, "public": ""}`, false},
		{"bool true", `{"id": 1, "public": true}`, true},
		{"bool false", `{"id": 1, "public": false}`, false},
		{"null", `{"id": 1, "public": null}`, false},
		{"absent", `{"id": 1}`, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var res TournamentResponse
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &res))

			tournament := TournamentFromResponse(res)
			assert.Equal(t, tc.want, tournament.Public)
		})
	}
}

func TestTournamentStartDateRoundTrip(t *testing.T) {
	const startDate = "2025-06-01T00:00:00Z"

	payload := fmt.Sprintf(`{
		"id": 12,
		"name": "Spring Open",
		"organization": "Test Org",
		"start_date": %q,
		"public": true,
		"status": 0,
		"owner": {"email": "owner@example.com"}
	}`, startDate)

	var res TournamentResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &res))

	tournament := TournamentFromResponse(res)
	body := tournament.CreateRequestBody()

	assert.Equal(t, startDate, body.StartDate)
}

func TestTournamentStartDateNaiveISO(t *testing.T) {
	var res TournamentResponse
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "start_date": "2025-06-01T09:30:00"}`), &res))

	tournament := TournamentFromResponse(res)
	assert.Equal(t, 2025, tournament.StartDate.Year())
	assert.Equal(t, 9, tournament.StartDate.Hour())
}

func TestTournamentCreateRequestBodyExcludesServerOwnedFields(t *testing.T) {
	var res TournamentResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 42,
		"name": "Fall Classic",
		"organization": "Org",
		"start_date": "2025-10-01T00:00:00Z",
		"public": false,
		"status": 2,
		"owner": {"email": "owner@example.com"}
	}`), &res))

	body, err := json.Marshal(TournamentFromResponse(res).CreateRequestBody())
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(body, &fields))

	assert.ElementsMatch(t, []string{"name", "organization", "start_date", "public"}, mapKeys(fields))
}

func TestTournamentHydratesNestedCollections(t *testing.T) {
	payload := `{
		"id": 3,
		"name": "Nested Cup",
		"organization": "Org",
		"start_date": "2025-01-15T00:00:00Z",
		"public": true,
		"status": 1,
		"owner": {"email": "owner@example.com"},
		"stages": [
			{"id": 10, "ordinal": 0, "type": 0, "status": 0, "params": {"minimum_pool_size": 4}, "pools": []}
		],
		"competitors": [
			{"id": 20, "first_name": "Jane", "last_name": "Doe", "organization": "Org", "location": "NYC"},
			{"id": 21, "first_name": null, "last_name": "Smith", "organization": "Org", "location": "LA"}
		]
	}`

	var res TournamentResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &res))

	tournament := TournamentFromResponse(res)

	assert.Equal(t, "owner@example.com", tournament.Owner.Email)
	require.Len(t, tournament.Stages, 1)
	assert.Equal(t, StagePool, tournament.Stages[0].Type)
	assert.Equal(t, float64(4), tournament.Stages[0].Params["minimum_pool_size"])

	require.Len(t, tournament.Competitors, 2)
	assert.Equal(t, "Jane Doe", tournament.Competitors[0].DisplayName())
	assert.Nil(t, tournament.Competitors[1].FirstName)
}

func TestTournamentListItemsLeaveCollectionsNil(t *testing.T) {
	var res TournamentListResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"total": 1,
		"items": [{"id": 5, "name": "Listed", "start_date": "2025-02-01T00:00:00Z", "public": 1, "status": 0, "owner": {"email": "o@e.com"}}]
	}`), &res))

	require.Len(t, res.Items, 1)
	tournament := TournamentFromResponse(res.Items[0])

	assert.Nil(t, tournament.Stages)
	assert.Nil(t, tournament.Competitors)
	assert.True(t, tournament.Public)
}

func mapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
