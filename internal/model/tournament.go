package model

import (
	"strconv"
	"time"
)

type TournamentStatus int

const (
	TournamentPending TournamentStatus = iota
	TournamentReady
	TournamentActive
	TournamentComplete
)

var tournamentStatusLabels = map[TournamentStatus]string{
	TournamentPending:  "Pending",
	TournamentReady:    "Ready",
	TournamentActive:   "Active",
	TournamentComplete: "Complete",
}

// ConvertStatusCode maps a tournament status code to its label. Unknown
// codes pass through as their numeric form so a newer backend never breaks
// rendering.
func ConvertStatusCode(status int) string {
	if label, ok := tournamentStatusLabels[TournamentStatus(status)]; ok {
		return label
	}
	return strconv.Itoa(status)
}

// Tournament is the aggregate root: it exclusively owns its stages and
// competitors. Owner is a back-reference the client never mutates, and
// Status only ever advances through the enum order server-side.
type Tournament struct {
	ID           int
	Name         string
	Organization string
	StartDate    time.Time
	Public       bool
	Status       TournamentStatus
	Owner        User
	Stages       []Stage
	Competitors  []Competitor
}

// StatusLabel renders the tournament's own status.
func (t Tournament) StatusLabel() string {
	return ConvertStatusCode(int(t.Status))
}

type TournamentResponse struct {
	ID           int                  `json:"id"`
	Name         string               `json:"name"`
	Organization string               `json:"organization"`
	StartDate    string               `json:"start_date"`
	Public       LooseBool            `json:"public"`
	Status       int                  `json:"status"`
	Owner        *UserResponse        `json:"owner"`
	Stages       []StageResponse      `json:"stages"`
	Competitors  []CompetitorResponse `json:"competitors"`
}

// TournamentListResponse is the page envelope the list endpoint returns.
type TournamentListResponse struct {
	Total int                  `json:"total"`
	Items []TournamentResponse `json:"items"`
}

// TournamentPage is the hydrated counterpart of TournamentListResponse.
type TournamentPage struct {
	Total int
	Items []Tournament
}

type TournamentCreateRequest struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	StartDate    string `json:"start_date"`
	Public       bool   `json:"public"`
}

// CreateRequestBody projects the tournament onto the fields the backend
// accepts on create and update. StartDate is serialized back to ISO 8601;
// id, status, owner, and the nested collections are server-owned.
func (t Tournament) CreateRequestBody() TournamentCreateRequest {
	return TournamentCreateRequest{
		Name:         t.Name,
		Organization: t.Organization,
		StartDate:    formatISODate(t.StartDate),
		Public:       t.Public,
	}
}

// TournamentFromResponse hydrates a tournament and, recursively, any nested
// stages and competitors the payload carries. List-endpoint items omit the
// collections, which then stay nil.
func TournamentFromResponse(res TournamentResponse) Tournament {
	t := Tournament{
		ID:           res.ID,
		Name:         res.Name,
		Organization: res.Organization,
		StartDate:    parseISODate(res.StartDate),
		Public:       bool(res.Public),
		Status:       TournamentStatus(res.Status),
	}
	if res.Owner != nil {
		t.Owner = User{Email: res.Owner.Email}
	}
	for _, s := range res.Stages {
		t.Stages = append(t.Stages, StageFromResponse(s))
	}
	for _, c := range res.Competitors {
		t.Competitors = append(t.Competitors, CompetitorFromResponse(c))
	}
	return t
}
