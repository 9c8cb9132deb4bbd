package model

import "strconv"

type StageType int

const (
	StagePool StageType = iota
	StageSingleElimination
	StageDoubleElimination
)

var stageTypeLabels = map[StageType]string{
	StagePool:              "Pool",
	StageSingleElimination: "Single Elimination Bracket",
	StageDoubleElimination: "Double Elimination Bracket",
}

// Label returns the human-readable name for the stage type. The raw integer
// stays the value of record; unknown types render as their numeric code.
func (t StageType) Label() string {
	if label, ok := stageTypeLabels[t]; ok {
		return label
	}
	return strconv.Itoa(int(t))
}

// StageTypeOption pairs a stage type with its label for form rendering.
type StageTypeOption struct {
	Value StageType
	Text  string
}

func StageTypes() []StageTypeOption {
	return []StageTypeOption{
		{Value: StagePool, Text: stageTypeLabels[StagePool]},
		{Value: StageSingleElimination, Text: stageTypeLabels[StageSingleElimination]},
		{Value: StageDoubleElimination, Text: stageTypeLabels[StageDoubleElimination]},
	}
}

// Stage is one phase of a tournament. Type is immutable after creation from
// the client's perspective, and Params is an opaque configuration blob the
// backend interprets per type. Pools are populated only on hydration from a
// create or read response.
type Stage struct {
	ID      int
	Ordinal int
	Type    StageType
	Status  int
	Params  map[string]any
	Pools   []Pool
}

type StageResponse struct {
	ID      int            `json:"id"`
	Ordinal int            `json:"ordinal"`
	Type    int            `json:"type"`
	Status  int            `json:"status"`
	Params  map[string]any `json:"params"`
	Pools   []PoolResponse `json:"pools"`
}

type StageCreateRequest struct {
	Type   int            `json:"type"`
	Params map[string]any `json:"params"`
}

// CreateRequestBody projects the stage onto its server-writable fields.
// Ordinal, status, and pools are all server-owned.
func (s Stage) CreateRequestBody() StageCreateRequest {
	return StageCreateRequest{
		Type:   int(s.Type),
		Params: s.Params,
	}
}

func StageFromResponse(res StageResponse) Stage {
	s := Stage{
		ID:      res.ID,
		Ordinal: res.Ordinal,
		Type:    StageType(res.Type),
		Status:  res.Status,
		Params:  res.Params,
	}
	for _, p := range res.Pools {
		s.Pools = append(s.Pools, PoolFromResponse(p))
	}
	return s
}
