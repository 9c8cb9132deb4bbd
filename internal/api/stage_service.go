package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ianwestfall/tourneyman-web/internal/model"
	"github.com/ianwestfall/tourneyman-web/internal/session"
)

type StageService struct {
	client *Client
}

func NewStageService(client *Client) *StageService {
	return &StageService{client: client}
}

// CreateStages sends the whole batch in one call. Atomicity is whatever the
// backend gives that single request; the client makes no guarantee.
func (s *StageService) CreateStages(ctx context.Context, sess session.Session, tournament model.Tournament, stages []model.Stage) ([]model.Stage, error) {
	path := fmt.Sprintf("/tournaments/%d/stages", tournament.ID)
	return s.send(ctx, sess, http.MethodPost, path, stages, http.StatusCreated)
}

func (s *StageService) UpdateStages(ctx context.Context, sess session.Session, tournament model.Tournament, stages []model.Stage) ([]model.Stage, error) {
	path := fmt.Sprintf("/tournaments/%d/stages/", tournament.ID)
	return s.send(ctx, sess, http.MethodPut, path, stages, http.StatusOK)
}

func (s *StageService) send(ctx context.Context, sess session.Session, method, path string, stages []model.Stage, wantStatus int) ([]model.Stage, error) {
	body := make([]model.StageCreateRequest, 0, len(stages))
	for _, stage := range stages {
		body = append(body, stage.CreateRequestBody())
	}

	var res []model.StageResponse
	if err := s.client.do(ctx, sess, method, path, nil, body, wantStatus, &res); err != nil {
		return nil, err
	}

	out := make([]model.Stage, 0, len(res))
	for _, r := range res {
		out = append(out, model.StageFromResponse(r))
	}
	return out, nil
}
