package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ianwestfall/tourneyman-web/internal/model"
	"github.com/ianwestfall/tourneyman-web/internal/session"
)

type CompetitorService struct {
	client *Client
}

func NewCompetitorService(client *Client) *CompetitorService {
	return &CompetitorService{client: client}
}

func (s *CompetitorService) CreateCompetitors(ctx context.Context, sess session.Session, tournament model.Tournament, competitors []model.Competitor) ([]model.Competitor, error) {
	path := fmt.Sprintf("/tournaments/%d/competitors/batch", tournament.ID)
	return s.send(ctx, sess, http.MethodPost, path, competitors, http.StatusCreated)
}

func (s *CompetitorService) UpdateCompetitors(ctx context.Context, sess session.Session, tournament model.Tournament, competitors []model.Competitor) ([]model.Competitor, error) {
	path := fmt.Sprintf("/tournaments/%d/competitors/", tournament.ID)
	return s.send(ctx, sess, http.MethodPut, path, competitors, http.StatusOK)
}

func (s *CompetitorService) send(ctx context.Context, sess session.Session, method, path string, competitors []model.Competitor, wantStatus int) ([]model.Competitor, error) {
	body := make([]model.CompetitorCreateRequest, 0, len(competitors))
	for _, c := range competitors {
		body = append(body, c.CreateRequestBody())
	}

	var res []model.CompetitorResponse
	if err := s.client.do(ctx, sess, method, path, nil, body, wantStatus, &res); err != nil {
		return nil, err
	}

	out := make([]model.Competitor, 0, len(res))
	for _, r := range res {
		out = append(out, model.CompetitorFromResponse(r))
	}
	return out, nil
}
