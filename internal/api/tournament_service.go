package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ianwestfall/tourneyman-web/internal/model"
	"github.com/ianwestfall/tourneyman-web/internal/session"
)

type TournamentService struct {
	client *Client
}

func NewTournamentService(client *Client) *TournamentService {
	return &TournamentService{client: client}
}

func (s *TournamentService) Create(ctx context.Context, sess session.Session, tournament model.Tournament) (model.Tournament, error) {
	var res model.TournamentResponse
	err := s.client.do(ctx, sess, http.MethodPost, "/tournaments", nil, tournament.CreateRequestBody(), http.StatusCreated, &res)
	if err != nil {
		return model.Tournament{}, err
	}
	return model.TournamentFromResponse(res), nil
}

func (s *TournamentService) Update(ctx context.Context, sess session.Session, tournament model.Tournament) (model.Tournament, error) {
	path := fmt.Sprintf("/tournaments/%d", tournament.ID)

	var res model.TournamentResponse
	err := s.client.do(ctx, sess, http.MethodPut, path, nil, tournament.CreateRequestBody(), http.StatusOK, &res)
	if err != nil {
		return model.Tournament{}, err
	}
	return model.TournamentFromResponse(res), nil
}

type statusUpdateRequest struct {
	Status int `json:"status"`
}

// UpdateStatus hits the dedicated state-transition endpoint. Status changes
// are validated server-side, so they never go through the general update.
func (s *TournamentService) UpdateStatus(ctx context.Context, sess session.Session, tournament model.Tournament, status model.TournamentStatus) (model.Tournament, error) {
	path := fmt.Sprintf("/tournaments/%d/status", tournament.ID)

	var res model.TournamentResponse
	err := s.client.do(ctx, sess, http.MethodPost, path, nil, statusUpdateRequest{Status: int(status)}, http.StatusCreated, &res)
	if err != nil {
		return model.Tournament{}, err
	}
	return model.TournamentFromResponse(res), nil
}

// List pages through the tournaments visible to the session's user. The
// page envelope's total passes through untouched; items come back hydrated.
func (s *TournamentService) List(ctx context.Context, sess session.Session, filteredByUser bool, perPage, currentPage int) (model.TournamentPage, error) {
	query := url.Values{}
	query.Set("is_filtered_by_user", strconv.FormatBool(filteredByUser))
	query.Set("skip", strconv.Itoa((currentPage-1)*perPage))
	query.Set("limit", strconv.Itoa(perPage))

	var res model.TournamentListResponse
	err := s.client.do(ctx, sess, http.MethodGet, "/tournaments", query, nil, http.StatusOK, &res)
	if err != nil {
		return model.TournamentPage{}, err
	}

	page := model.TournamentPage{Total: res.Total}
	for _, item := range res.Items {
		page.Items = append(page.Items, model.TournamentFromResponse(item))
	}
	return page, nil
}

func (s *TournamentService) Get(ctx context.Context, sess session.Session, id int) (model.Tournament, error) {
	path := fmt.Sprintf("/tournaments/%d", id)

	var res model.TournamentResponse
	err := s.client.do(ctx, sess, http.MethodGet, path, nil, nil, http.StatusOK, &res)
	if err != nil {
		return model.Tournament{}, err
	}
	return model.TournamentFromResponse(res), nil
}

func (s *TournamentService) Delete(ctx context.Context, sess session.Session, id int) error {
	path := fmt.Sprintf("/tournaments/%d", id)
	return s.client.do(ctx, sess, http.MethodDelete, path, nil, nil, http.StatusOK, nil)
}
