package main

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/ianwestfall/tourneyman-web/internal/api"
	"github.com/ianwestfall/tourneyman-web/internal/auth"
	"github.com/ianwestfall/tourneyman-web/internal/config"
	"github.com/ianwestfall/tourneyman-web/internal/httputil"
	"github.com/ianwestfall/tourneyman-web/internal/middleware"
	"github.com/ianwestfall/tourneyman-web/internal/model"
	"github.com/ianwestfall/tourneyman-web/internal/session"
	"github.com/ianwestfall/tourneyman-web/internal/utils"
	"github.com/ianwestfall/tourneyman-web/views"
)

const tournamentsPerPage = 10

func newRouter(cfg config.Config, sessionManager *scs.SessionManager) http.Handler {
	r := chi.NewRouter()

	sessions := session.NewStore(sessionManager)
	client := api.New(api.Config{BaseURL: cfg.APIURL})
	tournaments := api.NewTournamentService(client)
	stages := api.NewStageService(client)
	competitors := api.NewCompetitorService(client)
	gateway := auth.NewGateway(cfg.APIURL, nil, sessions)

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.LoadSession(sessions))

	r.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		if views.GetSession(r.Context()).LoggedIn {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		views.Render(w, r, views.LoginPage(""))
	})

	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			httputil.BadRequest(w, "Invalid form data", err)
			return
		}

		user := &model.User{
			Email:    r.Form.Get("email"),
			Password: r.Form.Get("password"),
		}

		if _, err := gateway.Login(r.Context(), user); err != nil {
			if errors.Is(err, auth.ErrNilUser) || errors.Is(err, auth.ErrMissingCredentials) {
				w.WriteHeader(http.StatusBadRequest)
				views.Render(w, r, views.LoginPage(err.Error()))
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
			views.Render(w, r, views.LoginPage("Login failed, check your credentials"))
			return
		}

		http.Redirect(w, r, "/", http.StatusFound)
	})

	r.Get("/register", func(w http.ResponseWriter, r *http.Request) {
		views.Render(w, r, views.RegisterPage(""))
	})

	r.Post("/register", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			httputil.BadRequest(w, "Invalid form data", err)
			return
		}

		user := &model.User{
			Email:    r.Form.Get("email"),
			Password: r.Form.Get("password"),
		}

		if err := gateway.Register(r.Context(), user); err != nil {
			if errors.Is(err, auth.ErrNilUser) || errors.Is(err, auth.ErrMissingCredentials) {
				w.WriteHeader(http.StatusBadRequest)
				views.Render(w, r, views.RegisterPage(err.Error()))
				return
			}
			w.WriteHeader(http.StatusBadGateway)
			views.Render(w, r, views.RegisterPage("Registration failed"))
			return
		}

		http.Redirect(w, r, "/login", http.StatusFound)
	})

	r.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
		gateway.Logout(r.Context())
		http.Redirect(w, r, "/login", http.StatusFound)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		sess := views.GetSession(r.Context())

		filtered := r.URL.Query().Get("filtered") == "true"
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}

		result, err := tournaments.List(r.Context(), sess, filtered, tournamentsPerPage, page)
		if err != nil {
			httputil.UpstreamError(w, "Failed to list tournaments", err)
			return
		}

		data := views.IndexData{
			LoggedIn: sess.LoggedIn,
			Filtered: filtered,
			Page:     page,
			PerPage:  tournamentsPerPage,
			Total:    result.Total,
			Items:    result.Items,
		}
		if page > 1 {
			data.PrevPage = page - 1
		}
		if page*tournamentsPerPage < result.Total {
			data.NextPage = page + 1
		}

		views.Render(w, r, views.Index(data))
	})

	r.Get("/tournaments/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httputil.BadRequest(w, "Invalid tournament id", err)
			return
		}

		sess := views.GetSession(r.Context())
		tournament, err := tournaments.Get(r.Context(), sess, id)
		if err != nil {
			renderAPIError(w, "Failed to get tournament", err)
			return
		}

		views.Render(w, r, views.TournamentDetail(views.TournamentDetailData{
			Tournament: tournament,
			Stages:     views.PrepareStageData(tournament.Stages),
			LoggedIn:   sess.LoggedIn,
		}))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/tournaments/create", func(w http.ResponseWriter, r *http.Request) {
			views.Render(w, r, views.CreateTournamentPage(views.CreateTournamentData{
				StageTypes: model.StageTypes(),
			}))
		})

		r.Post("/tournaments", func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}

			startDate, err := time.Parse("2006-01-02", r.Form.Get("start_date"))
			if err != nil {
				httputil.BadRequest(w, "Invalid start date", err)
				return
			}

			sess := views.GetSession(r.Context())
			tournament := model.Tournament{
				Name:         r.Form.Get("name"),
				Organization: r.Form.Get("organization"),
				StartDate:    startDate,
				Public:       r.Form.Get("public") == "true",
			}

			created, err := tournaments.Create(r.Context(), sess, tournament)
			if err != nil {
				renderAPIError(w, "Failed to create tournament", err)
				return
			}

			if typeStr := r.Form.Get("stage_type"); typeStr != "" {
				stageType, err := strconv.Atoi(typeStr)
				if err != nil {
					httputil.BadRequest(w, "Invalid stage type", err)
					return
				}
				stage := model.Stage{Type: model.StageType(stageType)}
				if _, err := stages.CreateStages(r.Context(), sess, created, []model.Stage{stage}); err != nil {
					renderAPIError(w, "Failed to create stage", err)
					return
				}
			}

			http.Redirect(w, r, "/tournaments/"+strconv.Itoa(created.ID), http.StatusFound)
		})

		r.Post("/tournaments/{id}/edit", func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.Atoi(chi.URLParam(r, "id"))
			if err != nil {
				httputil.BadRequest(w, "Invalid tournament id", err)
				return
			}
			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}

			startDate, err := time.Parse("2006-01-02", r.Form.Get("start_date"))
			if err != nil {
				httputil.BadRequest(w, "Invalid start date", err)
				return
			}

			sess := views.GetSession(r.Context())
			tournament := model.Tournament{
				ID:           id,
				Name:         r.Form.Get("name"),
				Organization: r.Form.Get("organization"),
				StartDate:    startDate,
				Public:       r.Form.Get("public") == "true",
			}

			if _, err := tournaments.Update(r.Context(), sess, tournament); err != nil {
				renderAPIError(w, "Failed to update tournament", err)
				return
			}

			http.Redirect(w, r, "/tournaments/"+strconv.Itoa(id), http.StatusFound)
		})

		r.Post("/tournaments/{id}/status", func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.Atoi(chi.URLParam(r, "id"))
			if err != nil {
				httputil.BadRequest(w, "Invalid tournament id", err)
				return
			}
			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}
			status, err := strconv.Atoi(r.Form.Get("status"))
			if err != nil {
				httputil.BadRequest(w, "Invalid status", err)
				return
			}

			sess := views.GetSession(r.Context())
			tournament := model.Tournament{ID: id}
			if _, err := tournaments.UpdateStatus(r.Context(), sess, tournament, model.TournamentStatus(status)); err != nil {
				renderAPIError(w, "Failed to update tournament status", err)
				return
			}

			http.Redirect(w, r, "/tournaments/"+strconv.Itoa(id), http.StatusFound)
		})

		r.Post("/tournaments/{id}/competitors", func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.Atoi(chi.URLParam(r, "id"))
			if err != nil {
				httputil.BadRequest(w, "Invalid tournament id", err)
				return
			}
			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}

			batch := parseCompetitorForm(r.Form)
			if len(batch) == 0 {
				httputil.BadRequest(w, "No competitors submitted", nil)
				return
			}

			sess := views.GetSession(r.Context())
			tournament := model.Tournament{ID: id}
			if _, err := competitors.CreateCompetitors(r.Context(), sess, tournament, batch); err != nil {
				renderAPIError(w, "Failed to create competitors", err)
				return
			}

			http.Redirect(w, r, "/tournaments/"+strconv.Itoa(id), http.StatusFound)
		})

		r.Post("/tournaments/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.Atoi(chi.URLParam(r, "id"))
			if err != nil {
				httputil.BadRequest(w, "Invalid tournament id", err)
				return
			}

			sess := views.GetSession(r.Context())
			if err := tournaments.Delete(r.Context(), sess, id); err != nil {
				renderAPIError(w, "Failed to delete tournament", err)
				return
			}

			http.Redirect(w, r, "/", http.StatusFound)
		})
	})

	return r
}

// parseCompetitorForm collects indexed rows (last_name_0, first_name_0, ...)
// in index order. Rows without a last name are skipped.
func parseCompetitorForm(form map[string][]string) []model.Competitor {
	var indices []int
	for key := range form {
		if strings.HasPrefix(key, "last_name_") {
			if index, err := strconv.Atoi(strings.TrimPrefix(key, "last_name_")); err == nil {
				indices = append(indices, index)
			}
		}
	}
	sort.Ints(indices)

	get := func(prefix string, index int) string {
		values := form[prefix+strconv.Itoa(index)]
		if len(values) == 0 {
			return ""
		}
		return strings.TrimSpace(values[0])
	}

	var batch []model.Competitor
	for _, index := range indices {
		lastName := get("last_name_", index)
		if lastName == "" {
			continue
		}
		batch = append(batch, model.Competitor{
			FirstName:    utils.StringOrNil(get("first_name_", index)),
			LastName:     lastName,
			Organization: get("organization_", index),
			Location:     get("location_", index),
		})
	}
	return batch
}

// renderAPIError maps backend failures onto responses: a 404 from the
// backend stays a 404, anything else is an upstream failure.
func renderAPIError(w http.ResponseWriter, msg string, err error) {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) && statusErr.Got == http.StatusNotFound {
		httputil.NotFound(w, msg, err)
		return
	}
	httputil.UpstreamError(w, msg, err)
}
