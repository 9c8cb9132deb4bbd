package views

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/ianwestfall/tourneyman-web/internal/model"
	"github.com/ianwestfall/tourneyman-web/internal/utils"
)

// Views are intentionally thin: plain templates wrapped as templ components
// so handlers render everything through the same Render path.

var pageTemplates = template.Must(template.New("pages").Funcs(template.FuncMap{
	"orZero": utils.OrZero[int],
}).Parse(pageHTML))

func page(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return pageTemplates.ExecuteTemplate(w, name, data)
	})
}

type AuthPageData struct {
	Error string
}

func LoginPage(errMsg string) templ.Component {
	return page("login", AuthPageData{Error: errMsg})
}

func RegisterPage(errMsg string) templ.Component {
	return page("register", AuthPageData{Error: errMsg})
}

type IndexData struct {
	LoggedIn bool
	Filtered bool
	Page     int
	PerPage  int
	Total    int
	PrevPage int
	NextPage int
	Items    []model.Tournament
}

func Index(data IndexData) templ.Component {
	return page("index", data)
}

type TournamentDetailData struct {
	Tournament model.Tournament
	Stages     []StageData
	LoggedIn   bool
}

func TournamentDetail(data TournamentDetailData) templ.Component {
	return page("tournament_detail", data)
}

type CreateTournamentData struct {
	StageTypes []model.StageTypeOption
	Error      string
}

func CreateTournamentPage(data CreateTournamentData) templ.Component {
	return page("tournament_create", data)
}

const pageHTML = `
{{define "head"}}<!DOCTYPE html><html><head><title>TourneyMan</title></head><body>{{end}}
{{define "foot"}}</body></html>{{end}}

{{define "login"}}{{template "head" .}}
<h1>Log In</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/login">
  <input type="email" name="email" placeholder="Email" required>
  <input type="password" name="password" placeholder="Password" required>
  <button type="submit">Log In</button>
</form>
<p><a href="/register">Register</a></p>
{{template "foot" .}}{{end}}

{{define "register"}}{{template "head" .}}
<h1>Register</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/register">
  <input type="email" name="email" placeholder="Email" required>
  <input type="password" name="password" placeholder="Password" required>
  <button type="submit">Register</button>
</form>
{{template "foot" .}}{{end}}

{{define "index"}}{{template "head" .}}
<h1>Tournaments</h1>
{{if .LoggedIn}}
<form method="post" action="/logout"><button type="submit">Log Out</button></form>
<p><a href="/tournaments/create">Create tournament</a></p>
<p><a href="/?filtered={{if .Filtered}}false{{else}}true{{end}}">{{if .Filtered}}Show all{{else}}Show mine{{end}}</a></p>
{{else}}
<p><a href="/login">Log in</a></p>
{{end}}
<table>
  <tr><th>Name</th><th>Organization</th><th>Start</th><th>Status</th></tr>
  {{range .Items}}
  <tr>
    <td><a href="/tournaments/{{.ID}}">{{.Name}}</a></td>
    <td>{{.Organization}}</td>
    <td>{{.StartDate.Format "2006-01-02"}}</td>
    <td>{{.StatusLabel}}</td>
  </tr>
  {{end}}
</table>
<p>
  {{.Total}} total
  {{if .PrevPage}} &middot; <a href="/?page={{.PrevPage}}">previous</a>{{end}}
  {{if .NextPage}} &middot; <a href="/?page={{.NextPage}}">next</a>{{end}}
</p>
{{template "foot" .}}{{end}}

{{define "tournament_detail"}}{{template "head" .}}
<h1>{{.Tournament.Name}}</h1>
<p>{{.Tournament.Organization}} &middot; {{.Tournament.StartDate.Format "2006-01-02"}} &middot; {{.Tournament.StatusLabel}}</p>
<h2>Competitors</h2>
<ul>
  {{range .Tournament.Competitors}}<li>{{.DisplayName}} ({{.Organization}})</li>{{end}}
</ul>
<h2>Stages</h2>
{{range .Stages}}
<h3>{{.Label}}</h3>
{{range .Pools}}
<h4>Pool {{.Pool.Ordinal}}</h4>
<table>
  {{range .Matches}}
  <tr>
    <td>{{.Competitor1}}</td><td>{{orZero .Match.Competitor1Score}}</td>
    <td>{{.Competitor2}}</td><td>{{orZero .Match.Competitor2Score}}</td>
  </tr>
  {{end}}
</table>
{{end}}
{{end}}
{{template "foot" .}}{{end}}

{{define "tournament_create"}}{{template "head" .}}
<h1>Create Tournament</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/tournaments">
  <input type="text" name="name" placeholder="Name" required>
  <input type="text" name="organization" placeholder="Organization">
  <input type="date" name="start_date" required>
  <label><input type="checkbox" name="public" value="true"> Public</label>
  <select name="stage_type">
    {{range .StageTypes}}<option value="{{.Value}}">{{.Text}}</option>{{end}}
  </select>
  <button type="submit">Create</button>
</form>
{{template "foot" .}}{{end}}
`
