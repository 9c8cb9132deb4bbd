package model

// Competitor is a single tournament participant. FirstName is nullable on
// the wire; everything else decodes to its zero value when absent.
type Competitor struct {
	ID           int
	FirstName    *string
	LastName     string
	Organization string
	Location     string
}

// DisplayName composes the name shown in lists and brackets. Competitors
// registered with a last name only are displayed by that name alone.
func (c Competitor) DisplayName() string {
	if c.FirstName == nil {
		return c.LastName
	}
	return *c.FirstName + " " + c.LastName
}

type CompetitorResponse struct {
	ID           int     `json:"id"`
	FirstName    *string `json:"first_name"`
	LastName     string  `json:"last_name"`
	Organization string  `json:"organization"`
	Location     string  `json:"location"`
}

type CompetitorCreateRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     string  `json:"last_name"`
	Organization string  `json:"organization"`
	Location     string  `json:"location"`
}

// CreateRequestBody projects the competitor onto the fields the backend
// accepts on create and update. The id is server-assigned and excluded.
func (c Competitor) CreateRequestBody() CompetitorCreateRequest {
	return CompetitorCreateRequest{
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Organization: c.Organization,
		Location:     c.Location,
	}
}

func CompetitorFromResponse(res CompetitorResponse) Competitor {
	return Competitor{
		ID:           res.ID,
		FirstName:    res.FirstName,
		LastName:     res.LastName,
		Organization: res.Organization,
		Location:     res.Location,
	}
}
