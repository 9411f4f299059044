package intigriti

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	// DefaultLimit is the page size used when a caller does not pick one.
	DefaultLimit = 20
	// MaxLimit is the largest page the API serves. Larger limits are clamped.
	MaxLimit = 500
)

// ProgramsQuery filters GET v1/programs. Nil filters are not sent.
type ProgramsQuery struct {
	StatusID  *int
	TypeID    *int
	Following *bool
	Limit     int
	Offset    int
}

func (q ProgramsQuery) values() url.Values {
	v := pageValues(q.Limit, q.Offset)
	if q.StatusID != nil {
		v.Set("statusId", strconv.Itoa(*q.StatusID))
	}
	if q.TypeID != nil {
		v.Set("typeId", strconv.Itoa(*q.TypeID))
	}
	if q.Following != nil {
		v.Set("following", strconv.FormatBool(*q.Following))
	}
	return v
}

// ActivitiesQuery filters GET v1/programs/activities. Nil filters are not sent.
type ActivitiesQuery struct {
	// CreatedSince is a unix timestamp.
	CreatedSince *int64
	Following    *bool
	Limit        int
	Offset       int
}

func (q ActivitiesQuery) values() url.Values {
	v := pageValues(q.Limit, q.Offset)
	if q.CreatedSince != nil {
		v.Set("createdSince", strconv.FormatInt(*q.CreatedSince, 10))
	}
	if q.Following != nil {
		v.Set("following", strconv.FormatBool(*q.Following))
	}
	return v
}

func pageValues(limit, offset int) url.Values {
	v := url.Values{}
	v.Set("limit", strconv.Itoa(ClampLimit(limit)))
	v.Set("offset", strconv.Itoa(offset))
	return v
}

// ClampLimit caps limit at MaxLimit.
func ClampLimit(limit int) int {
	return min(limit, MaxLimit)
}

// GetPrograms lists the programs the researcher has access to.
func (c *Client) GetPrograms(ctx context.Context, q ProgramsQuery) (any, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Endpoint: "v1/programs", Query: q.values()})
}

// GetProgramDetails returns one program.
func (c *Client) GetProgramDetails(ctx context.Context, programID string) (any, error) {
	return c.Do(ctx, Request{
		Method:   http.MethodGet,
		Endpoint: fmt.Sprintf("v1/programs/%s", url.PathEscape(programID)),
	})
}

// GetProgramActivities lists program activity across all accessible programs.
func (c *Client) GetProgramActivities(ctx context.Context, q ActivitiesQuery) (any, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Endpoint: "v1/programs/activities", Query: q.values()})
}

// GetProgramDomains returns the scope of a program at a domains version.
func (c *Client) GetProgramDomains(ctx context.Context, programID, versionID string) (any, error) {
	return c.Do(ctx, Request{
		Method:   http.MethodGet,
		Endpoint: fmt.Sprintf("v1/programs/%s/domains/%s", url.PathEscape(programID), url.PathEscape(versionID)),
	})
}

// GetProgramRulesOfEngagement returns a program's rules of engagement at a version.
func (c *Client) GetProgramRulesOfEngagement(ctx context.Context, programID, versionID string) (any, error) {
	return c.Do(ctx, Request{
		Method:   http.MethodGet,
		Endpoint: fmt.Sprintf("v1/programs/%s/rules-of-engagements/%s", url.PathEscape(programID), url.PathEscape(versionID)),
	})
}

// CallEndpoint forwards an arbitrary method and path, for endpoints that have
// no typed method yet. params become the query string and body, when non-nil,
// the JSON request body.
func (c *Client) CallEndpoint(ctx context.Context, method, endpoint string, params map[string]any, body any) (any, error) {
	return c.Do(ctx, Request{
		Method:   method,
		Endpoint: endpoint,
		Query:    EncodeParams(params),
		Body:     body,
	})
}
