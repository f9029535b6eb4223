package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cloudbridge-lab/minwon/pkg/domain/interfaces"
	"github.com/cloudbridge-lab/minwon/pkg/domain/model"
	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
	"github.com/cloudbridge-lab/minwon/pkg/utils/safe"
)

// ErrNotFound is returned when the backend has no record for the requested
// id.
var ErrNotFound = goerr.New("resource not found")

// Client talks to the remote civil-petition backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.Backend = (*Client)(nil)

type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

func New(baseURL string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		return nil, goerr.New("backend base URL is empty")
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) GetPetition(ctx context.Context, id types.ServiceID) (*model.CivilPetition, error) {
	var petition model.CivilPetition
	path := "/api/civil-petitions/" + url.PathEscape(id.String())
	if err := c.getJSON(ctx, path, nil, &petition); err != nil {
		return nil, err
	}
	return &petition, nil
}

func (c *Client) SearchPetitions(ctx context.Context, query string) ([]*model.CivilPetition, error) {
	petitions := []*model.CivilPetition{}
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if err := c.getJSON(ctx, "/civil-petitions", params, &petitions); err != nil {
		return nil, err
	}
	return petitions, nil
}

func (c *Client) ListCases(ctx context.Context, memberID types.MemberID) ([]model.CaseRecord, error) {
	records := []model.CaseRecord{}
	params := url.Values{"memberId": {memberID.String()}}
	if err := c.getJSON(ctx, "/api/cases", params, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) UpsertCase(ctx context.Context, memberID types.MemberID, input interfaces.CaseUpsert) (*model.CaseRecord, error) {
	body := map[string]any{
		"cpInfoId": input.ServiceID.String(),
	}
	if input.Status != "" {
		body["status"] = input.Status.String()
	}
	if input.Checklist != nil {
		body["checklist"] = model.EncodeChecklist(input.Checklist)
	}

	var record model.CaseRecord
	params := url.Values{"memberId": {memberID.String()}}
	if err := c.postJSON(ctx, "/api/cases", params, body, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) ListOffices(ctx context.Context) ([]*model.Office, error) {
	offices := []*model.Office{}
	if err := c.getJSON(ctx, "/offices", nil, &offices); err != nil {
		return nil, err
	}
	return offices, nil
}

func (c *Client) NearbyOffices(ctx context.Context, lat, lng, radiusKm float64) ([]*model.Office, error) {
	offices := []*model.Office{}
	params := url.Values{
		"lat":      {fmt.Sprintf("%f", lat)},
		"lng":      {fmt.Sprintf("%f", lng)},
		"radiusKm": {fmt.Sprintf("%f", radiusKm)},
	}
	if err := c.getJSON(ctx, "/offices/nearby", params, &offices); err != nil {
		return nil, err
	}
	return offices, nil
}

func (c *Client) ListMembers(ctx context.Context) ([]*model.Member, error) {
	members := []*model.Member{}
	if err := c.getJSON(ctx, "/api/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, params), nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build request", goerr.V("path", path))
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, params url.Values, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return goerr.Wrap(err, "failed to encode request body", goerr.V("path", path))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, params), bytes.NewReader(data))
	if err != nil {
		return goerr.Wrap(err, "failed to build request", goerr.V("path", path))
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) endpoint(path string, params url.Values) string {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	return endpoint
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "backend request failed", goerr.V("url", req.URL.String()))
	}
	defer safe.Close(req.Context(), resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return goerr.Wrap(ErrNotFound, "backend returned 404", goerr.V("url", req.URL.String()))
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return goerr.New("backend returned error status",
			goerr.V("url", req.URL.String()),
			goerr.V("status", resp.StatusCode),
			goerr.V("message", errorMessage(resp.Body)),
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode backend response", goerr.V("url", req.URL.String()))
	}
	return nil
}

// errorMessage extracts the {"message": ...} field from an error response
// body, falling back to the raw body.
func errorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var wire struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &wire); err == nil && wire.Message != "" {
		return wire.Message
	}
	return strings.TrimSpace(string(data))
}
