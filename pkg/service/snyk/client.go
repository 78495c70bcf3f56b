package snyk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vulnreport/pkg/domain/model"
	"github.com/secmon-lab/vulnreport/pkg/domain/types"
)

const (
	defaultBaseURL = "https://api.snyk.io"
	apiVersion     = "2024-10-15"
	pageLimit      = "100"

	// cursorParam is the query parameter Snyk embeds in links.next
	cursorParam = "starting_after"
)

// Client fetches projects and open issues from the Snyk REST API. All
// list endpoints are consumed through a shared cursor-pagination loop.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the API base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a new Snyk API client
func New(token string, opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// FetchProjects retrieves all projects of the organization, following
// pagination to the end
func (c *Client) FetchProjects(ctx context.Context, orgID types.OrgID) ([]model.Project, error) {
	endpoint := fmt.Sprintf("/rest/orgs/%s/projects", orgID)
	records, err := c.fetchAll(ctx, endpoint, url.Values{})
	if err != nil {
		return nil, err
	}

	projects := make([]model.Project, 0, len(records))
	for _, rec := range records {
		projects = append(projects, model.Project{
			ID:   types.ProjectID(rec.ID),
			Name: rec.Attributes.Name,
		})
	}
	return projects, nil
}

// FetchIssues retrieves all open issues of the organization with
// critical, high or medium severity, following pagination to the end
func (c *Client) FetchIssues(ctx context.Context, orgID types.OrgID) ([]model.Issue, error) {
	endpoint := fmt.Sprintf("/rest/orgs/%s/issues", orgID)
	params := url.Values{
		"status":                   []string{"open"},
		"effective_severity_level": []string{"critical,high,medium"},
	}
	records, err := c.fetchAll(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	issues := make([]model.Issue, 0, len(records))
	for _, rec := range records {
		var scanItemID types.ProjectID
		if rel := rec.Relationships.ScanItem; rel != nil {
			scanItemID = types.ProjectID(rel.Data.ID)
		}
		issues = append(issues, model.Issue{
			ScanItemID: scanItemID,
			Severity:   model.ParseSeverity(rec.Attributes.EffectiveSeverityLevel),
		})
	}
	return issues, nil
}

// fetchAll walks a paginated list endpoint, accumulating every page's
// data array in response order. The loop ends only when a response omits
// links.next; there is no page cap.
func (c *Client) fetchAll(ctx context.Context, endpoint string, baseParams url.Values) ([]resource, error) {
	params := url.Values{}
	for key, values := range baseParams {
		params[key] = values
	}
	params.Set("version", apiVersion)
	params.Set("limit", pageLimit)

	var records []resource
	for {
		page, err := c.fetchPage(ctx, endpoint, params)
		if err != nil {
			return nil, err
		}
		records = append(records, page.Data...)

		if page.Links.Next == "" {
			return records, nil
		}
		cursor, err := extractCursor(page.Links.Next)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to extract pagination cursor",
				goerr.T(types.ErrTagFetch),
				goerr.V("endpoint", endpoint),
				goerr.V("next", page.Links.Next))
		}
		params.Set(cursorParam, cursor)
	}
}

func (c *Client) fetchPage(ctx context.Context, endpoint string, params url.Values) (*listResponse, error) {
	reqURL := c.baseURL + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request",
			goerr.T(types.ErrTagFetch),
			goerr.V("endpoint", endpoint))
	}
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Accept", "application/vnd.api+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call API",
			goerr.T(types.ErrTagFetch),
			goerr.V("endpoint", endpoint))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body",
			goerr.T(types.ErrTagFetch),
			goerr.V("endpoint", endpoint))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.New("API returned non-2xx status",
			goerr.T(types.ErrTagFetch),
			goerr.V("endpoint", endpoint),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)))
	}

	var page listResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, goerr.Wrap(err, "failed to parse API response",
			goerr.T(types.ErrTagFetch),
			goerr.V("endpoint", endpoint))
	}
	return &page, nil
}

// extractCursor pulls the cursor token out of a links.next URL. Snyk
// returns next links as relative paths with a query string.
func extractCursor(next string) (string, error) {
	parsed, err := url.Parse(next)
	if err != nil {
		return "", err
	}
	cursor := parsed.Query().Get(cursorParam)
	if cursor == "" {
		return "", fmt.Errorf("next link has no %s parameter: %s", cursorParam, next)
	}
	return cursor, nil
}
