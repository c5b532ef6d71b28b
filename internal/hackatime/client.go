package hackatime

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the Hackatime stats API. Names "<<LAST_PROJECT>>" and
// "Other" are API placeholders and get dropped; duplicate names in one
// response are summed.
type Client struct {
	baseURL    string
	startDate  string
	bypassKey  string
	httpClient *http.Client
}

func NewClient(baseURL, startDate, bypassKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		startDate:  startDate,
		bypassKey:  bypassKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchProjectStats returns aggregated seconds per project name for one
// slack user.
func (c *Client) FetchProjectStats(slackID string) (map[string]int, error) {
	endpoint := fmt.Sprintf("%s/api/v1/users/%s/stats", c.baseURL, url.PathEscape(slackID))

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}

	q := req.URL.Query()
	q.Set("features", "projects")
	q.Set("start_date", c.startDate)
	req.URL.RawQuery = q.Encode()

	if c.bypassKey != "" {
		req.Header.Set("Rack-Attack-Bypass", c.bypassKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("hackatime: status %d: %s", resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var stats statsResponse
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	if stats.Data.Status != "ok" {
		return nil, fmt.Errorf("hackatime: non-ok status %q", stats.Data.Status)
	}

	aggregated := make(map[string]int)
	for _, p := range stats.Data.Projects {
		if p.Name == "" || p.Name == "<<LAST_PROJECT>>" || p.Name == "Other" {
			continue
		}
		aggregated[p.Name] += int(p.TotalSeconds)
	}
	return aggregated, nil
}
