// Package upstream implements the GitHub-style REST client used to poll
// open pull requests on the expansions repository, and the harvester that
// turns a pull request into a filtered list of candidate expansions.
package upstream

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

// Client is a blocking HTTP client addressed at a base repository URL
// (e.g. "https://api.github.com/repos/npm/npm-expansions"), carrying a
// fixed User-Agent on every call.
type Client struct {
	http      *retryablehttp.Client
	userAgent string
	base      string
}

// NewClient constructs a Client. Retries and backoff are handled by
// retryablehttp's defaults; the retrying client is held in the unexported
// http field, so only code inside this package can change its tuning.
func NewClient(base, userAgent string) *Client {
	rc := retryablehttp.NewClient()
	rc.Logger = nil

	return &Client{http: rc, userAgent: userAgent, base: base}
}

func (c *Client) get(url string) ([]byte, error) {
	req, err := retryablehttp.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upstream: %s returned status %d", url, resp.StatusCode)
	}
	return body, nil
}

// OpenPRIDs fetches "<base>/pulls?state=open" and returns the stringified
// "number" field of each element, in array order.
func (c *Client) OpenPRIDs() ([]string, error) {
	body, err := c.get(c.base + "/pulls?state=open")
	if err != nil {
		return nil, err
	}

	var raw []struct {
		Number json.Number `json:"number"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("upstream: decoding open PR list: %w", err)
	}

	ids := make([]string, 0, len(raw))
	for _, pr := range raw {
		ids = append(ids, pr.Number.String())
	}
	return ids, nil
}

// PRFileURLs fetches "<prURL>/files" and returns a mapping from filename to
// raw-content URL. Entries missing either field are dropped.
func (c *Client) PRFileURLs(prURL string) (map[string]string, error) {
	body, err := c.get(prURL + "/files")
	if err != nil {
		return nil, err
	}

	var raw []struct {
		Filename *string `json:"filename"`
		RawURL   *string `json:"raw_url"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("upstream: decoding PR files: %w", err)
	}

	out := make(map[string]string)
	for _, f := range raw {
		if f.Filename != nil && f.RawURL != nil {
			out[*f.Filename] = *f.RawURL
		}
	}
	return out, nil
}

// FetchText fetches url and decodes its body as UTF-8 text.
func (c *Client) FetchText(url string) (string, error) {
	body, err := c.get(url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// PRURL builds the "<base>/pulls/<id>" URL for a given pull-request id.
func (c *Client) PRURL(prID string) string {
	return c.base + "/pulls/" + prID
}
