package upstream

import (
	"errors"
	"strings"

	goaway "github.com/TwiN/go-away"
)

// ErrUpdater wraps any network, decoding, or upstream-API failure the
// harvester encounters; callers log it and continue the updater loop.
var ErrUpdater = errors.New("upstream: updater error")

// expansionsFilename is the name the harvester looks for among a pull
// request's changed files.
const expansionsFilename = "expansions.txt"

// Harvester turns open pull requests on the upstream repository into
// filtered candidate expansion lines.
type Harvester struct {
	client *Client
}

// NewHarvester constructs a Harvester over client.
func NewHarvester(client *Client) *Harvester {
	return &Harvester{client: client}
}

// UnusedOpenPR returns the first open pull-request id not present in used,
// or "" with ok=false if every open PR has already been used.
func (h *Harvester) UnusedOpenPR(used map[string]struct{}) (id string, ok bool, err error) {
	openIDs, err := h.client.OpenPRIDs()
	if err != nil {
		return "", false, errors.Join(ErrUpdater, err)
	}

	for _, candidate := range openIDs {
		if _, seen := used[candidate]; !seen {
			return candidate, true, nil
		}
	}
	return "", false, nil
}

// ExpansionsOf fetches the expansions.txt file changed by prID, if any, and
// returns its cleaned lines: comments stripped, lines classified
// inappropriate by the profanity filter dropped, and each remaining line
// trimmed. ok is false when the pull request did not touch expansions.txt.
func (h *Harvester) ExpansionsOf(prID string) (lines []string, ok bool, err error) {
	fileURLs, err := h.client.PRFileURLs(h.client.PRURL(prID))
	if err != nil {
		return nil, false, errors.Join(ErrUpdater, err)
	}

	rawURL, present := fileURLs[expansionsFilename]
	if !present {
		return nil, false, nil
	}

	text, err := h.client.FetchText(rawURL)
	if err != nil {
		return nil, false, errors.Join(ErrUpdater, err)
	}

	return cleanExpansionsText(text), true, nil
}

func cleanExpansionsText(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if goaway.IsProfane(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}
