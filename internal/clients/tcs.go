// Package clients contains the outbound HTTP clients for the two upstream
// collaborators: the trainee core service (TCS), which owns programme data,
// and the identity provider that backs the admin directory.
//
// Both clients are thin JSON-over-HTTP wrappers with typed response models.
// They never share state with the store; each request stands alone.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// TraineeCore carries the supplementary attributes owned by TCS for one
// doctor. It is fetched per request and never persisted locally.
type TraineeCore struct {
	GMCReferenceNumber      string     `json:"gmcReferenceNumber"`
	CurriculumEndDate       *time.Time `json:"curriculumEndDate,omitempty"`
	ProgrammeName           string     `json:"programmeName"`
	ProgrammeMembershipType string     `json:"programmeMembershipType"`
	CurrentGrade            string     `json:"currentGrade"`
}

// TCSClient handles communication with the trainee core service.
type TCSClient struct {
	baseURL string
	client  *http.Client
}

// NewTCSClient creates a TCS client rooted at baseURL. The timeout applies
// per request; there is no retry policy, a failed call simply degrades the
// merged view.
func NewTCSClient(baseURL string, timeout time.Duration) *TCSClient {
	return &TCSClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchByGMCIDs issues one batched lookup for the given GMC numbers and
// returns a mapping from GMC number to its supplementary data. Identifiers
// the upstream does not know are simply absent from the result.
//
// This call is best-effort by design: transport errors, non-2xx statuses,
// and undecodable bodies are logged and collapsed into an empty map, so the
// caller never has to distinguish "no matches" from "TCS is down". An empty
// id list short-circuits without any outbound call.
func (c *TCSClient) FetchByGMCIDs(ctx context.Context, gmcIDs []string) map[string]TraineeCore {
	if len(gmcIDs) == 0 {
		return map[string]TraineeCore{}
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, strings.Join(gmcIDs, ","))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("tcs: building request failed")
		return map[string]TraineeCore{}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("tcs: request failed")
		return map[string]TraineeCore{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Str("url", url).Msg("tcs: unexpected status")
		return map[string]TraineeCore{}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("tcs: reading response failed")
		return map[string]TraineeCore{}
	}

	out := map[string]TraineeCore{}
	if err := json.Unmarshal(body, &out); err != nil {
		log.Error().Err(err).Str("url", url).Msg("tcs: decoding response failed")
		return map[string]TraineeCore{}
	}
	return out
}
