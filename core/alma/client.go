package alma

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"alma-utilities/core/reconcile"

	"go.uber.org/zap"
)

// Client talks to the Alma API gateway. The credential and base URL are
// fixed at construction; the client holds no other mutable state and is
// safe to reuse across calls within a run.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates an Alma API client from the configuration.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	d := time.Duration(timeout) * time.Second

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		timeout: d,
		http:    &http.Client{Timeout: d},
		logger:  logger,
	}
}

// searchResponse is the subset of the Primo Search payload we consume.
type searchResponse struct {
	Docs []searchDoc `json:"docs"`
}

type searchDoc struct {
	PNX struct {
		Control pnxControl `json:"control"`
	} `json:"pnx"`
}

// pnxControl is the control section of a PNX record. The MMS ID usually
// lives in sourcerecordid, with recordid as a fallback.
type pnxControl struct {
	SourceRecordID []string `json:"sourcerecordid"`
	RecordID       []string `json:"recordid"`
}

// Resolve queries Primo Search for a record whose dc:identifier contains the
// originating system id and returns the three-way lookup result.
//
// Exactly one outbound request is issued per call. Every failure mode
// (timeout, transport error, unexpected status, malformed body, more than
// one match) is classified into the Resolution; nothing propagates past
// this boundary. The service answers HTTP 400 when nothing matches, so
// that status maps to not-found rather than error.
func (c *Client) Resolve(ctx context.Context, originatingSystemID string) reconcile.Resolution {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("dc:identifier,contains,%s", originatingSystemID))
	// limit=2 so a second match is observable: the engine never picks among
	// multiple candidates.
	params.Set("limit", "2")
	params.Set("offset", "0")

	endpoint := c.baseURL + "/primo/v1/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errorResolution(fmt.Sprintf("failed to build request: %v", err))
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		if urlErr, ok := err.(*url.Error); ok && urlErr.Timeout() {
			return errorResolution(fmt.Sprintf("lookup timed out after %s", c.timeout))
		}
		return errorResolution(fmt.Sprintf("request failed: %v", err))
	}
	defer resp.Body.Close()

	// The search endpoint reports "no results" as a 400.
	if resp.StatusCode == http.StatusBadRequest {
		return reconcile.Resolution{Status: reconcile.StatusNotFound}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorResolution(fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return errorResolution(fmt.Sprintf("malformed response body: %v", err))
	}

	switch {
	case len(payload.Docs) == 0:
		return reconcile.Resolution{Status: reconcile.StatusNotFound}
	case len(payload.Docs) > 1:
		return errorResolution(fmt.Sprintf("ambiguous match: %d records returned", len(payload.Docs)))
	}

	mmsID := recordID(payload.Docs[0].PNX.Control)
	if mmsID == "" {
		return errorResolution("response is missing a record id")
	}

	c.logger.Debug("Resolved MMS ID",
		zap.String("originating_system_id", originatingSystemID),
		zap.String("mms_id", mmsID),
	)
	return reconcile.Resolution{Status: reconcile.StatusFound, MMSID: mmsID}
}

// recordID extracts the MMS ID from a PNX control section.
func recordID(control pnxControl) string {
	if len(control.SourceRecordID) > 0 && control.SourceRecordID[0] != "" {
		return control.SourceRecordID[0]
	}
	if len(control.RecordID) > 0 {
		return control.RecordID[0]
	}
	return ""
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "apikey "+c.apiKey)
	req.Header.Set("Accept", "application/json")
}

func errorResolution(detail string) reconcile.Resolution {
	return reconcile.Resolution{Status: reconcile.StatusError, Detail: detail}
}

// get issues an authorized GET and decodes the JSON body into out.
// Used by the bibs endpoints, which report failures as plain errors.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed response body: %w", err)
	}
	return nil
}
