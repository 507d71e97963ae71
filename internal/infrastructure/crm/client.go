package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"nexupay/internal/domain/entities"
	"nexupay/internal/infrastructure/metrics"
)

const defaultRequestTimeout = 15 * time.Second

// RequestResult is the settlement of a single vendor API request. The client
// never returns a Go error and never panics: transport failures, non-2xx
// responses and body-read failures all land in Success/Error, with the
// vendor's raw error body preserved when one came back.
type RequestResult struct {
	Success    bool
	StatusCode int
	Data       json.RawMessage
	Error      string
}

// restClient is the shared HTTP helper injected into every vendor adapter.
// Auth stays out of it on purpose: each adapter attaches its own mechanism
// (bearer header, Zoho-oauthtoken scheme, api_token query param) per request.
type restClient struct {
	vendor  entities.CRMType
	http    *http.Client
	metrics *metrics.Metrics
}

func newRESTClient(vendor entities.CRMType, timeout time.Duration, m *metrics.Metrics) *restClient {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &restClient{
		vendor:  vendor,
		http:    &http.Client{Timeout: timeout},
		metrics: m,
	}
}

// do issues one vendor API request. payload (when non-nil) is sent as JSON;
// params are merged into the URL query; headers are set verbatim.
func (c *restClient) do(ctx context.Context, method, rawURL string, headers map[string]string, params url.Values, payload interface{}) RequestResult {
	start := time.Now()
	res := c.doOnce(ctx, method, rawURL, headers, params, payload)
	c.observe(res, time.Since(start))
	return res
}

func (c *restClient) doOnce(ctx context.Context, method, rawURL string, headers map[string]string, params url.Values, payload interface{}) RequestResult {
	u, err := url.Parse(rawURL)
	if err != nil {
		return RequestResult{Error: fmt.Sprintf("invalid url: %v", err)}
	}
	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return RequestResult{Error: fmt.Sprintf("payload marshal: %v", err)}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return RequestResult{Error: fmt.Sprintf("build request: %v", err)}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[crm][%s] request failed method=%s url=%s err=%v", c.vendor, method, u.Path, err)
		return RequestResult{Error: fmt.Sprintf("request: %v", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[crm][%s] response read failed method=%s url=%s err=%v", c.vendor, method, u.Path, err)
		return RequestResult{StatusCode: resp.StatusCode, Error: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[crm][%s] non-2xx method=%s url=%s status=%d body_len=%d", c.vendor, method, u.Path, resp.StatusCode, len(raw))
		return RequestResult{
			StatusCode: resp.StatusCode,
			Data:       json.RawMessage(raw),
			Error:      fmt.Sprintf("vendor returned status %d", resp.StatusCode),
		}
	}

	return RequestResult{Success: true, StatusCode: resp.StatusCode, Data: json.RawMessage(raw)}
}

func (c *restClient) observe(res RequestResult, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	status := "error"
	if res.Success {
		status = "ok"
	} else if res.StatusCode > 0 {
		status = strconv.Itoa(res.StatusCode)
	}
	c.metrics.CRMRequests.WithLabelValues(string(c.vendor), status).Inc()
	c.metrics.CRMLatency.WithLabelValues(string(c.vendor), status).Observe(elapsed.Seconds())
}

// syncContactsConcurrently runs one syncFn per contact with settle-all
// semantics: every item is attempted, no item's failure cancels another, and
// each outcome lands in its input slot. Items sharing a natural key race
// against each other; the final vendor state for duplicates is last-write-wins.
func syncContactsConcurrently(ctx context.Context, contacts []entities.Contact, syncFn func(context.Context, entities.Contact) entities.ContactSyncResult) entities.BatchSyncResult {
	results := make([]entities.ContactSyncResult, len(contacts))

	var wg sync.WaitGroup
	for i, contact := range contacts {
		wg.Add(1)
		go func(i int, contact entities.Contact) {
			defer wg.Done()
			results[i] = syncFn(ctx, contact)
		}(i, contact)
	}
	wg.Wait()

	out := entities.BatchSyncResult{Total: len(contacts), Results: results}
	for _, r := range results {
		if r.Success {
			out.Successful++
		} else {
			out.Failed++
		}
	}
	return out
}

func recordSyncSettlement(m *metrics.Metrics, vendor entities.CRMType, res entities.ContactSyncResult) {
	if m == nil {
		return
	}
	status := "error"
	if res.Success {
		status = "ok"
	}
	action := res.Action
	if action == "" {
		action = "none"
	}
	m.ContactSyncs.WithLabelValues(string(vendor), action, status).Inc()
}
