package vvo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// Client issues parameterised GET requests against the upstream web API
// and decodes the JSON responses into the raw types of this package.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Params holds the query parameters for one upstream call. Entries with
// a nil value are dropped; everything else is stringified.
type Params map[string]any

// Call performs a single GET against baseURL+endpoint and decodes the
// response body into out. No retries; one failed call is one failure.
func (c *Client) Call(ctx context.Context, endpoint string, params Params, out any) error {
	requestURL := c.baseURL + endpoint

	values := url.Values{}
	for key, value := range params {
		if value == nil {
			continue
		}
		values.Set(key, fmt.Sprint(value))
	}
	if encoded := values.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return &UpstreamError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Debug().Str("endpoint", endpoint).Int("status", resp.StatusCode).Msg("Upstream call failed")
		return &UpstreamError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Err: fmt.Errorf("decode upstream response: %w", err)}
	}

	return nil
}

// logStatus surfaces the provider's Status block. The call itself can
// succeed while the provider still reports a degraded state.
func logStatus(endpoint string, status *APIStatus) {
	if status == nil || status.Code == "" || status.Code == "Ok" {
		return
	}

	log.Warn().
		Str("endpoint", endpoint).
		Str("code", status.Code).
		Str("message", status.Message).
		Msg("Upstream reported status")
}

// PointFinder searches stations matching query.
func (c *Client) PointFinder(ctx context.Context, query string, limit int) (*PointFinderResponse, error) {
	var response PointFinderResponse
	err := c.Call(ctx, EndpointPointFinder, Params{
		"query":         query,
		"limit":         limit,
		"assignedstops": true,
		"type_sf":       true,
	}, &response)
	if err != nil {
		return nil, err
	}
	logStatus(EndpointPointFinder, response.Status)

	return &response, nil
}

// DepartureMonitor fetches upcoming departures at a stop from the given
// point in time.
func (c *Client) DepartureMonitor(ctx context.Context, stopID string, when time.Time, limit int) (*DepartureMonitorResponse, error) {
	var response DepartureMonitorResponse
	err := c.Call(ctx, EndpointDepartureMonitor, Params{
		"stopid":    stopID,
		"time":      when.Format(time.RFC3339),
		"isarrival": false,
		"limit":     limit,
	}, &response)
	if err != nil {
		return nil, err
	}
	logStatus(EndpointDepartureMonitor, response.Status)

	return &response, nil
}

// Trips searches routed trips between two stops.
func (c *Client) Trips(ctx context.Context, origin string, destination string, when time.Time, isArrival bool, maxChanges int) (*TripsResponse, error) {
	var response TripsResponse
	err := c.Call(ctx, EndpointTrips, Params{
		"origin":           origin,
		"destination":      destination,
		"time":             when.Format(time.RFC3339),
		"isarrivaltime":    isArrival,
		"maxchanges":       maxChanges,
		"shorttermchanges": true,
		"walkingspeed":     "normal",
	}, &response)
	if err != nil {
		return nil, err
	}
	logStatus(EndpointTrips, response.Status)

	return &response, nil
}

// LinesForStop fetches the lines serving a stop.
func (c *Client) LinesForStop(ctx context.Context, stopID string) (*LinesResponse, error) {
	var response LinesResponse
	err := c.Call(ctx, EndpointLines, Params{
		"stopid": stopID,
	}, &response)
	if err != nil {
		return nil, err
	}
	logStatus(EndpointLines, response.Status)

	return &response, nil
}

// StopsForLine fetches the stops served by a line.
func (c *Client) StopsForLine(ctx context.Context, lineID string) (*StopsResponse, error) {
	var response StopsResponse
	err := c.Call(ctx, EndpointStops, Params{
		"lineid": lineID,
	}, &response)
	if err != nil {
		return nil, err
	}
	logStatus(EndpointStops, response.Status)

	return &response, nil
}
