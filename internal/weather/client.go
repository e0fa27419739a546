// Package weather fetches current conditions from a third-party HTTP API.
// Responses are never cached; every lookup hits the upstream service.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/nshubina/airport-api/config"
	"github.com/nshubina/airport-api/internal/domain"
)

type Conditions struct {
	Location  string  `json:"location"`
	TempC     float64 `json:"temp_c"`
	Condition string  `json:"condition"`
	WindKPH   float64 `json:"wind_kph"`
	Humidity  int     `json:"humidity"`
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg config.WeatherConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type currentResponse struct {
	Location struct {
		Name string `json:"name"`
	} `json:"location"`
	Current struct {
		TempC     float64 `json:"temp_c"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
		WindKPH  float64 `json:"wind_kph"`
		Humidity int     `json:"humidity"`
	} `json:"current"`
}

// Current fetches live conditions for the given coordinates.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*Conditions, error) {
	endpoint := fmt.Sprintf("%s/current.json?key=%s&q=%s", c.baseURL, url.QueryEscape(c.apiKey),
		url.QueryEscape(fmt.Sprintf("%f,%f", lat, lon)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, domain.ErrUpstreamTimeout
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var payload currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrUpstream, err)
	}

	return &Conditions{
		Location:  payload.Location.Name,
		TempC:     payload.Current.TempC,
		Condition: payload.Current.Condition.Text,
		WindKPH:   payload.Current.WindKPH,
		Humidity:  payload.Current.Humidity,
	}, nil
}

func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
