package rte

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"rte-collector/internal/models"

	"github.com/go-resty/resty/v2"
)

// Client talks to the RTE open API: OAuth2 client-credentials token endpoint
// plus the generation_forecast data endpoint.
type Client struct {
	clientID     string
	clientSecret string
	tokenURL     string
	dataURL      string
	client       *resty.Client
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type forecastsResponse struct {
	Forecasts []models.Forecast `json:"forecasts"`
}

func NewClient(clientID, clientSecret, tokenURL, dataURL string) *Client {
	client := resty.New()
	client.SetTimeout(30 * time.Second)

	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     tokenURL,
		dataURL:      dataURL,
		client:       client,
	}
}

// AcquireToken exchanges the client credentials for a bearer token.
// No caching: a fresh token is requested once per pipeline run.
func (c *Client) AcquireToken() (string, error) {
	resp, err := c.client.R().
		SetBasicAuth(c.clientID, c.clientSecret).
		Post(c.tokenURL)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}

	if !resp.IsSuccess() {
		return "", &AuthError{Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	var tok tokenResponse
	if err := json.Unmarshal(resp.Body(), &tok); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token response contained no access_token")
	}
	return tok.AccessToken, nil
}

// GetForecasts fetches forecasts for a single sub-interval. Boundaries are
// sent RFC 3339 with their zone offset, which is what the API expects.
func (c *Client) GetForecasts(token string, start, end time.Time, productionType, forecastType string) ([]models.Forecast, error) {
	resp, err := c.client.R().
		SetAuthToken(token).
		SetQueryParams(map[string]string{
			"start_date":      start.Format(time.RFC3339),
			"end_date":        end.Format(time.RFC3339),
			"production_type": productionType,
			"type":            forecastType,
		}).
		Get(c.dataURL)
	if err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, &FetchError{Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	var result forecastsResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode forecast response: %w", err)
	}

	log.Printf("[RTE] %s/%s %s -> %s: %d forecasts",
		productionType, forecastType,
		start.Format("2006-01-02"), end.Format("2006-01-02"), len(result.Forecasts))

	return result.Forecasts, nil
}
