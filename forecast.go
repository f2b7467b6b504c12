// Forecast document retrieval from the JMA endpoint.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// forecastTimeout bounds a single forecast fetch.
const forecastTimeout = 30 * time.Second

// ForecastClient fetches raw forecast documents by area code.
type ForecastClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewForecastClient creates a ForecastClient against the given base URL.
func NewForecastClient(baseURL string) *ForecastClient {
	return &ForecastClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: forecastTimeout,
		},
	}
}

// ForecastURL returns the document URL for an area code. Codes are padded to
// six digits, so 16000 resolves to 016000.json.
func (c *ForecastClient) ForecastURL(code int) string {
	return fmt.Sprintf("%s/%06d.json", c.baseURL, code)
}

// FetchForecast issues a GET for the area code's forecast document and
// returns the response body verbatim. The body is opaque to this client;
// it is handed to the model as-is.
func (c *ForecastClient) FetchForecast(ctx context.Context, code int) (string, error) {
	url := c.ForecastURL(code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("forecast request for area %06d: unexpected status %s", code, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read forecast response: %w", err)
	}
	return string(body), nil
}
