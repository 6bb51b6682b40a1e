package eurostar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

const (
	DefaultBaseURL   = "https://api.prod.eurostar.com/bpa"
	SearchLocation   = "train-search/uk-en"
	StationsLocation = "hotels-search/regions/uk-en"
	APIKeyHeader     = "x-apikey"

	defaultRetryInitialInterval = 500 * time.Millisecond
)

type Config struct {
	BaseURL string
	APIKey  string

	// Timeout bounds a single attempt, zero means no timeout
	Timeout time.Duration

	// MaxRetries is how many extra attempts a 5xx or transport failure gets
	MaxRetries           int
	RetryInitialInterval time.Duration

	HTTPClient *http.Client
}

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.RetryInitialInterval <= 0 {
		config.RetryInitialInterval = defaultRetryInitialInterval
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

func (c *Client) newBackOff(ctx context.Context) backoff.BackOff {
	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.InitialInterval = c.config.RetryInitialInterval
	retryBackoff.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(retryBackoff, uint64(c.config.MaxRetries)), ctx)
}

// get performs a GET against the API and returns the body of a successful response.
// Server errors and transport failures are retried, everything else is returned straight away.
func (c *Client) get(ctx context.Context, location string, query url.Values) ([]byte, error) {
	requestURL := fmt.Sprintf("%s/%s", c.config.BaseURL, location)
	if len(query) > 0 {
		requestURL = fmt.Sprintf("%s?%s", requestURL, query.Encode())
	}

	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set(APIKeyHeader, c.config.APIKey)
		req.Header.Set("Accept", "application/json")

		log.Debug().Str("url", requestURL).Msg("Prepared request")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return &TransportError{Err: err}
		}
		defer resp.Body.Close()

		responseBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return &TransportError{Err: err}
		}

		switch {
		case resp.StatusCode >= http.StatusInternalServerError:
			return &ServerError{
				StatusCode: resp.StatusCode,
				Status:     resp.Status,
				Body:       string(responseBody),
			}
		case resp.StatusCode >= http.StatusBadRequest:
			return backoff.Permanent(&ClientError{
				StatusCode: resp.StatusCode,
				Status:     resp.Status,
				Body:       string(responseBody),
			})
		}

		log.Debug().Str("url", requestURL).Msgf("Got %s response", resp.Status)

		body = responseBody
		return nil
	}

	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("url", requestURL).Str("wait", wait.String()).Msg("Retrying request")
	}

	if err := backoff.RetryNotify(operation, c.newBackOff(ctx), notify); err != nil {
		// A deadline or cancellation ending the retries comes back as the bare context error
		if ctxErr := ctx.Err(); ctxErr != nil && err == ctxErr {
			return nil, &TransportError{Err: err}
		}

		return nil, err
	}

	return body, nil
}
