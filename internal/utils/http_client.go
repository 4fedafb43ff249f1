package utils

import (
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nhqb1010/qb-cli/internal/logger"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("https://api.github.com"))
//	resp, err := client.R().Get("/user/repos")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption customizes the client built by [NewHTTPClient].
type HTTPClientOption func(c *resty.Client)

// WithBaseURL sets the URL every relative request path is resolved against.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds every request issued by the client.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithHeaders adds headers sent with every request. Empty values are skipped.
func WithHeaders(headers map[string]string) HTTPClientOption {
	return func(c *resty.Client) {
		for k, v := range headers {
			if v != "" {
				c.SetHeader(k, v)
			}
		}
	}
}

// WithRequestLogging logs every completed request at debug level. The
// request body is never logged since it may carry the password document.
func WithRequestLogging(log *logger.Logger) HTTPClientOption {
	return func(c *resty.Client) {
		if log == nil {
			return
		}
		c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			log.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("took", resp.Time()).
				Msg("github request finished")
			return nil
		})
	}
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client, then applies opts.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}

	return &HTTPClient{Client: client}
}
