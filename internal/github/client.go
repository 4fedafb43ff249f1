package github

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/nhqb1010/qb-cli/internal/config"
	"github.com/nhqb1010/qb-cli/internal/logger"
	"github.com/nhqb1010/qb-cli/internal/utils"
)

// Client talks to the GitHub REST API. It implements [DocumentStore] and
// [RepositoryLister].
type Client struct {
	client   *utils.HTTPClient
	attempts int
	logger   *logger.Logger
}

// NewClient builds a client from cfg. The token is sent as a bearer
// credential; an empty token yields unauthenticated requests, which GitHub
// answers with 401 or 404 for private resources.
func NewClient(cfg config.GitHubConfig, log *logger.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid github client config: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}

	headers := map[string]string{
		"Accept":               cfg.Accept,
		"X-GitHub-Api-Version": cfg.APIVersion,
	}
	if cfg.Token != "" {
		headers["Authorization"] = "Bearer " + cfg.Token
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(cfg.APIURL),
		utils.WithTimeout(cfg.RequestTimeout),
		utils.WithHeaders(headers),
		utils.WithRequestLogging(log),
	)

	return &Client{client: client, attempts: cfg.RetryCount, logger: log}, nil
}

// execute runs build-and-send up to c.attempts times until GitHub answers
// 200 or 201. It returns the last response and transport error.
func (c *Client) execute(ctx context.Context, op string, send func(req *resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	attempt := 0
	return utils.Retry(ctx, c.attempts, func(ctx context.Context) (*resty.Response, error) {
		attempt++
		resp, err := send(c.client.R().SetContext(ctx))
		if err != nil || !isSuccess(resp) {
			event := c.logger.Debug().Str("op", op).Int("attempt", attempt)
			if err != nil {
				event = event.Err(err)
			} else {
				event = event.Int("status", resp.StatusCode())
			}
			event.Msg("github request attempt failed")
		}
		return resp, err
	}, isSuccess)
}
