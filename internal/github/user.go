package github

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/nhqb1010/qb-cli/models"
)

// AuthenticatedUser returns the account the token belongs to.
func (c *Client) AuthenticatedUser(ctx context.Context) (models.GitHubUser, error) {
	const op = "get authenticated user"

	resp, err := c.execute(ctx, op, func(req *resty.Request) (*resty.Response, error) {
		return req.Get("/user")
	})
	if err = mapHTTPError(op, resp, err, false); err != nil {
		return models.GitHubUser{}, err
	}

	var user models.GitHubUser
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.GitHubUser{}, fmt.Errorf("decode %s: %w", op, err)
	}
	return user, nil
}
