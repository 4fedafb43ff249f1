package github

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/nhqb1010/qb-cli/models"
)

const reposPerPage = 100

// ListRepos implements [RepositoryLister]. It follows pagination until a
// short page is returned.
func (c *Client) ListRepos(ctx context.Context) ([]models.Repository, error) {
	repos := make([]models.Repository, 0)

	for page := 1; ; page++ {
		op := "list repos page " + strconv.Itoa(page)

		resp, err := c.execute(ctx, op, func(req *resty.Request) (*resty.Response, error) {
			return req.
				SetQueryParam("per_page", strconv.Itoa(reposPerPage)).
				SetQueryParam("page", strconv.Itoa(page)).
				Get("/user/repos")
		})
		if err = mapHTTPError(op, resp, err, false); err != nil {
			return nil, err
		}

		var batch []models.RepositoryResponse
		if err = json.Unmarshal(resp.Body(), &batch); err != nil {
			return nil, fmt.Errorf("decode %s: %w", op, err)
		}

		for _, r := range batch {
			repos = append(repos, r.ToRepository())
		}

		if len(batch) < reposPerPage {
			return repos, nil
		}
	}
}
