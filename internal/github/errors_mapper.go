package github

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/nhqb1010/qb-cli/models"
)

func isSuccess(resp *resty.Response) bool {
	if resp == nil {
		return false
	}
	return resp.StatusCode() == http.StatusOK || resp.StatusCode() == http.StatusCreated
}

// mapHTTPError turns the outcome of the last attempt into an error. A 404 is
// reported as [ErrNotFound] only when notFoundIsAbsence is set.
func mapHTTPError(op string, resp *resty.Response, err error, notFoundIsAbsence bool) error {
	if err != nil {
		return &RemoteError{Op: op, Err: err}
	}
	if isSuccess(resp) {
		return nil
	}

	if notFoundIsAbsence && resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, op)
	}

	return &RemoteError{
		Op:         op,
		StatusCode: resp.StatusCode(),
		Body:       string(resp.Body()),
		Message:    errorMessage(resp),
	}
}

// errorMessage prefers the API's message field and falls back to the raw
// body, then to the status text.
func errorMessage(resp *resty.Response) string {
	var apiErr models.APIError
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
