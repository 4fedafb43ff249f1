package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/nhqb1010/qb-cli/models"
)

// FileRef locates a file in a repository. An empty Branch means the
// repository default branch.
type FileRef struct {
	Owner  string
	Repo   string
	Path   string
	Branch string
}

func (r FileRef) String() string {
	s := r.Owner + "/" + r.Repo + "/" + r.Path
	if r.Branch != "" {
		s += "@" + r.Branch
	}
	return s
}

// contentsPath builds /repos/{owner}/{repo}/contents/{path}, escaping each
// path segment but keeping the separators.
func (r FileRef) contentsPath() string {
	segments := strings.Split(strings.Trim(r.Path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return "/repos/" + url.PathEscape(r.Owner) + "/" + url.PathEscape(r.Repo) +
		"/contents/" + strings.Join(segments, "/")
}

// Handle is the state of a file as last seen: the blob SHA an update must
// present and the content as base64 text.
type Handle struct {
	SHA     string
	Content string
}

// Payload decodes Content. GitHub wraps base64 at 60 columns, so line breaks
// are dropped before decoding.
func (h Handle) Payload() ([]byte, error) {
	cleaned := strings.NewReplacer("\n", "", "\r", "").Replace(h.Content)

	payload, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedContent, err)
	}
	return payload, nil
}

// WriteRequest describes a create (empty SHA) or an update of Ref.
type WriteRequest struct {
	Ref     FileRef
	Message string
	Payload []byte

	// SHA is the blob the update is based on. Empty creates the file.
	SHA string
}

// Fetch implements [DocumentStore].
func (c *Client) Fetch(ctx context.Context, ref FileRef) (Handle, error) {
	op := "fetch " + ref.String()

	resp, err := c.execute(ctx, op, func(req *resty.Request) (*resty.Response, error) {
		if ref.Branch != "" {
			req.SetQueryParam("ref", ref.Branch)
		}
		return req.Get(ref.contentsPath())
	})
	if err = mapHTTPError(op, resp, err, true); err != nil {
		return Handle{}, err
	}

	// A directory path answers with a JSON array of entries.
	var file models.FileContent
	if err = json.Unmarshal(resp.Body(), &file); err == nil && file.Type != "" && file.Type != "file" {
		err = fmt.Errorf("type %q", file.Type)
	}
	if err != nil {
		return Handle{}, &RemoteError{
			Op:         op,
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
			Message:    ref.Path + " is not a file",
			Err:        fmt.Errorf("%w: %v", ErrMalformedContent, err),
		}
	}

	c.logger.Debug().Str("file", ref.String()).Str("sha", file.SHA).Msg("fetched file")
	return Handle{SHA: file.SHA, Content: file.Content}, nil
}

// Write implements [DocumentStore].
func (c *Client) Write(ctx context.Context, req WriteRequest) (Handle, error) {
	op := "write " + req.Ref.String()
	content := base64.StdEncoding.EncodeToString(req.Payload)

	body := models.PutFileRequest{
		Message: req.Message,
		Content: content,
		Branch:  req.Ref.Branch,
		SHA:     req.SHA,
	}

	resp, err := c.execute(ctx, op, func(r *resty.Request) (*resty.Response, error) {
		return r.
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Put(req.Ref.contentsPath())
	})
	if err = mapHTTPError(op, resp, err, false); err != nil {
		return Handle{}, err
	}

	var result models.PutFileResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return Handle{}, fmt.Errorf("decode %s: %w", op, err)
	}

	c.logger.Debug().
		Str("file", req.Ref.String()).
		Str("sha", result.Content.SHA).
		Bool("create", req.SHA == "").
		Msg("wrote file")

	return Handle{SHA: result.Content.SHA, Content: content}, nil
}

// FetchOrCreate implements [DocumentStore]. Only [ErrNotFound] leads to a
// create; any other fetch failure is returned unchanged.
func (c *Client) FetchOrCreate(ctx context.Context, ref FileRef, defaultPayload []byte, message string) (Handle, bool, error) {
	handle, err := c.Fetch(ctx, ref)
	if err == nil {
		return handle, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Handle{}, false, err
	}

	c.logger.Info().Str("file", ref.String()).Msg("file not found, creating it")

	handle, err = c.Write(ctx, WriteRequest{
		Ref:     ref,
		Message: message,
		Payload: defaultPayload,
	})
	if err != nil {
		return Handle{}, false, err
	}
	return handle, true, nil
}
