// Package vault stores passwords in a JSON document kept in a GitHub
// repository.
//
// The document maps domain -> username -> password. Every change is a full
// read-modify-write of the document: the SHA seen at load time is sent back
// with the write, so GitHub rejects the write when another writer committed
// in between. The rejection surfaces as a [github.RemoteError]; the service
// never re-reads and replays a change. Two writers that both load before
// either writes can still lose an update when the store accepts the second
// write.
package vault

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nhqb1010/qb-cli/internal/config"
	"github.com/nhqb1010/qb-cli/internal/github"
	"github.com/nhqb1010/qb-cli/internal/logger"
)

// Commit messages used for vault writes.
const (
	InitialCommitMessage = "Initial commit"
	updateCommitFormat   = "Update password for %s at %s"
)

var emptyDocument = []byte("{}")

// SetRequest describes a password to store.
type SetRequest struct {
	Domain   string
	Username string
	Password string

	// Overwrite allows replacing an existing password for Username.
	Overwrite bool
}

func (r SetRequest) validate() error {
	var empty []string
	if strings.TrimSpace(r.Domain) == "" {
		empty = append(empty, "domain")
	}
	if strings.TrimSpace(r.Username) == "" {
		empty = append(empty, "username")
	}
	if r.Password == "" {
		empty = append(empty, "password")
	}
	if len(empty) > 0 {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidRequest, strings.Join(empty, ", "))
	}
	return nil
}

// Service is the password vault.
type Service struct {
	cfg    config.VaultConfig
	store  github.DocumentStore
	logger *logger.Logger
}

// NewService returns a vault over store. cfg must name the token, owner,
// repository and file; otherwise a [*config.MissingConfigError] is returned.
func NewService(cfg config.VaultConfig, store github.DocumentStore, log *logger.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Service{cfg: cfg, store: store, logger: log}, nil
}

// ensureConfigured runs before every operation; it has no side effects.
func (s *Service) ensureConfigured() error {
	return s.cfg.Validate()
}

func (s *Service) ref() github.FileRef {
	return github.FileRef{
		Owner:  s.cfg.Owner,
		Repo:   s.cfg.Repo,
		Path:   s.cfg.File,
		Branch: s.cfg.Branch,
	}
}

// CheckConnection fetches the document and creates an empty one when it
// does not exist yet. created reports whether the document was created.
func (s *Service) CheckConnection(ctx context.Context) (github.Handle, bool, error) {
	if err := s.ensureConfigured(); err != nil {
		return github.Handle{}, false, err
	}

	handle, created, err := s.store.FetchOrCreate(ctx, s.ref(), emptyDocument, InitialCommitMessage)
	if err != nil {
		return github.Handle{}, false, err
	}

	s.logger.Info().Str("sha", handle.SHA).Bool("created", created).Msg("vault connection checked")
	return handle, created, nil
}

// Load fetches and decodes the document. A payload that is not base64 or
// not a valid document yields [ErrStoreLoad]; store errors are returned
// unchanged.
func (s *Service) Load(ctx context.Context) (Document, github.Handle, error) {
	if err := s.ensureConfigured(); err != nil {
		return nil, github.Handle{}, err
	}

	handle, err := s.store.Fetch(ctx, s.ref())
	if err != nil {
		return nil, github.Handle{}, err
	}

	payload, err := handle.Payload()
	if err != nil {
		return nil, github.Handle{}, fmt.Errorf("%w: %v", ErrStoreLoad, err)
	}

	doc, err := DecodeDocument(payload)
	if err != nil {
		return nil, github.Handle{}, err
	}

	return doc, handle, nil
}

// SetPassword stores req.Password for req.Username at req.Domain. Without
// req.Overwrite an existing password is left untouched and a
// [*CredentialExistsError] is returned; nothing is written in that case.
func (s *Service) SetPassword(ctx context.Context, req SetRequest) error {
	if err := s.ensureConfigured(); err != nil {
		return err
	}
	if err := req.validate(); err != nil {
		return err
	}

	doc, handle, err := s.Load(ctx)
	if err != nil {
		return err
	}

	if _, exists := doc.Lookup(req.Domain, req.Username); exists && !req.Overwrite {
		return &CredentialExistsError{Domain: req.Domain, Username: req.Username}
	}

	replaced := doc.Set(req.Domain, req.Username, req.Password)

	payload, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("encode password store: %w", err)
	}

	written, err := s.store.Write(ctx, github.WriteRequest{
		Ref:     s.ref(),
		Message: fmt.Sprintf(updateCommitFormat, req.Username, req.Domain),
		Payload: payload,
		SHA:     handle.SHA,
	})
	if err != nil {
		return err
	}

	s.logger.Info().
		Str("domain", req.Domain).
		Str("username", req.Username).
		Bool("replaced", replaced).
		Str("sha", written.SHA).
		Msg("password stored")
	return nil
}

// GetPassword returns the password for username at domain. found is false
// when either the domain or the username is absent.
func (s *Service) GetPassword(ctx context.Context, username, domain string) (string, bool, error) {
	doc, _, err := s.Load(ctx)
	if err != nil {
		return "", false, err
	}

	password, found := doc.Lookup(domain, username)
	return password, found, nil
}

// Summary lists every domain with its account count, sorted by domain.
func (s *Service) Summary(ctx context.Context) ([]DomainSummary, error) {
	doc, _, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return summarize(doc), nil
}

// IsAbsent reports whether err means the vault document does not exist.
func IsAbsent(err error) bool {
	return errors.Is(err, github.ErrNotFound)
}
