// Package automate produces a commit on demand by appending a line to a
// file in a GitHub repository, or by creating a fresh timestamped file.
package automate

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"path"
	"strings"
	"time"

	"github.com/nhqb1010/qb-cli/internal/config"
	"github.com/nhqb1010/qb-cli/internal/github"
	"github.com/nhqb1010/qb-cli/internal/logger"
)

// TimeFormat renders timestamps in commit messages, file content and
// generated file names.
const TimeFormat = "2006-01-02_15-04-05"

var animalIcons = []string{"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼", "🐨", "🐯", "🦁", "🐮", "🐷", "🐸", "🐵", "🐧", "🐦", "🐤", "🦆", "🦉", "🐺", "🐴", "🦄", "🐝", "🐢", "🐙", "🐬", "🐳"}

// RandomAnimalIcon returns one animal emoji.
func RandomAnimalIcon() string {
	return animalIcons[rand.N(len(animalIcons))]
}

// Result describes the commit that was produced.
type Result struct {
	// Path is the file that was written.
	Path string

	// Created is true when a new file was created instead of appending.
	Created bool

	// SHA is the blob hash after the write.
	SHA string

	// Previous is the content before the append. Empty for created files.
	Previous string

	// Content is the content that was written.
	Content string

	// Message is the commit message.
	Message string
}

// Option customizes a [Service].
type Option func(s *Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIconPicker replaces [RandomAnimalIcon].
func WithIconPicker(icon func() string) Option {
	return func(s *Service) {
		s.icon = icon
	}
}

// Service performs auto commits on the configured file.
type Service struct {
	cfg    config.AutomateConfig
	store  github.DocumentStore
	now    func() time.Time
	icon   func() string
	logger *logger.Logger
}

// NewService validates cfg and returns a Service writing through store.
func NewService(cfg config.AutomateConfig, store github.DocumentStore, log *logger.Logger, opts ...Option) (*Service, error) {
	var missing []string
	if strings.TrimSpace(cfg.Owner) == "" {
		missing = append(missing, "AUTOMATE_OWNER")
	}
	if strings.TrimSpace(cfg.Repo) == "" {
		missing = append(missing, "AUTOMATE_REPO")
	}
	if strings.TrimSpace(cfg.File) == "" {
		missing = append(missing, "AUTOMATE_FILE")
	}
	if len(missing) > 0 {
		return nil, &config.MissingConfigError{Fields: missing}
	}
	if log == nil {
		log = logger.Nop()
	}

	s := &Service{
		cfg:    cfg,
		store:  store,
		now:    time.Now,
		icon:   RandomAnimalIcon,
		logger: log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Service) ref(filePath string) github.FileRef {
	return github.FileRef{
		Owner:  s.cfg.Owner,
		Repo:   s.cfg.Repo,
		Path:   filePath,
		Branch: s.cfg.Branch,
	}
}

// Commit appends a line to the configured file. When the file does not
// exist, it creates a new timestamped file if createIfMissing is set and
// returns [github.ErrNotFound] otherwise.
func (s *Service) Commit(ctx context.Context, createIfMissing bool) (Result, error) {
	stamp := s.now().Format(TimeFormat)
	message := "From QB_CLI, Auto commit at " + stamp

	handle, err := s.store.Fetch(ctx, s.ref(s.cfg.File))
	switch {
	case err == nil:
		return s.appendLine(ctx, handle, stamp, message)
	case errors.Is(err, github.ErrNotFound) && createIfMissing:
		return s.createFile(ctx, stamp, message)
	default:
		return Result{}, err
	}
}

func (s *Service) appendLine(ctx context.Context, handle github.Handle, stamp, message string) (Result, error) {
	previous, err := handle.Payload()
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", s.cfg.File, err)
	}

	content := fmt.Sprintf("%s\n- %s Auto commit at %s by QB CLI", previous, s.icon(), stamp)

	written, err := s.store.Write(ctx, github.WriteRequest{
		Ref:     s.ref(s.cfg.File),
		Message: message,
		Payload: []byte(content),
		SHA:     handle.SHA,
	})
	if err != nil {
		return Result{}, err
	}

	s.logger.Info().Str("file", s.cfg.File).Str("sha", written.SHA).Msg("auto commit appended")
	return Result{
		Path:     s.cfg.File,
		SHA:      written.SHA,
		Previous: string(previous),
		Content:  content,
		Message:  message,
	}, nil
}

func (s *Service) createFile(ctx context.Context, stamp, message string) (Result, error) {
	filePath := TimestampedName(s.cfg.File, stamp)
	content := s.icon() + " New file created by QB CLI\n"

	written, err := s.store.Write(ctx, github.WriteRequest{
		Ref:     s.ref(filePath),
		Message: message,
		Payload: []byte(content),
	})
	if err != nil {
		return Result{}, err
	}

	s.logger.Info().Str("file", filePath).Str("sha", written.SHA).Msg("auto commit file created")
	return Result{
		Path:    filePath,
		Created: true,
		SHA:     written.SHA,
		Content: content,
		Message: message,
	}, nil
}

// TimestampedName inserts "_{stamp}" between the base name and extension of
// filePath: "dir/log.txt" becomes "dir/log_{stamp}.txt".
func TimestampedName(filePath, stamp string) string {
	dir, file := path.Split(filePath)
	ext := path.Ext(file)
	base := strings.TrimSuffix(file, ext)
	if base == "" {
		base, ext = file, ""
	}
	return dir + base + "_" + stamp + ext
}
