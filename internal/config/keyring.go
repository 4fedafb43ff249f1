package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

// Keyring entry holding the GitHub token.
const (
	KeyringService      = "qb-cli"
	KeyringTokenAccount = "github-token"
)

// Keyring is the subset of an OS secret store used for the GitHub token.
type Keyring interface {
	Get(service, account string) (string, error)
	Set(service, account, secret string) error
	Delete(service, account string) error
}

type osKeyring struct{}

// NewOSKeyring returns a [Keyring] backed by the platform secret store
// (macOS Keychain, Secret Service, Windows Credential Manager).
func NewOSKeyring() Keyring {
	return osKeyring{}
}

func (osKeyring) Get(service, account string) (string, error) {
	return keyring.Get(service, account)
}

func (osKeyring) Set(service, account, secret string) error {
	return keyring.Set(service, account, secret)
}

func (osKeyring) Delete(service, account string) error {
	return keyring.Delete(service, account)
}

// LoadToken returns the GitHub token stored in kr, or [ErrTokenNotFound].
func LoadToken(kr Keyring) (string, error) {
	token, err := kr.Get(KeyringService, KeyringTokenAccount)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("read token from keyring: %w", err)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}

// SaveToken stores token in kr.
func SaveToken(kr Keyring, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: empty token", ErrMissingConfiguration)
	}

	if err := kr.Set(KeyringService, KeyringTokenAccount, token); err != nil {
		return fmt.Errorf("save token to keyring: %w", err)
	}
	return nil
}

// DeleteToken removes the stored token. Deleting a missing token returns
// [ErrTokenNotFound].
func DeleteToken(kr Keyring) error {
	if err := kr.Delete(KeyringService, KeyringTokenAccount); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrTokenNotFound
		}
		return fmt.Errorf("delete token from keyring: %w", err)
	}
	return nil
}
