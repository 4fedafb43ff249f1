// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package github is the client for the GitHub REST API used by qb.
//
// Its main job is to treat one file of a repository as a remote document
// with optimistic concurrency: every read returns the blob SHA, and an
// update must present the SHA it was based on so that GitHub rejects a
// write whose base has moved. [Client] also lists the repositories of the
// authenticated user.
//
// Every request is retried a bounded number of times with
// [utils.Retry] until GitHub answers 200 or 201. Failures surface as
// [ErrNotFound] (a fetched file does not exist) or as a [*RemoteError]
// carrying the last status code and body; both can be matched with
// [errors.Is] and [errors.As].
package github

import (
	"context"

	"github.com/nhqb1010/qb-cli/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/github_mock.go -package=mock

// DocumentStore reads and writes a single file of a repository.
type DocumentStore interface {
	// Fetch returns the current SHA and base64 content of ref. It fails with
	// [ErrNotFound] when the file does not exist and with a [*RemoteError]
	// for any other failure.
	Fetch(ctx context.Context, ref FileRef) (Handle, error)

	// Write creates the file when req.SHA is empty, otherwise updates it
	// expecting req.SHA to be the current blob. Any failure, including a
	// conflict, is a [*RemoteError].
	Write(ctx context.Context, req WriteRequest) (Handle, error)

	// FetchOrCreate fetches ref and creates it from defaultPayload only when
	// the fetch reports [ErrNotFound]. created reports whether a write
	// happened.
	FetchOrCreate(ctx context.Context, ref FileRef, defaultPayload []byte, message string) (handle Handle, created bool, err error)
}

// RepositoryLister lists the repositories visible to the token.
type RepositoryLister interface {
	ListRepos(ctx context.Context) ([]models.Repository, error)
}

// UserResolver identifies the owner of the token.
type UserResolver interface {
	AuthenticatedUser(ctx context.Context) (models.GitHubUser, error)
}

// API is everything qb uses from GitHub. [*Client] implements it.
type API interface {
	DocumentStore
	RepositoryLister
	UserResolver
}
