package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info AppBuildInfo
		want string
	}{
		{name: "all set", info: NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"), want: "1.2.3 (commit: abc123, built: 2026-01-01)"},
		{name: "nothing injected", info: AppBuildInfo{}, want: "N/A (commit: N/A, built: N/A)"},
		{name: "version only", info: NewAppBuildInfo("dev", "", ""), want: "dev (commit: N/A, built: N/A)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestRepository_Row(t *testing.T) {
	r := RepositoryResponse{ID: 7, Name: "qb-cli", HTMLURL: "https://github.com/alice/qb-cli", StargazersCount: 2}.ToRepository()

	assert.Equal(t, len(r.Header()), len(r.Row()))
	assert.Equal(t, []string{"7", "qb-cli", "https://github.com/alice/qb-cli", "2", "0001-01-01T00:00:00Z"}, r.Row())
}
