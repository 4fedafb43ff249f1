package vault

import (
	"sort"
	"strconv"
	"strings"
)

// DomainSummary describes one domain without revealing passwords.
type DomainSummary struct {
	Domain    string   `json:"domain" yaml:"domain"`
	Accounts  int      `json:"accounts" yaml:"accounts"`
	Usernames []string `json:"usernames" yaml:"usernames"`
}

// Header returns the column names used by table and CSV output.
func (DomainSummary) Header() []string {
	return []string{"domain", "accounts", "usernames"}
}

// Row returns the cell values in Header order.
func (s DomainSummary) Row() []string {
	return []string{s.Domain, strconv.Itoa(s.Accounts), strings.Join(s.Usernames, ", ")}
}

func summarize(doc Document) []DomainSummary {
	summaries := make([]DomainSummary, 0, len(doc))
	for _, domain := range doc.Domains() {
		usernames := make([]string, 0, len(doc[domain]))
		for username := range doc[domain] {
			usernames = append(usernames, username)
		}
		sort.Strings(usernames)

		summaries = append(summaries, DomainSummary{
			Domain:    domain,
			Accounts:  len(usernames),
			Usernames: usernames,
		})
	}
	return summaries
}
