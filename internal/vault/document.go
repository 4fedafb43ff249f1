package vault

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema accepts an object whose values are objects of strings.
const documentSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"additionalProperties": {
		"type": "object",
		"additionalProperties": { "type": "string" }
	}
}`

var documentSchemaLoader = gojsonschema.NewStringLoader(documentSchema)

// Document is the stored password map: domain -> username -> password.
type Document map[string]map[string]string

// DecodeDocument parses and validates a stored payload. Any failure wraps
// [ErrStoreLoad].
func DecodeDocument(payload []byte) (Document, error) {
	result, err := gojsonschema.Validate(documentSchemaLoader, gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreLoad, err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			issues = append(issues, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrStoreLoad, strings.Join(issues, "; "))
	}

	doc := make(Document)
	if err = json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreLoad, err)
	}
	return doc, nil
}

// Encode renders the document with four-space indentation. Keys are sorted,
// so equal documents always encode to the same bytes.
func (d Document) Encode() ([]byte, error) {
	if d == nil {
		d = Document{}
	}
	return json.MarshalIndent(d, "", "    ")
}

// Lookup returns the password stored for username at domain.
func (d Document) Lookup(domain, username string) (string, bool) {
	accounts, ok := d[domain]
	if !ok {
		return "", false
	}
	password, ok := accounts[username]
	return password, ok
}

// Set stores password, creating the domain entry when needed. It reports
// whether an existing password was replaced.
func (d Document) Set(domain, username, password string) bool {
	accounts, ok := d[domain]
	if !ok {
		accounts = make(map[string]string)
		d[domain] = accounts
	}

	_, existed := accounts[username]
	accounts[username] = password
	return existed
}

// Domains returns the domain names in ascending order.
func (d Document) Domains() []string {
	domains := make([]string, 0, len(d))
	for domain := range d {
		domains = append(domains, domain)
	}
	sort.Strings(domains)
	return domains
}
