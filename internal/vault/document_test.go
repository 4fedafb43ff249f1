package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument_Valid(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{"github.com": {"alice": "pw1", "bob": "pw2"}, "gitlab.com": {}}`))
	require.NoError(t, err)

	assert.Equal(t, Document{
		"github.com": {"alice": "pw1", "bob": "pw2"},
		"gitlab.com": {},
	}, doc)
}

func TestDecodeDocument_Empty(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestDecodeDocument_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: `password=hunter2`},
		{name: "empty", payload: ``},
		{name: "array", payload: `[1, 2]`},
		{name: "null", payload: `null`},
		{name: "flat map", payload: `{"github.com": "pw"}`},
		{name: "non string password", payload: `{"github.com": {"alice": 42}}`},
		{name: "too deep", payload: `{"github.com": {"alice": {"pw": "x"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument([]byte(tt.payload))
			assert.ErrorIs(t, err, ErrStoreLoad)
		})
	}
}

func TestDocument_EncodeIsStable(t *testing.T) {
	doc := Document{
		"z.com": {"bob": "2", "alice": "1"},
		"a.com": {"carol": "3"},
	}

	out, err := doc.Encode()
	require.NoError(t, err)

	expected := "{\n" +
		"    \"a.com\": {\n" +
		"        \"carol\": \"3\"\n" +
		"    },\n" +
		"    \"z.com\": {\n" +
		"        \"alice\": \"1\",\n" +
		"        \"bob\": \"2\"\n" +
		"    }\n" +
		"}"
	assert.Equal(t, expected, string(out))
}

func TestDocument_RoundTrip(t *testing.T) {
	doc := Document{"github.com": {"alice": `p"w\n{}`}}

	out, err := doc.Encode()
	require.NoError(t, err)

	back, err := DecodeDocument(out)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}

func TestDocument_EncodeNil(t *testing.T) {
	var doc Document
	out, err := doc.Encode()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}

func TestDocument_SetAndLookup(t *testing.T) {
	doc := Document{}

	assert.False(t, doc.Set("github.com", "alice", "one"))
	assert.True(t, doc.Set("github.com", "alice", "two"))

	pw, ok := doc.Lookup("github.com", "alice")
	assert.True(t, ok)
	assert.Equal(t, "two", pw)

	_, ok = doc.Lookup("github.com", "bob")
	assert.False(t, ok)
	_, ok = doc.Lookup("gitlab.com", "alice")
	assert.False(t, ok)
}

func TestSummarize(t *testing.T) {
	got := summarize(Document{
		"b.com": {"zed": "1", "amy": "2"},
		"a.com": {},
	})

	assert.Equal(t, []DomainSummary{
		{Domain: "a.com", Accounts: 0, Usernames: []string{}},
		{Domain: "b.com", Accounts: 2, Usernames: []string{"amy", "zed"}},
	}, got)
	assert.Equal(t, []string{"b.com", "2", "amy, zed"}, got[1].Row())
}
