package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeWriter struct {
	got string
	err error
}

func (f *fakeWriter) WriteAll(text string) error {
	f.got = text
	return f.err
}

func TestCopy_Success(t *testing.T) {
	w := &fakeWriter{}
	assert.NoError(t, Copy(w, "s3cret"))
	assert.Equal(t, "s3cret", w.got)
}

func TestCopy_FailureWrapsErrClipboard(t *testing.T) {
	w := &fakeWriter{err: errors.New("xclip not found")}

	err := Copy(w, "s3cret")
	assert.ErrorIs(t, err, ErrClipboard)
	assert.Contains(t, err.Error(), "xclip not found")
}
