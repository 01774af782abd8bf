package clipboard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCopySuccess(t *testing.T) {
	var got string
	w := WriterFunc(func(text string) error {
		got = text
		return nil
	})

	assert.True(t, Copy(w, "subject\n\nbody"))
	assert.Equal(t, "subject\n\nbody", got)
}

func TestCopyFailureIsSilent(t *testing.T) {
	w := WriterFunc(func(string) error { return errors.New("denied") })
	assert.False(t, Copy(w, "x"))
}

func TestCopyNilWriter(t *testing.T) {
	assert.False(t, Copy(nil, "x"))
}

func TestIndicatorTTL(t *testing.T) {
	assert.Equal(t, 2*time.Second, CopiedIndicatorTTL)
}
