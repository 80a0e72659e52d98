package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	origVersion := Version
	origCommit := Commit
	defer func() {
		Version = origVersion
		Commit = origCommit
	}()

	t.Run("without commit", func(t *testing.T) {
		Version = "1.2.3"
		Commit = "unknown"
		assert.Equal(t, "1.2.3", String())
	})

	t.Run("with commit", func(t *testing.T) {
		Version = "1.2.3"
		Commit = "abc1234"
		assert.Equal(t, "1.2.3+abc1234", String())
	})
}
