package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	defer func(tg, c string) { tag, commit = tg, c }(tag, commit)

	assert.Equal(t, "v0.0.0-dev", GetVersion())

	tag, commit = "v1.2.3", "0a1b2c3"
	assert.Equal(t, "v1.2.3-0a1b2c3", GetVersion())
}
