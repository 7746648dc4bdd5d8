package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	err := Initialize("debug")
	assert.NoError(t, err)
	assert.NotNil(t, Log)

	err = Initialize("not-a-level")
	assert.Error(t, err)
}
