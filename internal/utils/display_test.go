package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Mining", DisplayName("mining"))
	assert.Equal(t, "Deep Mining", DisplayName("deep_mining"))
	assert.Equal(t, "", DisplayName(""))
}
