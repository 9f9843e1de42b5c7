package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapLookup(t *testing.T) {
	m := Map{"HOME": "/home/ada", "EMPTY": ""}

	v, ok := m.Lookup("EMPTY")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = m.Lookup("MISSING")
	assert.False(t, ok)

	assert.Equal(t, "/home/ada", Get(m, "HOME"))
	assert.Equal(t, "", Get(nil, "HOME"))
}

func TestOSLookup(t *testing.T) {
	t.Setenv("POWERLINE_PROMPT_ENV_TEST", "yes")
	assert.Equal(t, "yes", Get(OS{}, "POWERLINE_PROMPT_ENV_TEST"))
}
