package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/tinyland/lab/powerline-prompt/pkg/env"
)

func TestEnvInt(t *testing.T) {
	tests := []struct {
		name string
		env  env.Map
		want int
	}{
		{"unset", env.Map{}, 0},
		{"valid", env.Map{"COLUMNS": "132"}, 132},
		{"zero", env.Map{"COLUMNS": "0"}, 0},
		{"negative", env.Map{"COLUMNS": "-1"}, 0},
		{"garbage", env.Map{"COLUMNS": "wide"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, envInt(tt.env, "COLUMNS", 0))
		})
	}
}

func TestWidthNeverNegative(t *testing.T) {
	assert.GreaterOrEqual(t, Width(env.Map{"COLUMNS": "-20"}), 0)
}
