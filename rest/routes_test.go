package rest

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteCompile(t *testing.T) {
	tests := []struct {
		name       string
		route      Route
		args       []string
		wantErr    bool
		wantMethod string
		wantPath   string
	}{
		{
			name:       "global commands",
			route:      GetGlobalCommands,
			args:       []string{"123"},
			wantMethod: http.MethodGet,
			wantPath:   "/applications/123/commands",
		},
		{
			name:       "guild command edit",
			route:      EditGuildCommand,
			args:       []string{"123", "456", "789"},
			wantMethod: http.MethodPatch,
			wantPath:   "/applications/123/guilds/456/commands/789",
		},
		{
			name:    "too few args",
			route:   DeleteGuildCommand,
			args:    []string{"123"},
			wantErr: true,
		},
		{
			name:    "too many args",
			route:   GetGlobalCommands,
			args:    []string{"123", "456"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled, err := tt.route.Compile(tt.args...)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMethod, compiled.Method)
			assert.Equal(t, tt.wantPath, compiled.Path)
		})
	}
}
