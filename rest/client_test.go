package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"swallowtail/interactions"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New("token", "1000", zap.NewNop()).SetBaseURL(srv.URL)
}

func TestGetCommands(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/applications/1000/guilds/2000/commands", r.URL.Path)
		assert.Equal(t, "Bot token", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`[
			{"id":"1","name":"ping","description":"pong"},
			{"id":"2","name":"settings","description":"manage settings","options":[{"type":3,"name":"key","description":"the key"}]}
		]`))
	})

	commands, err := client.GetCommands(context.Background(), "2000")
	require.NoError(t, err)
	require.Len(t, commands, 2)

	assert.Equal(t, "ping", commands[0].Name())
	assert.Equal(t, "2000", commands[0].GuildID())
	require.Len(t, commands[1].Options(), 1)
	assert.Equal(t, "key", commands[1].Options()[0].Name())
}

func TestCreateCommand(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/applications/1000/commands", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"ping","description":"pong"}`, string(body))

		_, _ = w.Write([]byte(`{"id":"77","name":"ping","description":"pong"}`))
	})

	builder, err := interactions.NewCommandBuilder("ping", "pong")
	require.NoError(t, err)

	cmd, err := client.CreateCommand(context.Background(), "", builder)
	require.NoError(t, err)
	assert.Equal(t, uint64(77), cmd.ID())
	assert.Equal(t, "", cmd.GuildID())
}

func TestEditCommandRoutesByScope(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/applications/1000/guilds/2000/commands/77", r.URL.Path)

		_, _ = w.Write([]byte(`{"id":"77","name":"ping","description":"pong v2"}`))
	})

	existing, err := interactions.ParseCommand([]byte(`{"id":"77","name":"ping","description":"pong"}`), "2000")
	require.NoError(t, err)

	builder, err := interactions.NewCommandBuilder("ping", "pong v2")
	require.NoError(t, err)

	cmd, err := client.EditCommand(context.Background(), existing, builder)
	require.NoError(t, err)
	assert.Equal(t, "pong v2", cmd.Description())
	assert.Equal(t, "2000", cmd.GuildID())
}

func TestDeleteCommandRoutesByScope(t *testing.T) {
	var path string

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	global, err := interactions.ParseCommand([]byte(`{"id":"5","name":"ping","description":"pong"}`), "")
	require.NoError(t, err)

	require.NoError(t, client.DeleteCommand(context.Background(), global))
	assert.Equal(t, "/applications/1000/commands/5", path)

	guild, err := interactions.ParseCommand([]byte(`{"id":"5","name":"ping","description":"pong"}`), "2000")
	require.NoError(t, err)

	require.NoError(t, client.DeleteCommand(context.Background(), guild))
	assert.Equal(t, "/applications/1000/guilds/2000/commands/5", path)
}

func TestAPIError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Missing Access"}`))
	})

	_, err := client.GetCommands(context.Background(), "")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "Missing Access")
}
