// Package rest talks to the Discord application command endpoints. It owns
// route compilation and the HTTP client; payload shapes come from the
// interactions package.
package rest

import (
	"fmt"
	"net/http"
	"strings"
)

// Route is an uncompiled endpoint template. Path placeholders are written as
// {name} and substituted positionally at compile time.
type Route struct {
	Method string
	Path   string
}

// CompiledRoute is a route with all placeholders substituted.
type CompiledRoute struct {
	Method string
	Path   string
}

var (
	GetGlobalCommands   = Route{http.MethodGet, "/applications/{application.id}/commands"}
	CreateGlobalCommand = Route{http.MethodPost, "/applications/{application.id}/commands"}
	EditGlobalCommand   = Route{http.MethodPatch, "/applications/{application.id}/commands/{command.id}"}
	DeleteGlobalCommand = Route{http.MethodDelete, "/applications/{application.id}/commands/{command.id}"}

	GetGuildCommands   = Route{http.MethodGet, "/applications/{application.id}/guilds/{guild.id}/commands"}
	CreateGuildCommand = Route{http.MethodPost, "/applications/{application.id}/guilds/{guild.id}/commands"}
	EditGuildCommand   = Route{http.MethodPatch, "/applications/{application.id}/guilds/{guild.id}/commands/{command.id}"}
	DeleteGuildCommand = Route{http.MethodDelete, "/applications/{application.id}/guilds/{guild.id}/commands/{command.id}"}
)

// Compile substitutes the route's placeholders with args, in order. The
// number of args must match the number of placeholders exactly.
func (r Route) Compile(args ...string) (CompiledRoute, error) {
	var sb strings.Builder

	path := r.Path
	used := 0

	for {
		start := strings.IndexByte(path, '{')
		if start == -1 {
			break
		}

		end := strings.IndexByte(path, '}')
		if end == -1 || end < start {
			return CompiledRoute{}, fmt.Errorf("malformed route path %q", r.Path)
		}

		if used >= len(args) {
			return CompiledRoute{}, fmt.Errorf("route %q needs more than %d args", r.Path, len(args))
		}

		sb.WriteString(path[:start])
		sb.WriteString(args[used])
		used++

		path = path[end+1:]
	}

	sb.WriteString(path)

	if used != len(args) {
		return CompiledRoute{}, fmt.Errorf("route %q takes %d args, got %d", r.Path, used, len(args))
	}

	return CompiledRoute{Method: r.Method, Path: sb.String()}, nil
}
