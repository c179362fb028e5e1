package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"swallowtail/data"
	"swallowtail/interactions"
)

var japi = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultAPIURL is the Discord REST API base used when none is configured.
const DefaultAPIURL = "https://discord.com/api/v10"

// APIError is a non-2xx response from the platform.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("discord api returned status %d: %s", e.StatusCode, e.Body)
}

// Client performs application command requests. All requests share a global
// rate limiter.
type Client struct {
	http          *http.Client
	limiter       *rate.Limiter
	logger        *zap.Logger
	token         string
	applicationID string
	baseURL       string
}

// New creates a client for the given bot token and application id.
func New(token string, applicationID string, logger *zap.Logger) *Client {
	return &Client{
		http:          &http.Client{Timeout: 30 * time.Second},
		limiter:       rate.NewLimiter(rate.Every(25*time.Millisecond), 1),
		logger:        logger,
		token:         token,
		applicationID: applicationID,
		baseURL:       DefaultAPIURL,
	}
}

// SetBaseURL overrides the API base URL. Used for tests and proxies.
func (c *Client) SetBaseURL(url string) *Client {
	c.baseURL = url
	return c
}

// GetCommands fetches the registered commands for the given scope. An empty
// guildID fetches global commands.
func (c *Client) GetCommands(ctx context.Context, guildID string) ([]*interactions.Command, error) {
	var (
		route CompiledRoute
		err   error
	)

	if guildID != "" {
		route, err = GetGuildCommands.Compile(c.applicationID, guildID)
	} else {
		route, err = GetGlobalCommands.Compile(c.applicationID)
	}

	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, route, nil)
	if err != nil {
		return nil, err
	}

	arr, err := data.DecodeArray(body)
	if err != nil {
		return nil, err
	}

	commands := make([]*interactions.Command, 0, len(arr))

	for _, el := range arr {
		obj, err := data.ToObject(el)
		if err != nil {
			return nil, err
		}

		cmd, err := interactions.ParseCommandObject(obj, guildID)
		if err != nil {
			return nil, err
		}

		commands = append(commands, cmd)
	}

	return commands, nil
}

// CreateCommand registers a new command in the given scope and returns the
// parsed result.
func (c *Client) CreateCommand(ctx context.Context, guildID string, builder *interactions.CommandBuilder) (*interactions.Command, error) {
	var (
		route CompiledRoute
		err   error
	)

	if guildID != "" {
		route, err = CreateGuildCommand.Compile(c.applicationID, guildID)
	} else {
		route, err = CreateGlobalCommand.Compile(c.applicationID)
	}

	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, route, builder)
	if err != nil {
		return nil, err
	}

	return interactions.ParseCommand(body, guildID)
}

// EditCommand replaces the definition of an existing command. The command's
// recorded scope selects the guild or global route.
func (c *Client) EditCommand(ctx context.Context, cmd *interactions.Command, builder *interactions.CommandBuilder) (*interactions.Command, error) {
	var (
		route CompiledRoute
		err   error
	)

	if cmd.GuildID() != "" {
		route, err = EditGuildCommand.Compile(c.applicationID, cmd.GuildID(), cmd.IDString())
	} else {
		route, err = EditGlobalCommand.Compile(c.applicationID, cmd.IDString())
	}

	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, route, builder)
	if err != nil {
		return nil, err
	}

	return interactions.ParseCommand(body, cmd.GuildID())
}

// DeleteCommand removes an existing command, routed by its recorded scope.
// Deleting a global command may take up to an hour to propagate to clients.
func (c *Client) DeleteCommand(ctx context.Context, cmd *interactions.Command) error {
	var (
		route CompiledRoute
		err   error
	)

	if cmd.GuildID() != "" {
		route, err = DeleteGuildCommand.Compile(c.applicationID, cmd.GuildID(), cmd.IDString())
	} else {
		route, err = DeleteGlobalCommand.Compile(c.applicationID, cmd.IDString())
	}

	if err != nil {
		return err
	}

	_, err = c.do(ctx, route, nil)

	return err
}

func (c *Client) do(ctx context.Context, route CompiledRoute, body any) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reader io.Reader

	if body != nil {
		payload, err := japi.Marshal(body)
		if err != nil {
			return nil, err
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, route.Method, c.baseURL+route.Path, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bot "+c.token)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("Performing API request", zap.String("method", route.Method), zap.String("path", route.Path))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}
