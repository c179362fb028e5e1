// Package registrar converges the commands registered with Discord onto the
// set declared in configuration. Unchanged commands are detected through a
// persisted hash of their canonical serialized form and skipped.
package registrar

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"swallowtail/interactions"
	"swallowtail/rest"
)

var japi = jsoniter.ConfigCompatibleWithStandardLibrary

// Registrar syncs declared commands against one scope.
type Registrar struct {
	Client   *rest.Client
	Logger   *zap.Logger
	CacheDir string
}

// Sync creates, edits and deletes remote commands until they match builders.
// Commands whose hash matches the cached hash from the previous run are
// skipped without a request. Remote commands not declared locally are
// deleted.
func (r *Registrar) Sync(ctx context.Context, guildID string, builders []*interactions.CommandBuilder) error {
	cached := loadHashes(r.CacheDir, guildID)
	hashes := make(map[string]string, len(builders))

	existing, err := r.Client.GetCommands(ctx, guildID)
	if err != nil {
		return fmt.Errorf("fetching existing commands: %w", err)
	}

	remote := make(map[string]*interactions.Command, len(existing))

	for _, cmd := range existing {
		remote[cmd.Name()] = cmd
	}

	for _, builder := range builders {
		hash, err := HashCommand(builder)
		if err != nil {
			return fmt.Errorf("hashing command %s: %w", builder.Name(), err)
		}

		hashes[builder.Name()] = hash

		current, exists := remote[builder.Name()]

		if exists && cached[builder.Name()] == hash {
			r.Logger.Debug("Command unchanged, skipping", zap.String("command", builder.Name()))
			continue
		}

		if exists {
			if _, err := r.Client.EditCommand(ctx, current, builder); err != nil {
				return fmt.Errorf("editing command %s: %w", builder.Name(), err)
			}

			r.Logger.Info("Edited command", zap.String("command", builder.Name()))
		} else {
			if _, err := r.Client.CreateCommand(ctx, guildID, builder); err != nil {
				return fmt.Errorf("creating command %s: %w", builder.Name(), err)
			}

			r.Logger.Info("Created command", zap.String("command", builder.Name()))
		}
	}

	for name, cmd := range remote {
		if _, declared := hashes[name]; declared {
			continue
		}

		if err := r.Client.DeleteCommand(ctx, cmd); err != nil {
			return fmt.Errorf("deleting command %s: %w", name, err)
		}

		r.Logger.Info("Deleted stale command", zap.String("command", name))
	}

	saveHashes(r.CacheDir, guildID, hashes)

	return nil
}
