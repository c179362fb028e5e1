package registrar

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"

	"swallowtail/interactions"
)

// HashCommand returns a deterministic hash of a command's canonical wire
// form. The builders serialize with fixed field order and insertion-ordered
// choices, so the serialized bytes are stable across runs.
func HashCommand(builder *interactions.CommandBuilder) (string, error) {
	payload, err := japi.Marshal(builder)
	if err != nil {
		return "", err
	}

	sum := sha1.Sum(payload)

	return fmt.Sprintf("%x", sum), nil
}

// cachePath returns the hash cache file for one scope.
func cachePath(dir string, guildID string) string {
	scope := guildID
	if scope == "" {
		scope = "global"
	}

	return filepath.Join(dir, scope+".json")
}

// loadHashes loads the name-to-hash cache for a scope. A missing or broken
// cache yields an empty map, which forces a full sync.
func loadHashes(dir string, guildID string) map[string]string {
	hashes := make(map[string]string)

	raw, err := os.ReadFile(cachePath(dir, guildID))
	if err == nil {
		_ = japi.Unmarshal(raw, &hashes)
	}

	return hashes
}

// saveHashes persists the name-to-hash cache for a scope. Failures are not
// fatal; the next run just syncs everything again.
func saveHashes(dir string, guildID string, hashes map[string]string) {
	path := cachePath(dir, guildID)

	_ = os.MkdirAll(filepath.Dir(path), 0755)

	raw, err := japi.MarshalIndent(hashes, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, raw, 0644)
}
