// pkg/store/store.go
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Env describes a linked environment found under a root
type Env struct {
	Root        string // root directory containing the environment
	Key         string // association key directory name
	Interpreter string // interpreter name the environment was built for
	BinDir      string // absolute path of the executable directory
}

// Key returns the association key for a project path: the fixed tag
// followed by the hex SHA-256 digest of the path string. Stable across
// runs; distinct paths collide only under a digest collision.
func Key(path string) string {
	sum := sha256.Sum256([]byte(path))
	return KeyPrefix + "_" + hex.EncodeToString(sum[:])
}

// EnvDir returns the environment directory for a (root, path, interpreter)
// triple: <root>/<key>/<interpreter>.
func EnvDir(root, path, interpreter string) string {
	return filepath.Join(root, Key(path), interpreter)
}

// BinDir returns the executable directory inside the environment for a
// (root, path, interpreter) triple.
func BinDir(root, path, interpreter string) string {
	return filepath.Join(EnvDir(root, path, interpreter), BinDirName())
}

// HasLinkedEnv reports whether an environment is already linked for the
// given interpreter and path under root. An environment counts as linked
// if and only if its executable directory exists.
func HasLinkedEnv(root, interpreter, path string) bool {
	info, err := os.Stat(BinDir(root, path, interpreter))
	return err == nil && info.IsDir()
}

// ListEnvs enumerates the linked environments under root. Entries that
// do not carry the key prefix, and interpreter directories without an
// executable directory, are skipped.
func ListEnvs(root string) ([]Env, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading root %s: %w", root, err)
	}

	var envs []Env
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), KeyPrefix+"_") {
			continue
		}

		keyDir := filepath.Join(root, entry.Name())
		interpreters, err := os.ReadDir(keyDir)
		if err != nil {
			return nil, fmt.Errorf("reading key directory %s: %w", keyDir, err)
		}

		for _, interpreter := range interpreters {
			if !interpreter.IsDir() {
				continue
			}
			binDir := filepath.Join(keyDir, interpreter.Name(), BinDirName())
			if info, err := os.Stat(binDir); err != nil || !info.IsDir() {
				continue
			}
			envs = append(envs, Env{
				Root:        root,
				Key:         entry.Name(),
				Interpreter: interpreter.Name(),
				BinDir:      binDir,
			})
		}
	}

	return envs, nil
}
