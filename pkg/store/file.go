package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	tokenExt             = ".token"
	DirPerm  os.FileMode = 0o700 // Directory permission for store directories
	FilePerm os.FileMode = 0o600 // File permission for store files
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS - FILE UTILITIES

// ensureDir validates that dir is non-empty and creates it if needed.
func ensureDir(dir string) error {
	if dir == "" {
		return client.ErrBadParameter.With("directory is required")
	}
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	return nil
}

// hashPath returns the file path for a server URL in the given
// directory. The URL is hashed so the filename never leaks the server
// address and is always filesystem-safe.
func hashPath(dir, url, ext string) string {
	sum := sha256.Sum256([]byte(url))
	return filepath.Join(dir, hex.EncodeToString(sum[:])+ext)
}
