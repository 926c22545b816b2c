// Package storage persists attachment files. The local disk store is
// the default and backs the /uploads static route; the R2 store keeps
// files in Cloudflare R2 behind a public base URL.
package storage

import "io"

// FileStore saves and removes attachment files.
type FileStore interface {
	// Save writes the file under the given name and returns the public
	// URL clients use to fetch it.
	Save(filename, contentType string, r io.Reader) (string, error)
	// Remove deletes the stored file behind a previously returned URL.
	Remove(fileURL string) error
}
