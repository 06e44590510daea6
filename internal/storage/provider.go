// Package storage defines the file-system abstraction the builder reads
// drafts from and writes the generated site into.
package storage

// Provider is the interface for file operations under a fixed root.
// All paths are relative to that root; anything escaping it is rejected.
type Provider interface {
	// List returns the names of files with extension ext directly under
	// dir, sorted by name. Subdirectories are not descended.
	List(dir, ext string) ([]string, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write atomically writes content to path, creating parent
	// directories as needed.
	Write(path string, content []byte) error
	// Remove deletes the file at path.
	Remove(path string) error
}
