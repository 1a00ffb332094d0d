package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// File stores each response as a plain file named after the request.
//
// The directory is created on the first write, not at construction, so a
// client that never receives a 200 leaves the filesystem untouched. Writes
// are not atomic: a crash mid-write can leave a truncated file behind.
type File struct {
	dir string
}

// Entry describes one stored response.
type Entry struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// NewFile creates a file store rooted at dir.
func NewFile(dir string) *File {
	return &File{dir: dir}
}

// Dir returns the store directory.
func (f *File) Dir() string { return f.dir }

// Get reads the file for name.
func (f *File) Get(ctx context.Context, name string) ([]byte, bool, error) {
	path, err := f.path(name)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set writes data to the file for name, creating the directory if needed
// and overwriting any existing file.
func (f *File) Set(ctx context.Context, name string, data []byte) error {
	path, err := f.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Delete removes the file for name.
func (f *File) Delete(ctx context.Context, name string) error {
	path, err := f.path(name)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for the file store.
func (f *File) Close() error {
	return nil
}

// List returns the stored responses sorted by name.
// A missing directory yields an empty list.
func (f *File) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(f.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue // removed while listing
		}
		entries = append(entries, Entry{Name: de.Name(), Size: info.Size(), ModTime: info.ModTime()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Clear removes every stored response and returns how many were removed.
// Subdirectories are left alone.
func (f *File) Clear() (int, error) {
	entries, err := f.List()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, e := range entries {
		if err := os.Remove(filepath.Join(f.dir, e.Name)); err == nil {
			count++
		}
	}
	return count, nil
}

// path maps a response name to a file inside the store directory.
func (f *File) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid store entry name %q", name)
	}
	return filepath.Join(f.dir, name), nil
}

// Ensure File implements Store.
var _ Store = (*File)(nil)
