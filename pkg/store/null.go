package store

import "context"

// Null is a no-op store that never keeps anything.
// It backs clients configured without a store.
type Null struct{}

// NewNull creates a null store.
func NewNull() Store {
	return Null{}
}

// Get always returns a miss.
func (Null) Get(ctx context.Context, name string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (Null) Set(ctx context.Context, name string, data []byte) error {
	return nil
}

// Delete does nothing.
func (Null) Delete(ctx context.Context, name string) error {
	return nil
}

// Close does nothing.
func (Null) Close() error {
	return nil
}

// Ensure Null implements Store.
var _ Store = Null{}
