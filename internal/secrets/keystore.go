// Package secrets stores node API keys in the OS keychain so they never
// land in config.json.
package secrets

import (
	"fmt"
	"runtime"

	"github.com/99designs/keyring"
)

const keychainService = "nearctl"

// Store is the minimal secret-storage surface the CLI needs.
type Store interface {
	Set(name, value string) error
	Get(name string) (string, error)
	Delete(name string) error
}

// Keystore wraps OS keychain access.
type Keystore struct {
	ring keyring.Keyring
}

// DefaultKeystore returns a keystore backed by the OS keychain.
func DefaultKeystore() *Keystore {
	cfg := keyring.Config{
		ServiceName:              keychainService,
		KeychainTrustApplication: true,
	}

	// On Linux without a GUI, fall back to file-based storage.
	if runtime.GOOS == "linux" {
		cfg.AllowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.FileBackend,
		}
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		ring, _ = keyring.Open(keyring.Config{
			ServiceName:     keychainService,
			AllowedBackends: []keyring.BackendType{keyring.FileBackend},
		})
	}

	return &Keystore{ring: ring}
}

// Set saves a secret under name.
func (k *Keystore) Set(name, value string) error {
	if k.ring == nil {
		return fmt.Errorf("keystore not available")
	}
	err := k.ring.Set(keyring.Item{
		Key:  keychainService + "." + name,
		Data: []byte(value),
	})
	if err != nil {
		return fmt.Errorf("keychain store: %w", err)
	}
	return nil
}

// Get fetches a secret by name.
func (k *Keystore) Get(name string) (string, error) {
	if k.ring == nil {
		return "", fmt.Errorf("keystore not available")
	}
	item, err := k.ring.Get(keychainService + "." + name)
	if err != nil {
		return "", fmt.Errorf("keychain retrieve: %w", err)
	}
	return string(item.Data), nil
}

// Delete removes a stored secret. Deleting a missing secret is not an
// error.
func (k *Keystore) Delete(name string) error {
	if k.ring == nil {
		return nil
	}
	err := k.ring.Remove(keychainService + "." + name)
	if err == keyring.ErrKeyNotFound {
		return nil
	}
	return err
}

// InMemory is a Store that keeps secrets in memory (for tests).
type InMemory struct {
	data map[string]string
}

// NewInMemory creates an in-memory secret store.
func NewInMemory() *InMemory {
	return &InMemory{data: make(map[string]string)}
}

func (m *InMemory) Set(name, value string) error {
	m.data[name] = value
	return nil
}

func (m *InMemory) Get(name string) (string, error) {
	v, ok := m.data[name]
	if !ok {
		return "", fmt.Errorf("secret not found: %s", name)
	}
	return v, nil
}

func (m *InMemory) Delete(name string) error {
	delete(m.data, name)
	return nil
}
