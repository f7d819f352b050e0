package hashing

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe driver registry and dispatcher.
//
// A Manager is itself a [Crypter]: [Manager.Crypt] reads the algorithm id
// from the salt spec and forwards the call to the matching driver, so the
// search engine can crack any registered family without knowing which one
// produced a given shadow entry.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (RegisterDriver, SetDefaultDriver) while
// allowing concurrent reads (Crypt, Make, etc.).
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Crypter
	def     DriverName
}

// NewManager creates an empty Manager with the given default driver name.
// The default driver is only consulted by [Manager.Make].
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Crypter),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with every built-in driver registered.
// The default driver is [DriverSHA512Crypt].
func NewDefaultManager() (*Manager, error) {
	argon2iC, err := NewArgon2iCrypter(DefaultArgon2Options())
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create default argon2i crypter: %w", err)
	}
	argon2idC, err := NewArgon2idCrypter(DefaultArgon2Options())
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create default argon2id crypter: %w", err)
	}

	m := NewManager(DriverSHA512Crypt)
	_ = m.RegisterDriver(DriverMD5Crypt, NewMD5Crypter())
	_ = m.RegisterDriver(DriverAPR1, NewAPR1Crypter())
	_ = m.RegisterDriver(DriverSHA256Crypt, NewSHA256Crypter())
	_ = m.RegisterDriver(DriverSHA512Crypt, NewSHA512Crypter())
	_ = m.RegisterDriver(DriverYescrypt, NewYescryptCrypter())
	_ = m.RegisterDriver(DriverArgon2i, argon2iC)
	_ = m.RegisterDriver(DriverArgon2id, argon2idC)
	return m, nil
}

// RegisterDriver adds or replaces a named crypter in the Manager.
func (m *Manager) RegisterDriver(name DriverName, c Crypter) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if c == nil {
		return ErrNilCrypter
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = c
	return nil
}

// Driver returns the [Crypter] registered under name, or [ErrDriverNotFound]
// if no such driver has been registered.
func (m *Manager) Driver(name DriverName) (Crypter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return c, nil
}

// SetDefaultDriver changes the driver used by [Manager.Make]. The named
// driver must already be registered.
func (m *Manager) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterDriver first",
			ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the name of the currently configured default driver.
func (m *Manager) DefaultDriver() DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasDriver reports whether a driver with the given name is registered.
func (m *Manager) HasDriver(name DriverName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Supports reports whether saltSpec names an algorithm with a registered
// driver. Callers use it to reject a shadow entry before starting a search
// that could never succeed.
func (m *Manager) Supports(saltSpec string) bool {
	_, err := m.resolveBySpec(saltSpec)
	return err == nil
}

// Crypt hashes candidate with the driver named by the algorithm id in
// saltSpec.
//
// Returns [ErrInvalidSaltSpec] if the id is unrecognised and
// [ErrDriverNotFound] if it is recognised but not registered.
func (m *Manager) Crypt(candidate, saltSpec string) (string, error) {
	c, err := m.resolveBySpec(saltSpec)
	if err != nil {
		return "", err
	}
	return c.Crypt(candidate, saltSpec)
}

// Make hashes password with a fresh salt using the default driver.
func (m *Manager) Make(password string) (string, error) {
	return m.MakeWith(m.DefaultDriver(), password)
}

// MakeWith hashes password with a fresh salt using the named driver.
// Returns [ErrMakeUnsupported] when the driver does not implement [Maker].
func (m *Manager) MakeWith(name DriverName, password string) (string, error) {
	c, err := m.Driver(name)
	if err != nil {
		return "", err
	}
	mk, ok := c.(Maker)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMakeUnsupported, name)
	}
	return mk.Make(password)
}

// ──────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────────────────────────────────

func (m *Manager) resolveBySpec(saltSpec string) (Crypter, error) {
	name, ok := DetectDriver(saltSpec)
	if !ok {
		return nil, fmt.Errorf("%w: unknown algorithm in %q", ErrInvalidSaltSpec, saltSpec)
	}
	return m.Driver(name)
}
