package identity

import (
	"crypto/subtle"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Verifier checks an employee ID and password against a credential table.
type Verifier interface {
	Verify(employeeID, password string) bool
}

// CredentialsFile is the on-disk shape of a credential table.
type CredentialsFile struct {
	Users map[string]string `yaml:"users"`
}

var _ Verifier = (*Registry)(nil)

// Registry maps employee IDs to secrets. A secret is either a bcrypt hash
// or a plaintext password.
type Registry struct {
	mu    sync.RWMutex
	users map[string]string
}

// DefaultUsers is the built-in credential table used when no file is configured.
func DefaultUsers() map[string]string {
	return map[string]string{
		"emp001": "123",
		"admin":  "Adminprivilage@45786",
	}
}

// NewRegistry creates a Registry from an employee ID → secret map.
func NewRegistry(users map[string]string) *Registry {
	r := &Registry{}
	r.Replace(users)
	return r
}

// Load reads a credential table from a YAML file.
// Empty path returns the built-in table.
func Load(path string) (*Registry, error) {
	users, err := LoadUsers(path)
	if err != nil {
		return nil, err
	}
	return NewRegistry(users), nil
}

// LoadUsers reads the users map from a YAML file.
// Empty path returns DefaultUsers.
func LoadUsers(path string) (map[string]string, error) {
	if path == "" {
		return DefaultUsers(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}
	var f CredentialsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	if len(f.Users) == 0 {
		return nil, fmt.Errorf("credentials file %s defines no users", path)
	}
	return f.Users, nil
}

// Replace swaps the whole table.
func (r *Registry) Replace(users map[string]string) {
	cp := make(map[string]string, len(users))
	for id, secret := range users {
		cp[id] = secret
	}
	r.mu.Lock()
	r.users = cp
	r.mu.Unlock()
}

// IsRegistered returns true if the employee ID exists.
func (r *Registry) IsRegistered(employeeID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[employeeID]
	return ok
}

// Len returns the number of registered employees.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// Verify reports whether password matches the secret stored for employeeID.
func (r *Registry) Verify(employeeID, password string) bool {
	r.mu.RLock()
	secret, ok := r.users[employeeID]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if IsHash(secret) {
		return bcrypt.CompareHashAndPassword([]byte(secret), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(password)) == 1
}

// IsHash reports whether secret looks like a bcrypt hash.
func IsHash(secret string) bool {
	return strings.HasPrefix(secret, "$2a$") ||
		strings.HasPrefix(secret, "$2b$") ||
		strings.HasPrefix(secret, "$2y$")
}

// HashPassword returns a bcrypt hash suitable for a credentials file.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// DefaultCredentialsYAML returns a commented credentials file for init.
func DefaultCredentialsYAML() string {
	return `# svcprofile credentials
# Generated by: svcprofile init
#
# employee_id: secret
# A secret is either a plaintext password or a bcrypt hash
# (create one with: svcprofile hash-password).
users:
  emp001: "123"
`
}
