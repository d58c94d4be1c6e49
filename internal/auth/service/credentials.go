package service

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ugchub/ugchub-backend/internal/auth/domain"
)

//go:embed seed/credentials.yaml
var defaultCredentialsYAML []byte

// CredentialMatcher decides whether a login attempt is accepted and which
// display name the new identity gets.
type CredentialMatcher interface {
	Match(email, password string, role domain.Role) (name string, ok bool)
}

// CredentialTable is the static test-credential table, one entry per role.
type CredentialTable map[domain.Role]domain.Credential

// DefaultCredentials returns the embedded development table.
func DefaultCredentials() CredentialTable {
	table, err := ParseCredentials(defaultCredentialsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded credentials: %v", err))
	}
	return table
}

// LoadCredentials reads a YAML table from path, or the embedded one when path is empty.
func LoadCredentials(path string) (CredentialTable, error) {
	if path == "" {
		return DefaultCredentials(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials %s: %w", path, err)
	}
	return ParseCredentials(data)
}

// ParseCredentials decodes a YAML document mapping role to credential.
func ParseCredentials(data []byte) (CredentialTable, error) {
	var raw map[string]domain.Credential
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	table := make(CredentialTable, len(raw))
	for key, cred := range raw {
		role := domain.Role(key)
		if !role.Valid() {
			return nil, fmt.Errorf("parse credentials: %w: %q", domain.ErrUnknownRole, key)
		}
		if cred.Email == "" || cred.Password == "" {
			return nil, fmt.Errorf("parse credentials: role %q needs email and password", key)
		}
		table[role] = cred
	}
	return table, nil
}

func (t CredentialTable) Match(email, password string, role domain.Role) (string, bool) {
	cred, ok := t[role]
	if !ok {
		return "", false
	}
	if email != cred.Email || password != cred.Password {
		return "", false
	}
	return cred.Name, true
}

// LooseCredentials accepts any non-empty email and password for a known role.
type LooseCredentials struct{}

func (LooseCredentials) Match(email, password string, role domain.Role) (string, bool) {
	if !role.Valid() || strings.TrimSpace(email) == "" || password == "" {
		return "", false
	}
	name := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		name = email[:at]
	}
	return name, true
}
