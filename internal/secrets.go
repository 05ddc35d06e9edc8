package internal

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Secrets is the operator-managed access file: portal users with their
// passwords and viewable customer names, and login-free URL tokens.
//
//	customers:
//	  user1:
//	    password: hunter2
//	    customer_names: ["Acme Corp", "Beta Industries"]
//	tokens:
//	  abc123xyz: "Acme Corp"
//	  def456uvw: ["Trans East Trailers Moncton", "Trans East Trailers Ontario"]
type Secrets struct {
	Customers map[string]CustomerEntry `yaml:"customers"`
	Tokens    map[string]CustomerNames `yaml:"tokens"`
}

type CustomerEntry struct {
	Password      string        `yaml:"password"`
	CustomerNames CustomerNames `yaml:"customer_names"`
	// CustomerName is the legacy single-name form, still accepted.
	CustomerName string `yaml:"customer_name"`
}

// CustomerNames decodes from either a single scalar or a sequence.
type CustomerNames []string

func (c *CustomerNames) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*c = CustomerNames{s}
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return err
	}
	*c = CustomerNames(list)
	return nil
}

func LoadSecrets(path string) (*Secrets, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read secrets file: %w", err)
	}
	return ParseSecrets(b)
}

func ParseSecrets(b []byte) (*Secrets, error) {
	var s Secrets
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse secrets file: %w", err)
	}
	return &s, nil
}

// VerifyLogin checks credentials and returns the customer names the user may
// view. Unknown users and wrong passwords both come back as not ok.
func (s *Secrets) VerifyLogin(username, password string) ([]string, bool) {
	entry, ok := s.Customers[strings.TrimSpace(username)]
	if !ok || entry.Password != password {
		return nil, false
	}
	if len(entry.CustomerNames) > 0 {
		return entry.CustomerNames, true
	}
	if entry.CustomerName != "" {
		return []string{entry.CustomerName}, true
	}
	return nil, false
}

// ResolveToken maps a URL token to customer names without a login.
func (s *Secrets) ResolveToken(token string) ([]string, bool) {
	names, ok := s.Tokens[strings.TrimSpace(token)]
	if !ok || len(names) == 0 {
		return nil, false
	}
	return names, true
}
