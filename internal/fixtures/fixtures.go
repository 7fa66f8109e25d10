// Package fixtures loads demo users from YAML or JSONC files, so the table
// can be driven without a database.
package fixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/jask/jaskui/internal/database"
	"github.com/jask/jaskui/internal/database/repository"
)

// File is the on-disk shape shared by both formats.
type File struct {
	Users []User `yaml:"users" json:"users"`
}

type User struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Username string `yaml:"username" json:"username"`
	Email    string `yaml:"email" json:"email"`
	Role     string `yaml:"role" json:"role"`
	Status   string `yaml:"status" json:"status"`
}

// ParseYAML decodes a YAML fixture.
func ParseYAML(data []byte) ([]repository.User, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	return f.users()
}

// ParseJSONC strips comments and trailing commas, then decodes.
func ParseJSONC(data []byte) ([]repository.User, error) {
	var f File
	if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
		return nil, fmt.Errorf("parsing jsonc: %w", err)
	}
	return f.users()
}

// ReadFile picks the parser from the file extension.
func ReadFile(path string) ([]repository.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var users []repository.User
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		users, err = ParseYAML(data)
	case ".json", ".jsonc":
		users, err = ParseJSONC(data)
	default:
		return nil, fmt.Errorf("%s: unsupported fixture extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return users, nil
}

func (f File) users() ([]repository.User, error) {
	out := make([]repository.User, 0, len(f.Users))
	for idx, u := range f.Users {
		if strings.TrimSpace(u.Username) == "" {
			return nil, fmt.Errorf("user %d: username is required", idx+1)
		}
		status := repository.Status(strings.ToLower(strings.TrimSpace(u.Status)))
		switch status {
		case repository.StatusActive, repository.StatusPending, repository.StatusInactive:
		case "":
			status = repository.StatusPending
		default:
			return nil, fmt.Errorf("user %s: unknown status %q", u.Username, u.Status)
		}
		id := u.ID
		if id == "" {
			id = database.UserID(u.Username)
		}
		out = append(out, repository.User{
			ID:        id,
			Name:      u.Name,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			Status:    status,
			SortOrder: idx,
		})
	}
	return out, nil
}
