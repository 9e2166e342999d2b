package toml

import (
	"fmt"

	"github.com/bnema/quotevault-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Session sessionSchema `toml:"session"`
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	UserID   string `toml:"user_id"`
	Username string `toml:"username"`
}

func toSchema(session domain.Session) sessionSchema {
	return sessionSchema{
		UserID:   string(session.UserID),
		Username: session.Username,
	}
}

func fromSchema(session sessionSchema) domain.Session {
	return domain.Session{
		UserID:   domain.UserID(session.UserID),
		Username: session.Username,
	}
}
