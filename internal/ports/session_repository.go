package ports

import (
	"context"

	"github.com/bnema/quotevault-cli/internal/domain"
)

// SessionRepository persists the durable part of a session: the random user
// id and the display name. Transient intent (pending deletes) is never saved.
type SessionRepository interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
}
