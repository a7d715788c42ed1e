package blocked

import (
	"context"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/decision"
	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=blocked_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	// Upsert inserts the entry or, when (account_ref, target, scope) exists,
	// reactivates it and bumps its hit metadata.
	Upsert(ctx context.Context, entry *Entry) error
	Find(ctx context.Context, accountRef, target string, scope decision.Scope) (*Entry, error)
	FindActive(ctx context.Context, accountRef, target string, scope decision.Scope) (*Entry, error)
	TouchHit(ctx context.Context, id uuid.UUID, seenAt time.Time) error
	Deactivate(ctx context.Context, id uuid.UUID, at time.Time) error
	ListActive(ctx context.Context, accountRef string, since time.Time, limit int) ([]*Entry, error)
	// ListExpired returns active temporary blocks whose expiry is not after at.
	ListExpired(ctx context.Context, at time.Time, limit int) ([]*Entry, error)
}
