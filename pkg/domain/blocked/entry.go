package blocked

import (
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/domain/decision"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Entry is the persisted state of a block applied on the ad platform.
type Entry struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountRef     string         `json:"account_ref" gorm:"type:text;not null;uniqueIndex:idx_blocked_entries_key"`
	Target         string         `json:"target" gorm:"type:text;not null;uniqueIndex:idx_blocked_entries_key"`
	Scope          decision.Scope `json:"scope" gorm:"type:text;not null;uniqueIndex:idx_blocked_entries_key"`
	Reason         string         `json:"reason" gorm:"type:text;not null"`
	Reasons        pq.StringArray `json:"reasons" gorm:"type:text[]"`
	Active         bool           `json:"active" gorm:"not null;default:true"`
	Hits           int64          `json:"hits" gorm:"not null;default:1"`
	LastSeenAt     time.Time      `json:"last_seen_at"`
	UnblockedAt    *time.Time     `json:"unblocked_at,omitempty"`
	ExpiresAt      *time.Time     `json:"expires_at,omitempty"`
	OperationID    string         `json:"operation_id,omitempty" gorm:"type:text"`
	AlreadyBlocked bool           `json:"already_blocked"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.LastSeenAt.IsZero() {
		e.LastSeenAt = now
	}
	return nil
}

func (e *Entry) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return nil
}

func (e *Entry) TableName() string {
	return "blocked_entries"
}

// Expired reports whether a temporary block has run out at t.
func (e *Entry) Expired(t time.Time) bool {
	return e.ExpiresAt != nil && !t.Before(*e.ExpiresAt)
}
