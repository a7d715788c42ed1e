package action

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/domain"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/blocked"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/decision"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Message is the queued instruction to block a target on the ad platform.
type Message struct {
	ID         uuid.UUID      `json:"id" validate:"required"`
	AccountRef string         `json:"account_ref" validate:"required"`
	Target     string         `json:"target" validate:"required,ip|cidr"`
	Scope      decision.Scope `json:"scope" validate:"required,oneof=EXACT SUBNET_24 SUBNET_16"`
	Reason     string         `json:"reason" validate:"required"`
	DecisionID uuid.UUID      `json:"decision_id"`
	EnqueuedAt time.Time      `json:"enqueued_at" validate:"required"`
}

func NewMessage(accountRef string, d decision.Decision, now time.Time) Message {
	return Message{
		ID:         uuid.New(),
		AccountRef: accountRef,
		Target:     d.Target,
		Scope:      d.Scope,
		Reason:     string(d.Reason),
		DecisionID: d.ID,
		EnqueuedAt: now,
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate returns an error wrapping domain.ErrInvalidAction listing every
// failing field.
func (m Message) Validate() error {
	err := getValidator().Struct(m)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidAction, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s(%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidAction, strings.Join(fields, ", "))
}

type Status string

const (
	StatusApplied       Status = "applied"
	StatusAlreadyActive Status = "already_active"
	StatusFailed        Status = "failed"
	StatusInvalid       Status = "invalid"
	// StatusRetry marks a message whose outcome could not be recorded; it is
	// redelivered instead of committed.
	StatusRetry Status = "retry"
)

type Result struct {
	Status      Status
	Entry       *blocked.Entry
	OperationID string
	Attempts    int
	Err         error
}
