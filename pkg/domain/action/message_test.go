package action_test

import (
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/ClickGuard/pkg/domain"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/action"
	"github.com/NeuralTrust/ClickGuard/pkg/domain/decision"
	"github.com/stretchr/testify/assert"
)

func validMessage() action.Message {
	d := decision.NewBlock(decision.ReasonFraudDeviceFrequency, decision.ScopeSubnet24, "1.2.3.0/24")
	return action.NewMessage("acc-1", d, time.Now())
}

func TestMessage_Validate(t *testing.T) {
	assert.NoError(t, validMessage().Validate())

	exact := validMessage()
	exact.Target = "1.2.3.4"
	exact.Scope = decision.ScopeExact
	assert.NoError(t, exact.Validate())
}

func TestMessage_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *action.Message)
	}{
		{"missing account", func(m *action.Message) { m.AccountRef = "" }},
		{"missing reason", func(m *action.Message) { m.Reason = "" }},
		{"bad target", func(m *action.Message) { m.Target = "1.2.3" }},
		{"empty target", func(m *action.Message) { m.Target = "" }},
		{"unknown scope", func(m *action.Message) { m.Scope = "SUBNET_8" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMessage()
			tt.mutate(&m)
			err := m.Validate()
			assert.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidAction))
		})
	}
}
