package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mybank-dev/mybank/internal/session"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input string
		want  session.Action
	}{
		{"1", session.ActionDeposit},
		{" 2 ", session.ActionWithdraw},
		{"3", session.ActionCheckBalance},
		{"4", session.ActionLogout},
		{"deposit", session.ActionDeposit},
		{"Withdraw", session.ActionWithdraw},
		{"check balance", session.ActionCheckBalance},
		{"LOGOUT", session.ActionLogout},
		{"1. Deposit", session.ActionDeposit},
		{"3. Check Balance", session.ActionCheckBalance},
	}
	for _, tt := range tests {
		got, err := ParseAction(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseAction_Errors(t *testing.T) {
	for _, input := range []string{"", "  ", "0", "5", "transfer", "-1"} {
		_, err := ParseAction(input)
		assert.ErrorIs(t, err, session.ErrUnknownAction, "input %q", input)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"0", 0},
		{"500", 500},
		{" 42 ", 42},
		{"10.00", 10},
		{"1e3", 1000},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseAmount_Errors(t *testing.T) {
	for _, input := range []string{"", "abc", "-5", "12.5", "0.01", "99999999999999999999999"} {
		_, err := ParseAmount(input)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", input)
	}
}
