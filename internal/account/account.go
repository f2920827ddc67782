package account

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInsufficientBalance is returned when a withdrawal exceeds the balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrNegativeAmount is returned for deposits or withdrawals below zero.
	ErrNegativeAmount = errors.New("negative amount")
	// ErrBalanceOverflow is returned when a deposit would exceed the largest
	// representable balance.
	ErrBalanceOverflow = errors.New("balance overflow")
)

// DefaultCurrency is the symbol prefixed to amounts in messages.
const DefaultCurrency = "₹"

// Account is the single bank account held by a session.
type Account struct {
	name     string
	pin      string
	balance  int64
	currency string
}

// New creates an Account with a zero balance. The caller validates name and pin.
func New(name, pin, currency string) *Account {
	return &Account{name: name, pin: pin, currency: currency}
}

// Name returns the account holder's display name.
func (a *Account) Name() string {
	return a.name
}

// Balance returns the current balance in whole units.
func (a *Account) Balance() int64 {
	return a.balance
}

// VerifyPIN reports whether entered matches the stored PIN exactly.
func (a *Account) VerifyPIN(entered string) bool {
	return a.pin == entered
}

// Deposit adds amount to the balance and returns the confirmation message.
// A deposit that would overflow the balance is rejected and leaves it unchanged.
func (a *Account) Deposit(amount int64) (string, error) {
	if amount < 0 {
		return "", fmt.Errorf("deposit %d: %w", amount, ErrNegativeAmount)
	}
	if amount > math.MaxInt64-a.balance {
		return "Deposit exceeds the maximum balance.", ErrBalanceOverflow
	}
	a.balance += amount
	return fmt.Sprintf("%s deposited successfully. New balance is %s", a.money(amount), a.money(a.balance)), nil
}

// Withdraw subtracts amount from the balance. An amount larger than the
// balance is rejected with ErrInsufficientBalance and leaves it unchanged.
func (a *Account) Withdraw(amount int64) (string, error) {
	if amount < 0 {
		return "", fmt.Errorf("withdraw %d: %w", amount, ErrNegativeAmount)
	}
	if amount > a.balance {
		return "Insufficient balance.", ErrInsufficientBalance
	}
	a.balance -= amount
	return fmt.Sprintf("%s withdrawn successfully. New balance is %s", a.money(amount), a.money(a.balance)), nil
}

// CheckBalance returns the balance message. It never changes state.
func (a *Account) CheckBalance() string {
	return fmt.Sprintf("%s, your current balance is %s", a.name, a.money(a.balance))
}

func (a *Account) money(amount int64) string {
	return FormatMoney(a.currency, amount)
}

// FormatMoney renders amount with the currency symbol prefix, e.g. "₹500".
func FormatMoney(currency string, amount int64) string {
	return fmt.Sprintf("%s%d", currency, amount)
}
