package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mybank-dev/mybank/internal/session"
)

// ErrInvalidAmount is returned by ParseAmount for input that is not a whole,
// non-negative number.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseAction maps a menu choice, given by number ("2") or label
// ("withdraw", "2. Withdraw"), to a session.Action.
func ParseAction(input string) (session.Action, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return 0, fmt.Errorf("empty choice: %w", session.ErrUnknownAction)
	}

	num, label, hasDot := strings.Cut(s, ".")
	if !hasDot {
		num, label = s, s
	}
	num = strings.TrimSpace(num)
	label = strings.TrimSpace(label)

	if n, err := strconv.Atoi(num); err == nil {
		for _, a := range session.Actions {
			if int(a) == n {
				return a, nil
			}
		}
	}
	for _, a := range session.Actions {
		if label == strings.ToLower(a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("choice %q: %w", input, session.ErrUnknownAction)
}

// ParseAmount parses a whole, non-negative amount. Zero is accepted; the
// controller decides whether it is usable.
func ParseAmount(input string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", input, ErrInvalidAmount)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount %q is negative: %w", input, ErrInvalidAmount)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("amount %q is not a whole number: %w", input, ErrInvalidAmount)
	}
	if !d.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %q is too large: %w", input, ErrInvalidAmount)
	}
	return d.IntPart(), nil
}
