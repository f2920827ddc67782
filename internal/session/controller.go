package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mybank-dev/mybank/internal/account"
)

// PINLength is the required number of digits in a PIN.
const PINLength = 4

// Controller sequences the create-account, login and menu steps and
// dispatches menu actions to the session's Account.
type Controller struct {
	state    sessionState
	currency string
	logger   *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithCurrency sets the currency symbol used by the created Account.
func WithCurrency(symbol string) Option {
	return func(c *Controller) { c.currency = symbol }
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// New creates a Controller in the create_account step.
func New(opts ...Option) *Controller {
	c := &Controller{
		state:    sessionState{Step: StepCreateAccount},
		currency: account.DefaultCurrency,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the session. The account in it cannot be
// modified; all changes go through the Controller.
func (c *Controller) State() State {
	st := State{Step: c.state.Step, LoggedIn: c.state.LoggedIn}
	if a := c.state.Account; a != nil {
		st.Account = &AccountInfo{name: a.Name(), balance: a.Balance()}
	}
	return st
}

// CreateAccount validates name and pin and, on success, creates the Account
// and moves to the logged-out menu.
func (c *Controller) CreateAccount(name, pin string) (Message, error) {
	if c.state.Step != StepCreateAccount {
		return c.wrongStep("create account")
	}
	if strings.TrimSpace(name) == "" {
		c.logger.Debug("account creation rejected", "reason", "empty name")
		return errorMsg("Please enter a valid name."), ErrInvalidName
	}
	if !ValidPIN(pin) {
		c.logger.Debug("account creation rejected", "reason", "malformed pin", "length", len(pin))
		return errorMsg("PIN must be exactly 4 digits."), ErrInvalidPIN
	}

	c.state.Account = account.New(name, pin, c.currency)
	c.state.Step = StepMenu
	c.state.LoggedIn = false
	c.logger.Debug("account created", "name", name, "step", c.state.Step)
	return Message{Level: LevelSuccess, Text: fmt.Sprintf("Account created for %s! Now log in.", name)}, nil
}

// Login checks pin against the Account. Retries are unlimited.
func (c *Controller) Login(pin string) (Message, error) {
	if c.state.Step != StepMenu || c.state.LoggedIn {
		return c.wrongStep("login")
	}
	if !c.state.Account.VerifyPIN(pin) {
		c.logger.Debug("login failed")
		return errorMsg("Incorrect PIN. Try again."), ErrIncorrectPIN
	}
	c.state.LoggedIn = true
	c.logger.Debug("logged in")
	return Message{Level: LevelSuccess, Text: "Logged in successfully!"}, nil
}

// Perform runs a menu action. amount is ignored for actions that take none.
func (c *Controller) Perform(action Action, amount int64) (Message, error) {
	switch action {
	case ActionDeposit:
		return c.Deposit(amount)
	case ActionWithdraw:
		return c.Withdraw(amount)
	case ActionCheckBalance:
		return c.CheckBalance()
	case ActionLogout:
		return c.Logout()
	default:
		return errorMsg(fmt.Sprintf("Unknown action %d.", int(action))), ErrUnknownAction
	}
}

// Deposit adds a positive amount to the Account.
func (c *Controller) Deposit(amount int64) (Message, error) {
	if !c.loggedIn() {
		return c.wrongStep("deposit")
	}
	if amount <= 0 {
		return zeroAmountWarning(), ErrNonPositiveAmount
	}
	text, err := c.state.Account.Deposit(amount)
	if errors.Is(err, account.ErrBalanceOverflow) {
		c.logger.Debug("deposit rejected", "amount", amount, "balance", c.state.Account.Balance())
		return errorMsg(text), err
	}
	if err != nil {
		return errorMsg(err.Error()), err
	}
	c.logger.Debug("deposit", "amount", amount, "balance", c.state.Account.Balance())
	return Message{Level: LevelSuccess, Text: text}, nil
}

// Withdraw removes a positive amount from the Account.
func (c *Controller) Withdraw(amount int64) (Message, error) {
	if !c.loggedIn() {
		return c.wrongStep("withdraw")
	}
	if amount <= 0 {
		return zeroAmountWarning(), ErrNonPositiveAmount
	}
	text, err := c.state.Account.Withdraw(amount)
	if errors.Is(err, account.ErrInsufficientBalance) {
		c.logger.Debug("withdraw rejected", "amount", amount, "balance", c.state.Account.Balance())
		return errorMsg(text), err
	}
	if err != nil {
		return errorMsg(err.Error()), err
	}
	c.logger.Debug("withdraw", "amount", amount, "balance", c.state.Account.Balance())
	return Message{Level: LevelSuccess, Text: text}, nil
}

// CheckBalance reports the current balance.
func (c *Controller) CheckBalance() (Message, error) {
	if !c.loggedIn() {
		return c.wrongStep("check balance")
	}
	return Message{Level: LevelInfo, Text: c.state.Account.CheckBalance()}, nil
}

// Logout returns the session to PIN entry. The Account is kept.
func (c *Controller) Logout() (Message, error) {
	if !c.loggedIn() {
		return c.wrongStep("logout")
	}
	c.state.LoggedIn = false
	c.logger.Debug("logged out")
	return Message{Level: LevelInfo, Text: "You've been logged out. See you soon!"}, nil
}

// Welcome returns the heading shown while logged out.
func (c *Controller) Welcome() string {
	if c.state.Account == nil {
		return ""
	}
	return fmt.Sprintf("Welcome, %s!", c.state.Account.Name())
}

// BalanceBanner returns the balance line shown at the top of the menu.
func (c *Controller) BalanceBanner() string {
	if !c.loggedIn() {
		return ""
	}
	return c.state.Account.CheckBalance()
}

// ValidPIN reports whether pin is exactly PINLength ASCII digits.
func ValidPIN(pin string) bool {
	if len(pin) != PINLength {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

func (c *Controller) loggedIn() bool {
	return c.state.Step == StepMenu && c.state.LoggedIn
}

func (c *Controller) wrongStep(op string) (Message, error) {
	c.logger.Debug("operation rejected", "op", op, "step", c.state.Step, "logged_in", c.state.LoggedIn)
	return errorMsg(fmt.Sprintf("Cannot %s right now.", op)), fmt.Errorf("%s: %w", op, ErrWrongStep)
}

func errorMsg(text string) Message {
	return Message{Level: LevelError, Text: text}
}

func zeroAmountWarning() Message {
	return Message{Level: LevelWarning, Text: "Amount must be greater than zero."}
}
