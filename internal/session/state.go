package session

import "github.com/mybank-dev/mybank/internal/account"

// Step identifies the active screen of the session.
type Step string

const (
	StepCreateAccount Step = "create_account"
	StepMenu          Step = "menu"
)

// State is a snapshot of the session for the presentation layer. Account is
// nil until an account has been created.
type State struct {
	Step     Step
	LoggedIn bool // only meaningful when Step == StepMenu
	Account  *AccountInfo
}

// AccountInfo is a read-only view of the session's Account.
type AccountInfo struct {
	name    string
	balance int64
}

// Name returns the account holder's display name.
func (i *AccountInfo) Name() string { return i.name }

// Balance returns the balance at the time the snapshot was taken.
func (i *AccountInfo) Balance() int64 { return i.balance }

// sessionState is the state owned by a Controller. A session owns at most
// one Account.
type sessionState struct {
	Step     Step
	LoggedIn bool
	Account  *account.Account
}

// Action is a menu choice available once logged in.
type Action int

const (
	ActionDeposit Action = iota + 1
	ActionWithdraw
	ActionCheckBalance
	ActionLogout
)

// Actions lists the menu actions in display order.
var Actions = []Action{ActionDeposit, ActionWithdraw, ActionCheckBalance, ActionLogout}

func (a Action) String() string {
	switch a {
	case ActionDeposit:
		return "Deposit"
	case ActionWithdraw:
		return "Withdraw"
	case ActionCheckBalance:
		return "Check Balance"
	case ActionLogout:
		return "Logout"
	default:
		return "Unknown"
	}
}

// NeedsAmount reports whether the action takes an amount.
func (a Action) NeedsAmount() bool {
	return a == ActionDeposit || a == ActionWithdraw
}

// Level is the severity tag of a Message.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Message is the display result of a controller operation.
type Message struct {
	Level Level
	Text  string
}
