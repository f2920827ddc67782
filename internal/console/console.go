package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mybank-dev/mybank/internal/session"
)

// Options controls rendering.
type Options struct {
	Title   string
	Tagline string
	Icons   bool
}

var icons = map[session.Level]string{
	session.LevelSuccess: "✅",
	session.LevelError:   "❌",
	session.LevelWarning: "⚠️",
	session.LevelInfo:    "ℹ️",
}

// Console drives a session.Controller over a line-oriented terminal.
type Console struct {
	in   *bufio.Scanner
	tty  *os.File // set when input is a terminal; PINs are read without echo
	out  io.Writer
	ctrl *session.Controller
	opts Options
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer, ctrl *session.Controller, opts Options) *Console {
	c := &Console{in: bufio.NewScanner(in), out: out, ctrl: ctrl, opts: opts}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.tty = f
	}
	return c
}

// errEOF signals that input ended and the session is over.
var errEOF = errors.New("end of input")

// Run processes interactions until input ends.
func (c *Console) Run() error {
	c.printf("%s\n", c.opts.Title)
	if c.opts.Tagline != "" {
		c.printf("%s\n", c.opts.Tagline)
	}

	for {
		var err error
		st := c.ctrl.State()
		switch {
		case st.Step == session.StepCreateAccount:
			err = c.createAccount()
		case !st.LoggedIn:
			err = c.login()
		default:
			err = c.menu()
		}
		if errors.Is(err, errEOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) createAccount() error {
	c.heading("Create Your Bank Account")
	name, err := c.prompt("Enter your name")
	if err != nil {
		return err
	}
	pin, err := c.promptSecret("Set a 4-digit PIN")
	if err != nil {
		return err
	}
	msg, _ := c.ctrl.CreateAccount(name, pin)
	c.show(msg)
	return nil
}

func (c *Console) login() error {
	c.heading(c.ctrl.Welcome())
	pin, err := c.promptSecret("Enter your PIN to continue")
	if err != nil {
		return err
	}
	msg, _ := c.ctrl.Login(pin)
	c.show(msg)
	return nil
}

func (c *Console) menu() error {
	c.heading(c.ctrl.BalanceBanner())
	c.heading("Main Menu")
	for _, a := range session.Actions {
		c.printf("  %d. %s\n", int(a), a)
	}
	choice, err := c.prompt("Select an option:")
	if err != nil {
		return err
	}
	action, err := ParseAction(choice)
	if err != nil {
		c.show(session.Message{Level: session.LevelError, Text: "Please choose one of the listed options."})
		return nil
	}

	var amount int64
	if action.NeedsAmount() {
		raw, err := c.prompt(fmt.Sprintf("Enter amount to %s:", strings.ToLower(action.String())))
		if err != nil {
			return err
		}
		amount, err = ParseAmount(raw)
		if err != nil {
			c.show(session.Message{Level: session.LevelError, Text: "Please enter a whole, non-negative amount."})
			return nil
		}
	}

	msg, _ := c.ctrl.Perform(action, amount)
	c.show(msg)
	return nil
}

func (c *Console) prompt(label string) (string, error) {
	c.printf("%s ", label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		c.printf("\n")
		return "", errEOF
	}
	return strings.TrimRight(c.in.Text(), "\r"), nil
}

// promptSecret reads a PIN. On a terminal the input is not echoed; other
// inputs are read like any prompt.
func (c *Console) promptSecret(label string) (string, error) {
	if c.tty == nil {
		return c.prompt(label)
	}
	c.printf("%s ", label)
	b, err := term.ReadPassword(int(c.tty.Fd()))
	c.printf("\n")
	if errors.Is(err, io.EOF) {
		return "", errEOF
	}
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(b), nil
}

func (c *Console) heading(text string) {
	c.printf("\n== %s ==\n", text)
}

func (c *Console) show(msg session.Message) {
	if c.opts.Icons {
		c.printf("%s %s\n", icons[msg.Level], msg.Text)
		return
	}
	c.printf("[%s] %s\n", msg.Level, msg.Text)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
