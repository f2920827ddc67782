package console

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mybank-dev/mybank/internal/session"
)

func runScript(t *testing.T, lines ...string) (*session.Controller, string) {
	t.Helper()
	ctrl := session.New()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	c := New(in, &out, ctrl, Options{Title: "MyBank App", Tagline: "Secure & Simple Banking"})
	require.NoError(t, c.Run())
	return ctrl, out.String()
}

func TestRun_FullSession(t *testing.T) {
	ctrl, out := runScript(t,
		"Asha", "1234",
		"1234",
		"1", "500",
		"2", "200",
		"2", "1000",
		"3",
		"4",
		"1234",
	)

	st := ctrl.State()
	assert.True(t, st.LoggedIn)
	assert.Equal(t, int64(300), st.Account.Balance())

	assert.Contains(t, out, "MyBank App")
	assert.Contains(t, out, "[success] Account created for Asha! Now log in.")
	assert.Contains(t, out, "== Welcome, Asha! ==")
	assert.Contains(t, out, "[success] ₹500 deposited successfully. New balance is ₹500")
	assert.Contains(t, out, "[success] ₹200 withdrawn successfully. New balance is ₹300")
	assert.Contains(t, out, "[error] Insufficient balance.")
	assert.Contains(t, out, "[info] Asha, your current balance is ₹300")
	assert.Contains(t, out, "[info] You've been logged out. See you soon!")
	assert.Equal(t, 2, strings.Count(out, "Logged in successfully!"))
}

func TestRun_RejectsBadInputAndReprompts(t *testing.T) {
	ctrl, out := runScript(t,
		"   ", "1234",
		"Asha", "12a4",
		"Asha", "1234",
		"9999",
		"1234",
		"7",
		"1", "ten",
		"1", "0",
		"2", "-3",
	)

	st := ctrl.State()
	require.NotNil(t, st.Account)
	assert.Equal(t, int64(0), st.Account.Balance())

	assert.Contains(t, out, "[error] Please enter a valid name.")
	assert.Contains(t, out, "[error] PIN must be exactly 4 digits.")
	assert.Contains(t, out, "[error] Incorrect PIN. Try again.")
	assert.Contains(t, out, "[error] Please choose one of the listed options.")
	assert.Equal(t, 2, strings.Count(out, "[error] Please enter a whole, non-negative amount."))
	assert.Contains(t, out, "[warning] Amount must be greater than zero.")
}

func TestRun_EmptyInput(t *testing.T) {
	ctrl := session.New()
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, ctrl, Options{Title: "MyBank App"})

	require.NoError(t, c.Run())
	assert.Equal(t, session.StepCreateAccount, ctrl.State().Step)
	assert.Contains(t, out.String(), "Create Your Bank Account")
}

func TestRun_Icons(t *testing.T) {
	ctrl := session.New()
	var out bytes.Buffer
	c := New(strings.NewReader("Asha\n1234\n"), &out, ctrl, Options{Title: "MyBank App", Icons: true})

	require.NoError(t, c.Run())
	assert.Contains(t, out.String(), "✅ Account created for Asha! Now log in.")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestRun_ReadError(t *testing.T) {
	c := New(failingReader{}, &bytes.Buffer{}, session.New(), Options{})
	err := c.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input")
}

func TestPromptSecret_NonTerminalFallsBackToScanner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("Asha\n1234\n1234\n"), 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	ctrl := session.New()
	var out bytes.Buffer
	c := New(f, &out, ctrl, Options{Title: "MyBank App"})
	assert.Nil(t, c.tty)

	require.NoError(t, c.Run())
	assert.True(t, ctrl.State().LoggedIn)
	assert.Contains(t, out.String(), "Logged in successfully!")
}

func TestRun_MenuHeadings(t *testing.T) {
	_, out := runScript(t, "Asha", "1234", "1234")

	assert.Contains(t, out, "== Asha, your current balance is ₹0 ==")
	assert.Contains(t, out, "== Main Menu ==")
	assert.NotContains(t, out, "###")
	assert.NotContains(t, out, "---")
}
