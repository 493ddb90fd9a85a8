package dashboard

import (
	"sync"
	"time"
)

// successTTL is the auto-dismiss window for success banners.
const successTTL = 3 * time.Second

// ConfirmFunc asks the operator to confirm a destructive action. A nil func
// means auto-confirm (headless use).
type ConfirmFunc func(prompt string) bool

// notices holds the per-dashboard banner state: success messages dismiss
// themselves, errors stay until cleared or superseded.
type notices struct {
	mu           sync.Mutex
	success      string
	successUntil time.Time
	errMsg       string
	now          func() time.Time
}

func (n *notices) clock() time.Time {
	if n.now != nil {
		return n.now()
	}
	return time.Now()
}

func (n *notices) flashSuccess(msg string) {
	n.mu.Lock()
	n.success = msg
	n.successUntil = n.clock().Add(successTTL)
	n.errMsg = ""
	n.mu.Unlock()
}

func (n *notices) setError(msg string) {
	n.mu.Lock()
	n.errMsg = msg
	n.mu.Unlock()
}

func (n *notices) clearError() {
	n.setError("")
}

// Success returns the transient notice, or "" once it has expired.
func (n *notices) Success() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.success != "" && n.clock().After(n.successUntil) {
		n.success = ""
	}
	return n.success
}

// Error returns the persistent notice until dismissed or superseded.
func (n *notices) Error() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.errMsg
}

func confirm(fn ConfirmFunc, prompt string) bool {
	if fn == nil {
		return true
	}
	return fn(prompt)
}
