// Package auth implements the single-tenant admin gate and the GitHub OAuth
// flow that feeds it. Exactly one configured username may manage the blog;
// everyone else is turned away no matter what identity they present.
package auth

import (
	"context"
	"strings"
	"time"
)

// GateState is one state of the admin authorization state machine.
type GateState string

const (
	StateLoading              GateState = "loading"
	StateReadyAuthenticated   GateState = "ready-authenticated"
	StateReadyUnauthenticated GateState = "ready-unauthenticated"
	StateUnauthorized         GateState = "unauthorized"
)

// Identity is an external identity assertion, typically produced by the
// OAuth callback.
type Identity struct {
	Username string
}

// Gate decides whether an asserted identity may manage the blog. It holds no
// mutable state; each decision is a pure function of the assertion.
type Gate struct {
	allowed string
	timeout time.Duration
}

func NewGate(allowedUsername string, timeout time.Duration) *Gate {
	return &Gate{allowed: allowedUsername, timeout: timeout}
}

// Timeout is the bounded wait Await applies.
func (g *Gate) Timeout() time.Duration { return g.timeout }

// Check classifies an identity against the single allowed username. The
// comparison is case-insensitive; a missing or empty assertion is treated as
// logged out, never as an error.
func (g *Gate) Check(id *Identity) GateState {
	if id == nil || strings.TrimSpace(id.Username) == "" {
		return StateReadyUnauthenticated
	}
	if strings.EqualFold(strings.TrimSpace(id.Username), g.allowed) {
		return StateReadyAuthenticated
	}
	return StateUnauthorized
}

// Await blocks until an identity assertion arrives or the bounded timeout
// elapses. A timeout or a cancelled context fails safe to logged-out; the
// gate never admits anyone by default.
func (g *Gate) Await(ctx context.Context, assertions <-chan Identity) (GateState, *Identity) {
	timer := time.NewTimer(g.timeout)
	defer timer.Stop()

	select {
	case id := <-assertions:
		return g.Check(&id), &id
	case <-timer.C:
		return StateReadyUnauthenticated, nil
	case <-ctx.Done():
		return StateReadyUnauthenticated, nil
	}
}
