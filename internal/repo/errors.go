package repo

import "errors"

// Sentinel errors returned by the repositories. Handlers translate these to
// HTTP statuses at the boundary; nothing below the handler layer knows HTTP.
var (
	ErrNotFound      = errors.New("record not found or not owned by caller")
	ErrEmailTaken    = errors.New("email already registered")
	ErrWalletTaken   = errors.New("wallet address already bound to another user")
	ErrBattleBlocked = errors.New("user is blocked from battles")
)
