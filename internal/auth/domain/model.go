package domain

import (
	"errors"
	"time"
)

var ErrProfileNotFound = errors.New("profile not found")

// Principal is the identity asserted by Firebase for one request. It is
// ephemeral and never persisted directly; Resolve mirrors it into a
// Profile on first sight.
type Principal struct {
	UID      string
	Email    string
	Name     string
	PhotoURL string
}

// Profile is our own record about a principal. Documents in the "Users"
// collection are keyed by email, which is the globally unique lookup key.
type Profile struct {
	Email     string    `json:"email" firestore:"email"`
	Name      string    `json:"name" firestore:"name"`
	PhotoURL  string    `json:"photoURL" firestore:"photoURL"`
	UID       string    `json:"uid" firestore:"uid"`
	IsAdmin   bool      `json:"isAdmin" firestore:"isAdmin"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
