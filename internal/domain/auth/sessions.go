package auth

import (
	"sync"
	"time"
)

// Revocations remembers logged-out session ids until their tokens expire.
type Revocations struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewRevocations() *Revocations {
	return &Revocations{revoked: map[string]time.Time{}, now: time.Now}
}

func (r *Revocations) Revoke(sessionID string, expiresAt time.Time) {
	if sessionID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruneLocked()
	r.revoked[sessionID] = expiresAt
}

func (r *Revocations) Revoked(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	expiresAt, ok := r.revoked[sessionID]
	if !ok {
		return false
	}
	if r.now().After(expiresAt) {
		delete(r.revoked, sessionID)
		return false
	}
	return true
}

func (r *Revocations) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.revoked)
}

func (r *Revocations) pruneLocked() {
	now := r.now()
	for id, expiresAt := range r.revoked {
		if now.After(expiresAt) {
			delete(r.revoked, id)
		}
	}
}
