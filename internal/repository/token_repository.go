package repository

import (
	"sort"
	"sync"
	"time"
)

// DeviceToken is one push-alert subscription. Re-registering a token
// refreshes its platform and timestamp.
type DeviceToken struct {
	Token        string
	Platform     string
	RegisteredAt time.Time
}

// TokenRepository holds the alert subscriptions the scanner fans out to.
type TokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]DeviceToken
}

func NewTokenRepository() *TokenRepository {
	return &TokenRepository{tokens: make(map[string]DeviceToken)}
}

// Register adds or refreshes a subscription.
func (r *TokenRepository) Register(token, platform string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = DeviceToken{
		Token:        token,
		Platform:     platform,
		RegisteredAt: time.Now(),
	}
}

// Unregister drops a subscription. Unknown tokens are a no-op.
func (r *TokenRepository) Unregister(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
}

// Tokens returns the subscribed tokens sorted, so multicast fan-out order
// does not depend on map iteration.
func (r *TokenRepository) Tokens() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tokens := make([]string, 0, len(r.tokens))
	for t := range r.tokens {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// Count returns the number of subscriptions.
func (r *TokenRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}
