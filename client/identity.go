package client

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const visitorIDKey = "visitor_id"

// IdentityProvider hands out the anonymous visitor ID that keys the like
// records. The ID is minted once, persisted through the store and reused on
// every later call. When the store fails the ID lives in memory only, so the
// visitor stays consistent within the process.
type IdentityProvider struct {
	mu     sync.Mutex
	store  Store
	cached string
}

func NewIdentityProvider(store Store) *IdentityProvider {
	if store == nil {
		store = NewMemStore()
	}
	return &IdentityProvider{store: store}
}

// VisitorID returns the stable visitor ID, creating it on first use.
func (p *IdentityProvider) VisitorID() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != "" {
		return p.cached
	}

	if v, err := p.store.Load(visitorIDKey); err == nil {
		if _, err := uuid.Parse(v); err == nil {
			p.cached = v
			return v
		}
		logrus.Warnf("stored visitor ID %q is not a UUID, minting a new one", v)
	}

	id := uuid.NewString()
	if err := p.store.Save(visitorIDKey, id); err != nil {
		logrus.Warnf("failed to persist visitor ID, keeping it in memory: %v", err)
	}
	p.cached = id
	return id
}
