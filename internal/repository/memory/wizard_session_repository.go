package memory

import (
	"sync"
	"time"

	"micro-automation-hub/pkg/wizard"

	"github.com/patrickmn/go-cache"
)

type wizardEntry struct {
	mu      sync.Mutex
	session *wizard.Session
}

// WizardSessionRepository keeps authoring sessions in process memory. Entries
// expire after the configured TTL of inactivity; every access slides the expiry.
// mu covers the lookup-then-refresh so a concurrent Delete is never undone.
type WizardSessionRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewWizardSessionRepository(ttl time.Duration) *WizardSessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &WizardSessionRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *WizardSessionRepository) Create(id string, session *wizard.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Set(id, &wizardEntry{session: session}, cache.DefaultExpiration)
}

func (r *WizardSessionRepository) entry(id string) (*wizardEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	x, found := r.cache.Get(id)
	if !found {
		return nil, false
	}
	e := x.(*wizardEntry)
	r.cache.Set(id, e, cache.DefaultExpiration)
	return e, true
}

// Update runs fn with exclusive access to the session. It reports false when
// the session is unknown or expired.
func (r *WizardSessionRepository) Update(id string, fn func(*wizard.Session)) bool {
	e, ok := r.entry(id)
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.session)
	return true
}

// View is Update for read-only callers; fn must not retain the session.
func (r *WizardSessionRepository) View(id string, fn func(*wizard.Session)) bool {
	return r.Update(id, fn)
}

func (r *WizardSessionRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.cache.Get(id); !found {
		return false
	}
	r.cache.Delete(id)
	return true
}

// Count reports live sessions, including expired ones not yet swept.
func (r *WizardSessionRepository) Count() int {
	return r.cache.ItemCount()
}
