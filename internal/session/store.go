package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"ticket-marketplace/internal/listing"
)

var ErrInvalidID = errors.New("session id must be a UUID")

// Key identifies one listing view.
type Key struct {
	SessionID string
	Listing   string
	Wallet    string
}

func (k Key) String() string {
	return k.SessionID + "|" + k.Listing + "|" + strings.ToLower(k.Wallet)
}

// Config sizes the store.
type Config struct {
	PageSize    int
	MaxSessions int
	TTL         time.Duration
}

func (k Key) scope() string {
	return k.SessionID + "|" + k.Listing
}

// Store keeps one listing.View per Key. Views idle longer than the TTL or
// pushed out by newer sessions are closed, cancelling any fetch in flight.
// A session holds one wallet-bound view per listing: asking for the same
// listing under another wallet closes the previous one.
type Store struct {
	mu       sync.Mutex
	views    *expirable.LRU[string, *listing.View]
	wallets  *expirable.LRU[string, string]
	pageSize int
}

// New creates a Store. A non-positive page size is a configuration error.
func New(cfg Config) (*Store, error) {
	if cfg.PageSize <= 0 {
		return nil, listing.ErrInvalidPageSize
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 1000
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Minute
	}
	return &Store{
		views: expirable.NewLRU[string, *listing.View](
			cfg.MaxSessions,
			func(_ string, v *listing.View) { v.Close() },
			cfg.TTL,
		),
		wallets:  expirable.NewLRU[string, string](cfg.MaxSessions, nil, cfg.TTL),
		pageSize: cfg.PageSize,
	}, nil
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id is a well-formed session id.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Get returns the view for key, creating it when absent. created reports
// whether the caller must run the initial load.
func (s *Store) Get(key Key) (view *listing.View, created bool, err error) {
	if !ValidID(key.SessionID) {
		return nil, false, ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if key.Wallet != "" {
		s.switchWallet(key)
	}

	k := key.String()
	if v, ok := s.views.Get(k); ok {
		return v, false, nil
	}
	v, err := listing.NewView(s.pageSize)
	if err != nil {
		return nil, false, err
	}
	s.views.Add(k, v)
	return v, true, nil
}

// switchWallet drops the view bound to the wallet the session used last for
// key's listing, when that wallet differs from key's.
func (s *Store) switchWallet(key Key) {
	prev, ok := s.wallets.Get(key.scope())
	if ok && !strings.EqualFold(prev, key.Wallet) {
		s.views.Remove(Key{SessionID: key.SessionID, Listing: key.Listing, Wallet: prev}.String())
	}
	s.wallets.Add(key.scope(), key.Wallet)
}

// Len is the number of live views.
func (s *Store) Len() int {
	return s.views.Len()
}

// PageSize is the page size every view is created with.
func (s *Store) PageSize() int {
	return s.pageSize
}
