package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/tair/storefront/internal/shop/domain"
	"github.com/tair/storefront/pkg/kv"
	"github.com/tair/storefront/pkg/logger"
)

const (
	cartKeyPrefix     = "cart:"
	wishlistKeyPrefix = "wishlist:"
)

// SessionStore implements domain.ShopRepository. Each session's cart and
// wishlist live in memory and are the authoritative copy; the KV store is
// hydrated from on first access and written through on every mutation.
// KV failures degrade silently to memory-only operation.
type SessionStore struct {
	store kv.Store

	mu       sync.Mutex
	sessions map[string]*sessionState
}

type sessionState struct {
	cart     []domain.CartItem
	wishlist []domain.WishlistItem
}

// NewSessionStore creates a session store backed by the given KV store
func NewSessionStore(store kv.Store) *SessionStore {
	return &SessionStore{
		store:    store,
		sessions: make(map[string]*sessionState),
	}
}

// Cart returns a copy of the session's cart lines in insertion order
func (s *SessionStore) Cart(ctx context.Context, sessionID string) []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.session(ctx, sessionID)
	out := make([]domain.CartItem, len(state.cart))
	copy(out, state.cart)
	return out
}

// Wishlist returns a copy of the session's wishlist entries
func (s *SessionStore) Wishlist(ctx context.Context, sessionID string) []domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.session(ctx, sessionID)
	out := make([]domain.WishlistItem, len(state.wishlist))
	copy(out, state.wishlist)
	return out
}

// UpdateCart applies the transition to the session's cart and persists the
// result. The swap is atomic under the store lock.
func (s *SessionStore) UpdateCart(ctx context.Context, sessionID string, apply func([]domain.CartItem) []domain.CartItem) []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.session(ctx, sessionID)
	state.cart = apply(state.cart)
	s.persist(ctx, cartKeyPrefix+sessionID, state.cart)

	out := make([]domain.CartItem, len(state.cart))
	copy(out, state.cart)
	return out
}

// UpdateWishlist applies the transition to the session's wishlist and
// persists the result.
func (s *SessionStore) UpdateWishlist(ctx context.Context, sessionID string, apply func([]domain.WishlistItem) []domain.WishlistItem) []domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.session(ctx, sessionID)
	state.wishlist = apply(state.wishlist)
	s.persist(ctx, wishlistKeyPrefix+sessionID, state.wishlist)

	out := make([]domain.WishlistItem, len(state.wishlist))
	copy(out, state.wishlist)
	return out
}

// session returns the in-memory state for the session, hydrating it from
// the KV store on first access. Callers must hold the lock.
func (s *SessionStore) session(ctx context.Context, sessionID string) *sessionState {
	if state, ok := s.sessions[sessionID]; ok {
		return state
	}

	state := &sessionState{
		cart:     load[domain.CartItem](ctx, s.store, cartKeyPrefix+sessionID),
		wishlist: load[domain.WishlistItem](ctx, s.store, wishlistKeyPrefix+sessionID),
	}
	s.sessions[sessionID] = state
	return state
}

// load reads a stored collection. Absent or unparsable entries hydrate as
// an empty collection, never as an error.
func load[T any](ctx context.Context, store kv.Store, key string) []T {
	data, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			logger.Warn(ctx).Err(err).Str("key", key).Msg("Failed to load session state, starting empty")
		}
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Malformed session state, starting empty")
		return nil
	}
	return items
}

// persist writes the collection through to the KV store. Failures are
// logged and swallowed; the in-memory copy remains authoritative.
func (s *SessionStore) persist(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Failed to serialize session state")
		return
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Failed to persist session state, keeping in-memory copy")
	}
}
