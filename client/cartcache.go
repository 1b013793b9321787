// Package client mirrors the server cart on the client side: mutations are
// applied optimistically and confirmed or corrected by the server response,
// and a background timer re-fetches the authoritative cart to absorb
// multi-tab and multi-device drift.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/kajanthann/E-COM-FOREVER/models"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUnauthorized     = errors.New("authentication required")
)

type cartResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	CartData models.CartMap `json:"cartData"`
}

// CartCache is safe for concurrent use; the refresh timer and user-driven
// mutations may race, and whichever response lands last wins. Both sides
// converge to the same normalized server state within one refresh interval.
type CartCache struct {
	baseURL string
	httpc   *http.Client

	mu    sync.Mutex
	token string
	items models.CartMap

	// OnAuthError runs after the cache has been cleared in response to a
	// 401; callers hook their re-authentication redirect here. This is the
	// single recovery path for stale credentials.
	OnAuthError func()
	// OnChange fires only when the cache moved to a structurally different
	// map, so callers never re-render on a no-op refresh.
	OnChange func(models.CartMap)

	stop     chan struct{}
	stopOnce sync.Once
}

// New builds a cache for the given API base URL. A positive refreshEvery
// starts the background reconciliation timer; Close stops it.
func New(baseURL, token string, refreshEvery time.Duration) *CartCache {
	cc := &CartCache{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
		token:   token,
		items:   models.CartMap{},
		stop:    make(chan struct{}),
	}
	if refreshEvery > 0 {
		go cc.refreshLoop(refreshEvery)
	}
	return cc
}

func (cc *CartCache) refreshLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_ = cc.Refresh()
		case <-cc.stop:
			return
		}
	}
}

// Close stops the background timer. In-flight requests are not aborted;
// their results are discarded by the structural-equality guard if the
// cache has moved on.
func (cc *CartCache) Close() {
	cc.stopOnce.Do(func() { close(cc.stop) })
}

// Items returns a copy of the cached map.
func (cc *CartCache) Items() models.CartMap {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.items.Clone()
}

// Count mirrors the cart badge: total units in the cached map.
func (cc *CartCache) Count() int {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.items.Count()
}

// Amount values the cached map against a local catalog snapshot.
func (cc *CartCache) Amount(priceOf func(string) (float64, bool)) float64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.items.Amount(priceOf)
}

// SetToken installs a new credential. An empty token is a logout and
// clears the cache unconditionally.
func (cc *CartCache) SetToken(token string) {
	cc.mu.Lock()
	cc.token = token
	var changed models.CartMap
	if token == "" && len(cc.items) > 0 {
		cc.items = models.CartMap{}
		changed = models.CartMap{}
	}
	cc.mu.Unlock()
	if changed != nil {
		cc.notify(changed)
	}
}

// Clear empties the cache without touching the server.
func (cc *CartCache) Clear() {
	cc.mu.Lock()
	hadItems := len(cc.items) > 0
	cc.items = models.CartMap{}
	cc.mu.Unlock()
	if hadItems {
		cc.notify(models.CartMap{})
	}
}

// AddToCart bumps the local map immediately, then posts the mutation and
// replaces the local state with whatever the server persisted.
func (cc *CartCache) AddToCart(itemID, size string) error {
	cc.mu.Lock()
	if cc.token == "" {
		cc.mu.Unlock()
		return ErrNotAuthenticated
	}
	optimistic, err := cc.items.Increment(itemID, size)
	if err != nil {
		cc.mu.Unlock()
		return err
	}
	cc.items = optimistic
	cc.mu.Unlock()
	cc.notify(optimistic)

	resp, err := cc.do(http.MethodPost, "/api/cart/add", map[string]interface{}{
		"itemId": itemID,
		"size":   size,
	})
	if err != nil {
		return err
	}
	cc.apply(resp.CartData)
	return nil
}

// UpdateQuantity pins a leaf locally, then confirms with the server. A
// quantity of zero removes the entry.
func (cc *CartCache) UpdateQuantity(itemID, size string, quantity int) error {
	cc.mu.Lock()
	if cc.token == "" {
		cc.mu.Unlock()
		return ErrNotAuthenticated
	}
	optimistic, err := cc.items.SetQuantity(itemID, size, quantity)
	if err != nil {
		cc.mu.Unlock()
		return err
	}
	cc.items = optimistic
	cc.mu.Unlock()
	cc.notify(optimistic)

	resp, err := cc.do(http.MethodPost, "/api/cart/update", map[string]interface{}{
		"itemId":   itemID,
		"size":     size,
		"quantity": quantity,
	})
	if err != nil {
		return err
	}
	cc.apply(resp.CartData)
	return nil
}

// Refresh fetches the authoritative server cart and replaces the local
// cache only if it is structurally different.
func (cc *CartCache) Refresh() error {
	cc.mu.Lock()
	if cc.token == "" {
		cc.mu.Unlock()
		return ErrNotAuthenticated
	}
	cc.mu.Unlock()

	resp, err := cc.do(http.MethodGet, "/api/cart/get", nil)
	if err != nil {
		return err
	}
	cc.apply(resp.CartData)
	return nil
}

// apply installs the server map behind the structural-equality guard.
func (cc *CartCache) apply(server models.CartMap) {
	if server == nil {
		server = models.CartMap{}
	}
	cc.mu.Lock()
	if cc.items.Equal(server) {
		cc.mu.Unlock()
		return
	}
	cc.items = server.Clone()
	cc.mu.Unlock()
	cc.notify(server)
}

func (cc *CartCache) notify(m models.CartMap) {
	if cc.OnChange != nil {
		cc.OnChange(m.Clone())
	}
}

func (cc *CartCache) do(method, path string, body interface{}) (*cartResponse, error) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, cc.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	cc.mu.Lock()
	req.Header.Set("Authorization", "Bearer "+cc.token)
	cc.mu.Unlock()

	resp, err := cc.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// The one recovery path for a stale credential: drop everything
		// and let the caller redirect to re-authentication.
		cc.mu.Lock()
		cc.token = ""
		cc.items = models.CartMap{}
		cc.mu.Unlock()
		cc.notify(models.CartMap{})
		if cc.OnAuthError != nil {
			cc.OnAuthError()
		}
		return nil, ErrUnauthorized
	}

	var parsed cartResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	if !parsed.Success {
		if parsed.Message != "" {
			return nil, errors.New(parsed.Message)
		}
		return nil, fmt.Errorf("cart request failed with status %d", resp.StatusCode)
	}
	return &parsed, nil
}
