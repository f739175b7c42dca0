// Package client is a Go client for the recount API that mirrors the
// server-side collection in a local cache and makes mutations feel
// instantaneous.
//
// Mutations are optimistic: Update and Delete change the local snapshot
// before the network call resolves. Reconciliation never diffs: on success
// the server's canonical record replaces the optimistic one, on failure
// the whole snapshot is re-fetched from the server rather than patched
// back, so a failed mutation always converges to the server's true state.
// There is no versioning, no request coalescing, and no retry; overlapping
// mutations race on the same base and the last write to the local cache
// wins.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	wardrobedomain "github.com/ghuser/recount/services/wardrobe/domain"
	"github.com/ghuser/recount/services/wardrobe/domain/models"
)

// Client talks to a recount server and maintains at most one authoritative
// snapshot of the collection. It is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client

	mu     sync.Mutex
	items  []models.ClothingItem
	loaded bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client (10 s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// New returns a Client for the API rooted at baseURL (e.g.
// "http://localhost:8080/api"). No network call is made until Load or the
// first mutation.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load fetches the full collection from the server and replaces the local
// snapshot. Subsequent Items calls serve the cache until the next Load or
// a failed mutation forces a refetch.
func (c *Client) Load(ctx context.Context) ([]models.ClothingItem, error) {
	items, err := c.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.items = items
	c.loaded = true
	snapshot := cloneItems(c.items)
	c.mu.Unlock()
	return snapshot, nil
}

// Items returns a copy of the current snapshot. ok is false when no
// snapshot is held (never loaded, or invalidated by a failed rollback).
func (c *Client) Items() (items []models.ClothingItem, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return nil, false
	}
	return cloneItems(c.items), true
}

// CreateDraft is the payload for Create. Attach raw image bytes (and a
// filename) to upload an image with the item; leave Image nil to send
// plain JSON.
type CreateDraft struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	BoughtFrom   string  `json:"boughtFrom,omitempty"`
	Price        float64 `json:"price,omitempty"`
	PurchaseDate string  `json:"purchaseDate,omitempty"`
	Notes        string  `json:"notes,omitempty"`

	Image         []byte `json:"-"`
	ImageFilename string `json:"-"`
}

// Create sends the draft to the server and, on success, splices the
// canonical returned record onto the front of the snapshot; no refetch.
// Creation is not optimistic: nothing changes locally until the server
// has assigned the id.
func (c *Client) Create(ctx context.Context, draft CreateDraft) (*models.ClothingItem, error) {
	req, err := c.newCreateRequest(ctx, draft)
	if err != nil {
		return nil, err
	}

	var created models.ClothingItem
	if err := c.do(req, http.StatusCreated, &created); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.loaded {
		c.items = append([]models.ClothingItem{created}, c.items...)
	}
	c.mu.Unlock()
	return &created, nil
}

// Update optimistically merges the patch's scalar fields into the cached
// record, then issues the PATCH. On success the server's canonical record
// replaces the optimistic one (the server owns computed and defaulted
// fields). On failure the optimistic change is discarded by re-fetching
// the whole collection.
//
// The image field is never merged optimistically: a local preview is not
// promoted into the authoritative cache until the server confirms it.
// Patching an id absent from the cache changes nothing locally, but the
// network call still proceeds.
func (c *Client) Update(ctx context.Context, id string, patch models.ItemPatch) (*models.ClothingItem, error) {
	c.applyOptimistic(id, patch.WithoutImage())

	body, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("encode patch: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+"/items/"+id, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var updated models.ClothingItem
	if err := c.do(req, http.StatusOK, &updated); err != nil {
		c.rollback(ctx)
		return nil, err
	}

	c.replace(updated)
	return &updated, nil
}

// Delete optimistically removes the record from the snapshot, then issues
// the DELETE. On failure the snapshot is re-fetched. Deleting an unknown
// id succeeds on the server and is a local no-op.
func (c *Client) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	if c.loaded {
		kept := c.items[:0:0]
		for _, it := range c.items {
			if it.ID != id {
				kept = append(kept, it)
			}
		}
		c.items = kept
	}
	c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/items/"+id, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if err := c.do(req, http.StatusOK, nil); err != nil {
		c.rollback(ctx)
		return err
	}
	return nil
}

// SeedResult reports what a Seed call did.
type SeedResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// Seed asks the server to install the sample wardrobe, then reloads the
// snapshot to pick up whatever the server now holds.
func (c *Client) Seed(ctx context.Context) (*SeedResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/items/seed", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	var result SeedResult
	if err := c.do(req, http.StatusOK, &result); err != nil {
		return nil, err
	}
	if _, err := c.Load(ctx); err != nil {
		return nil, err
	}
	return &result, nil
}

// applyOptimistic merges patch into the cached record matching id. A miss
// is a no-op: the server may still know the id, and a later reload will
// reveal the truth.
func (c *Client) applyOptimistic(id string, patch models.ItemPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			patch.Apply(&c.items[i])
			return
		}
	}
}

// replace swaps the cached record for the server's canonical one.
func (c *Client) replace(item models.ClothingItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return
	}
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i] = item
			return
		}
	}
}

// rollback discards the optimistic state by re-fetching the full
// collection. If even the refetch fails the snapshot is dropped entirely,
// so stale optimistic data is never served as authoritative.
func (c *Client) rollback(ctx context.Context) {
	items, err := c.fetchAll(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.items = nil
		c.loaded = false
		return
	}
	c.items = items
	c.loaded = true
}

func (c *Client) fetchAll(ctx context.Context) ([]models.ClothingItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/items", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	var items []models.ClothingItem
	if err := c.do(req, http.StatusOK, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) newCreateRequest(ctx context.Context, draft CreateDraft) (*http.Request, error) {
	if len(draft.Image) == 0 {
		body, err := json.Marshal(draft)
		if err != nil {
			return nil, fmt.Errorf("encode draft: %w", err)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/items", bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := map[string]string{
		"name":         draft.Name,
		"category":     draft.Category,
		"boughtFrom":   draft.BoughtFrom,
		"price":        strconv.FormatFloat(draft.Price, 'f', -1, 64),
		"purchaseDate": draft.PurchaseDate,
		"notes":        draft.Notes,
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("encode form: %w", err)
		}
	}
	filename := draft.ImageFilename
	if filename == "" {
		filename = "image"
	}
	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("encode form: %w", err)
	}
	if _, err := fw.Write(draft.Image); err != nil {
		return nil, fmt.Errorf("encode form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/items", &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req, nil
}

// do executes the request, expecting wantStatus; other statuses decode the
// server's {"error": ...} body into an error. out may be nil.
func (c *Client) do(req *http.Request, wantStatus int, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != wantStatus {
		return apiError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError maps an error response to a domain sentinel where the status
// is unambiguous, preserving the server's message.
func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	msg := resp.Status
	if b, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
		if json.Unmarshal(b, &body) == nil && body.Error != "" {
			msg = body.Error
		}
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", wardrobedomain.ErrItemNotFound, msg)
	}
	return errors.New(msg)
}

func cloneItems(items []models.ClothingItem) []models.ClothingItem {
	out := make([]models.ClothingItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
