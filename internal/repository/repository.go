package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/the-auction-games/auction-api/internal/auctionerrors"
	"github.com/the-auction-games/auction-api/internal/metrics"
	model "github.com/the-auction-games/auction-api/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionStore defines the auction persistence interface. The backing store
// is a remote key-value state store with no transactions and no native
// compare-and-swap: Update is an unconditional overwrite by id.
type AuctionStore interface {
	GetAuction(ctx context.Context, id string) (model.Auction, error)
	ListAuctions(ctx context.Context) ([]model.Auction, error)
	CreateAuction(ctx context.Context, auction model.Auction) error
	UpdateAuction(ctx context.Context, auction model.Auction) error
	DeleteAuction(ctx context.Context, id string) error
}

// StateStoreRepo implements AuctionStore against a Dapr state store sidecar.
// Every call is a bounded HTTP round trip; the configured timeout caps each
// one individually.
type StateStoreRepo struct {
	client   *http.Client
	stateURL string
	queryURL string
	timeout  time.Duration
	metrics  metrics.Recorder
}

// NewStateStoreRepo creates a repository bound to the given sidecar.
func NewStateStoreRepo(client *http.Client, baseURL, storeName string, timeout time.Duration, rec metrics.Recorder) *StateStoreRepo {
	return &StateStoreRepo{
		client:   client,
		stateURL: fmt.Sprintf("%s/v1.0/state/%s", baseURL, storeName),
		queryURL: fmt.Sprintf("%s/v1.0-alpha1/state/%s/query", baseURL, storeName),
		timeout:  timeout,
		metrics:  rec,
	}
}

// stateItem is one entry of the sidecar's bulk save payload.
type stateItem struct {
	Key   string        `json:"key"`
	Value model.Auction `json:"value"`
	ETag  string        `json:"etag,omitempty"`
}

// queryResponse maps the sidecar's unfiltered query result.
type queryResponse struct {
	Results []queryEntry `json:"results"`
}

type queryEntry struct {
	Data model.Auction `json:"data"`
}

// GetAuction fetches an auction by id. A missing key maps to ErrAuctionNotFound.
func (r *StateStoreRepo) GetAuction(ctx context.Context, id string) (model.Auction, error) {
	auction, _, err := r.getVersioned(ctx, id)
	return auction, err
}

// GetAuctionVersioned fetches an auction together with its state store etag,
// for callers using the optimistic-concurrency write path.
func (r *StateStoreRepo) GetAuctionVersioned(ctx context.Context, id string) (model.Auction, string, error) {
	return r.getVersioned(ctx, id)
}

func (r *StateStoreRepo) getVersioned(ctx context.Context, id string) (model.Auction, string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.stateURL+"/"+id, nil)
	if err != nil {
		return model.Auction{}, "", fmt.Errorf("repository: build get request for auction %s: %w", id, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.metrics.RecordStateError("get")
		return model.Auction{}, "", fmt.Errorf("repository: get auction %s: %w: %v", id, auctionerrors.ErrStateStore, err)
	}
	defer resp.Body.Close()
	r.metrics.RecordStateLatency("get", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotFound:
		return model.Auction{}, "", fmt.Errorf("repository: get auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	case resp.StatusCode != http.StatusOK:
		r.metrics.RecordStateError("get")
		return model.Auction{}, "", fmt.Errorf("repository: get auction %s: %w: status %d", id, auctionerrors.ErrStateStore, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		r.metrics.RecordStateError("get")
		return model.Auction{}, "", fmt.Errorf("repository: read auction %s: %w: %v", id, auctionerrors.ErrStateStore, err)
	}

	// The sidecar answers an absent key with an empty 200 body on some
	// store components, so treat that as not found as well.
	if len(body) == 0 {
		return model.Auction{}, "", fmt.Errorf("repository: get auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}

	var auction model.Auction
	if err := json.Unmarshal(body, &auction); err != nil {
		r.metrics.RecordStateError("get")
		return model.Auction{}, "", fmt.Errorf("repository: decode auction %s: %w: %v", id, auctionerrors.ErrStateStore, err)
	}

	return auction, resp.Header.Get("ETag"), nil
}

// ListAuctions returns every stored auction via the sidecar's unfiltered query.
func (r *StateStoreRepo) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.queryURL, bytes.NewReader([]byte(`{"filters":{}}`)))
	if err != nil {
		return nil, fmt.Errorf("repository: build list request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.metrics.RecordStateError("list")
		return nil, fmt.Errorf("repository: list auctions: %w: %v", auctionerrors.ErrStateStore, err)
	}
	defer resp.Body.Close()
	r.metrics.RecordStateLatency("list", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		r.metrics.RecordStateError("list")
		return nil, fmt.Errorf("repository: list auctions: %w: status %d", auctionerrors.ErrStateStore, resp.StatusCode)
	}

	var decoded queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		r.metrics.RecordStateError("list")
		return nil, fmt.Errorf("repository: decode auction list: %w: %v", auctionerrors.ErrStateStore, err)
	}

	auctions := make([]model.Auction, 0, len(decoded.Results))
	for _, entry := range decoded.Results {
		auctions = append(auctions, entry.Data)
	}
	return auctions, nil
}

// CreateAuction stores a new auction, failing if the id is already taken.
func (r *StateStoreRepo) CreateAuction(ctx context.Context, auction model.Auction) error {
	_, err := r.GetAuction(ctx, auction.ID)
	if err == nil {
		return fmt.Errorf("repository: create auction %s: %w", auction.ID, auctionerrors.ErrAuctionExists)
	}
	if !isNotFound(err) {
		return err
	}
	return r.save(ctx, auction, "")
}

// UpdateAuction overwrites an existing auction, failing if it does not exist.
// This is a last-write-wins overwrite, not a compare-and-swap.
func (r *StateStoreRepo) UpdateAuction(ctx context.Context, auction model.Auction) error {
	if _, err := r.GetAuction(ctx, auction.ID); err != nil {
		return err
	}
	return r.save(ctx, auction, "")
}

// UpdateAuctionVersioned overwrites an existing auction only if the stored
// record still carries the given etag. A concurrent writer that got there
// first surfaces as ErrVersionConflict.
func (r *StateStoreRepo) UpdateAuctionVersioned(ctx context.Context, auction model.Auction, etag string) error {
	return r.save(ctx, auction, etag)
}

func (r *StateStoreRepo) save(ctx context.Context, auction model.Auction, etag string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	payload, err := json.Marshal([]stateItem{{Key: auction.ID, Value: auction, ETag: etag}})
	if err != nil {
		return fmt.Errorf("repository: encode auction %s: %w", auction.ID, err)
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.stateURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("repository: build save request for auction %s: %w", auction.ID, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.metrics.RecordStateError("save")
		return fmt.Errorf("repository: save auction %s: %w: %v", auction.ID, auctionerrors.ErrStateStore, err)
	}
	defer resp.Body.Close()
	r.metrics.RecordStateLatency("save", time.Since(start))

	// The sidecar rejects a stale etag with a 4xx status.
	if etag != "" && (resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusBadRequest) {
		return fmt.Errorf("repository: save auction %s: %w", auction.ID, auctionerrors.ErrVersionConflict)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.metrics.RecordStateError("save")
		return fmt.Errorf("repository: save auction %s: %w: status %d", auction.ID, auctionerrors.ErrStateStore, resp.StatusCode)
	}
	return nil
}

// DeleteAuction removes an auction by id, failing if it does not exist.
func (r *StateStoreRepo) DeleteAuction(ctx context.Context, id string) error {
	if _, err := r.GetAuction(ctx, id); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, r.stateURL+"/"+id, nil)
	if err != nil {
		return fmt.Errorf("repository: build delete request for auction %s: %w", id, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.metrics.RecordStateError("delete")
		return fmt.Errorf("repository: delete auction %s: %w: %v", id, auctionerrors.ErrStateStore, err)
	}
	defer resp.Body.Close()
	r.metrics.RecordStateLatency("delete", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.metrics.RecordStateError("delete")
		return fmt.Errorf("repository: delete auction %s: %w: status %d", id, auctionerrors.ErrStateStore, resp.StatusCode)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, auctionerrors.ErrAuctionNotFound)
}
