// Package sqlite provides a SQLite-backed implementation of the
// repository.AuctionDB interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
)

// Ensure Store implements repository.AuctionDB
var _ repository.AuctionDB = (*Store)(nil)

// Store implements repository.AuctionDB using SQLite.
type Store struct {
	db *sql.DB
}

// New creates a new Store at the given database path. It creates the parent
// directory and applies the schema before returning.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func wrapPersistence(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, auctionerrors.ErrPersistence, err)
}

// AddProduct persists a product.
func (s *Store) AddProduct(ctx context.Context, p model.Product) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO products (id, name, description, keywords, category, subcategory, seller_id, starting_bid, reserve_price, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ProductID, p.Name, p.Description, p.Keywords, p.Category, p.Subcategory,
		p.SellerID, p.StartingBid, p.ReservePrice, p.CreatedAt.UTC().UnixNano(),
	)
	if err != nil {
		return wrapPersistence("insert product", err)
	}
	return nil
}

// GetProduct loads a product by id.
func (s *Store) GetProduct(ctx context.Context, productID string) (model.Product, error) {
	var p model.Product
	var createdAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, keywords, category, subcategory, seller_id, starting_bid, reserve_price, created_at
		 FROM products WHERE id = ?`, productID,
	).Scan(&p.ProductID, &p.Name, &p.Description, &p.Keywords, &p.Category, &p.Subcategory,
		&p.SellerID, &p.StartingBid, &p.ReservePrice, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	if err != nil {
		return model.Product{}, wrapPersistence("select product", err)
	}
	p.CreatedAt = time.Unix(0, createdAt).UTC()
	return p, nil
}

// AddAuction persists an auction.
func (s *Store) AddAuction(ctx context.Context, a model.Auction) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO auctions (id, product_id, start_time, end_time, created_at) VALUES (?, ?, ?, ?, ?)`,
		a.AuctionID, a.ProductID, a.StartTime.UTC().UnixNano(), a.EndTime.UTC().UnixNano(), a.CreatedAt.UTC().UnixNano(),
	)
	if err != nil {
		return wrapPersistence("insert auction", err)
	}
	return nil
}

func scanAuction(row interface{ Scan(...any) error }) (model.Auction, error) {
	var a model.Auction
	var start, end, created int64
	if err := row.Scan(&a.AuctionID, &a.ProductID, &start, &end, &created); err != nil {
		return model.Auction{}, err
	}
	a.StartTime = time.Unix(0, start).UTC()
	a.EndTime = time.Unix(0, end).UTC()
	a.CreatedAt = time.Unix(0, created).UTC()
	return a, nil
}

// GetAuction loads an auction by id.
func (s *Store) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, product_id, start_time, end_time, created_at FROM auctions WHERE id = ?`, auctionID)
	a, err := scanAuction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, wrapPersistence("select auction", err)
	}
	return a, nil
}

// ListAuctions returns all auctions, newest first.
func (s *Store) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, product_id, start_time, end_time, created_at FROM auctions ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, wrapPersistence("list auctions", err)
	}
	defer rows.Close()

	var auctions []model.Auction
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, wrapPersistence("scan auction", err)
		}
		auctions = append(auctions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPersistence("iterate auctions", err)
	}
	return auctions, nil
}

// RecordBid appends a bid to the ledger. The auction row is checked inside
// the same transaction so a bid can never reference a missing auction.
func (s *Store) RecordBid(ctx context.Context, bid model.Bid) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapPersistence("begin bid transaction", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM auctions WHERE id = ?`, bid.AuctionID).Scan(&exists)
	if err != nil {
		return wrapPersistence("check auction", err)
	}
	if exists == 0 {
		return fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO bids (id, auction_id, bidder_id, amount, created_at) VALUES (?, ?, ?, ?, ?)`,
		bid.BidID, bid.AuctionID, bid.BidderID, bid.Amount, bid.CreatedAt.UTC().UnixNano(),
	)
	if err != nil {
		return wrapPersistence("insert bid", err)
	}
	if err := tx.Commit(); err != nil {
		return wrapPersistence("commit bid", err)
	}
	return nil
}

func scanBids(rows *sql.Rows) ([]model.Bid, error) {
	var bids []model.Bid
	for rows.Next() {
		var b model.Bid
		var created int64
		if err := rows.Scan(&b.BidID, &b.AuctionID, &b.BidderID, &b.Amount, &created); err != nil {
			return nil, err
		}
		b.CreatedAt = time.Unix(0, created).UTC()
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

// GetBidsByAuction returns the auction's ledger in chronological order.
func (s *Store) GetBidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, auction_id, bidder_id, amount, created_at FROM bids WHERE auction_id = ? ORDER BY created_at ASC`, auctionID)
	if err != nil {
		return nil, wrapPersistence("select bids", err)
	}
	defer rows.Close()

	bids, err := scanBids(rows)
	if err != nil {
		return nil, wrapPersistence("scan bids", err)
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return bids, nil
}

// GetHighestBid returns the maximum-amount bid, ties broken by earliest timestamp.
func (s *Store) GetHighestBid(ctx context.Context, auctionID string) (model.Bid, error) {
	var b model.Bid
	var created int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, auction_id, bidder_id, amount, created_at FROM bids
		 WHERE auction_id = ? ORDER BY amount DESC, created_at ASC LIMIT 1`, auctionID,
	).Scan(&b.BidID, &b.AuctionID, &b.BidderID, &b.Amount, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get highest bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	if err != nil {
		return model.Bid{}, wrapPersistence("select highest bid", err)
	}
	b.CreatedAt = time.Unix(0, created).UTC()
	return b, nil
}

// UpsertProxyBid stores or overwrites the (bidder, auction) standing maximum.
func (s *Store) UpsertProxyBid(ctx context.Context, proxy model.ProxyBid) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO proxy_bids (id, bidder_id, auction_id, product_id, max_amount, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (bidder_id, auction_id) DO UPDATE SET
		     max_amount = excluded.max_amount,
		     product_id = excluded.product_id,
		     updated_at = excluded.updated_at`,
		proxy.ProxyBidID, proxy.BidderID, proxy.AuctionID, proxy.ProductID,
		proxy.MaxAmount, proxy.CreatedAt.UTC().UnixNano(), proxy.UpdatedAt.UTC().UnixNano(),
	)
	if err != nil {
		return wrapPersistence("upsert proxy bid", err)
	}
	return nil
}

func scanProxy(row interface{ Scan(...any) error }) (model.ProxyBid, error) {
	var p model.ProxyBid
	var created, updated int64
	if err := row.Scan(&p.ProxyBidID, &p.BidderID, &p.AuctionID, &p.ProductID, &p.MaxAmount, &created, &updated); err != nil {
		return model.ProxyBid{}, err
	}
	p.CreatedAt = time.Unix(0, created).UTC()
	p.UpdatedAt = time.Unix(0, updated).UTC()
	return p, nil
}

// GetProxyBid loads one bidder's proxy bid for an auction.
func (s *Store) GetProxyBid(ctx context.Context, bidderID, auctionID string) (model.ProxyBid, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, bidder_id, auction_id, product_id, max_amount, created_at, updated_at
		 FROM proxy_bids WHERE bidder_id = ? AND auction_id = ?`, bidderID, auctionID)
	p, err := scanProxy(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ProxyBid{}, fmt.Errorf("get proxy bid for bidder %s on auction %s: %w", bidderID, auctionID, auctionerrors.ErrNoProxyBid)
	}
	if err != nil {
		return model.ProxyBid{}, wrapPersistence("select proxy bid", err)
	}
	return p, nil
}

// RemoveProxyBid deletes the bidder's proxy bid for an auction.
func (s *Store) RemoveProxyBid(ctx context.Context, bidderID, auctionID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM proxy_bids WHERE bidder_id = ? AND auction_id = ?`, bidderID, auctionID)
	if err != nil {
		return wrapPersistence("delete proxy bid", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapPersistence("delete proxy bid rows affected", err)
	}
	if affected == 0 {
		return fmt.Errorf("remove proxy bid for bidder %s on auction %s: %w", bidderID, auctionID, auctionerrors.ErrNoProxyBid)
	}
	return nil
}

func (s *Store) queryProxies(ctx context.Context, query string, arg string) ([]model.ProxyBid, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, wrapPersistence("select proxy bids", err)
	}
	defer rows.Close()

	proxies := make([]model.ProxyBid, 0)
	for rows.Next() {
		p, err := scanProxy(rows)
		if err != nil {
			return nil, wrapPersistence("scan proxy bid", err)
		}
		proxies = append(proxies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPersistence("iterate proxy bids", err)
	}
	return proxies, nil
}

// GetProxyBidsByAuction returns standing maximums for an auction, highest max first.
func (s *Store) GetProxyBidsByAuction(ctx context.Context, auctionID string) ([]model.ProxyBid, error) {
	return s.queryProxies(ctx,
		`SELECT id, bidder_id, auction_id, product_id, max_amount, created_at, updated_at
		 FROM proxy_bids WHERE auction_id = ? ORDER BY max_amount DESC, created_at ASC`, auctionID)
}

// GetProxyBidsByBidder returns all of one bidder's standing maximums.
func (s *Store) GetProxyBidsByBidder(ctx context.Context, bidderID string) ([]model.ProxyBid, error) {
	return s.queryProxies(ctx,
		`SELECT id, bidder_id, auction_id, product_id, max_amount, created_at, updated_at
		 FROM proxy_bids WHERE bidder_id = ? ORDER BY created_at ASC`, bidderID)
}

// CreateResult records the outcome exactly once; the UNIQUE constraint on
// auction_id backs the idempotence guard at the storage layer.
func (s *Store) CreateResult(ctx context.Context, result model.AuctionResult) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO auction_results (id, auction_id, winner_id, winning_bid, ended_at) VALUES (?, ?, ?, ?, ?)`,
		result.ResultID, result.AuctionID, result.WinnerID, result.WinningBid, result.EndedAt.UTC().UnixNano(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("create result for auction %s: %w", result.AuctionID, auctionerrors.ErrResultExists)
		}
		return wrapPersistence("insert result", err)
	}
	return nil
}

// GetResult loads the recorded outcome for an auction.
func (s *Store) GetResult(ctx context.Context, auctionID string) (model.AuctionResult, error) {
	var r model.AuctionResult
	var ended int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, auction_id, winner_id, winning_bid, ended_at FROM auction_results WHERE auction_id = ?`, auctionID,
	).Scan(&r.ResultID, &r.AuctionID, &r.WinnerID, &r.WinningBid, &ended)
	if errors.Is(err, sql.ErrNoRows) {
		return model.AuctionResult{}, fmt.Errorf("get result for auction %s: %w", auctionID, auctionerrors.ErrResultNotFound)
	}
	if err != nil {
		return model.AuctionResult{}, wrapPersistence("select result", err)
	}
	r.EndedAt = time.Unix(0, ended).UTC()
	return r, nil
}

// IncrementBidHistory upserts the (user, product) aggregate counter.
func (s *Store) IncrementBidHistory(ctx context.Context, entry model.BidHistoryEntry) error {
	if entry.BidCount <= 0 {
		entry.BidCount = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bid_history (user_id, product_id, category, subcategory, seller_id, bid_count, last_bid_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, product_id) DO UPDATE SET
		     bid_count = bid_history.bid_count + excluded.bid_count,
		     last_bid_time = excluded.last_bid_time`,
		entry.UserID, entry.ProductID, entry.Category, entry.Subcategory,
		entry.SellerID, entry.BidCount, entry.LastBidTime.UTC().UnixNano(),
	)
	if err != nil {
		return wrapPersistence("upsert bid history", err)
	}
	return nil
}

// GetBidHistoryByUser returns the user's per-product bid aggregates.
func (s *Store) GetBidHistoryByUser(ctx context.Context, userID string) ([]model.BidHistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, product_id, category, subcategory, seller_id, bid_count, last_bid_time
		 FROM bid_history WHERE user_id = ? ORDER BY product_id ASC`, userID)
	if err != nil {
		return nil, wrapPersistence("select bid history", err)
	}
	defer rows.Close()

	entries := make([]model.BidHistoryEntry, 0)
	for rows.Next() {
		var e model.BidHistoryEntry
		var last int64
		if err := rows.Scan(&e.UserID, &e.ProductID, &e.Category, &e.Subcategory, &e.SellerID, &e.BidCount, &last); err != nil {
			return nil, wrapPersistence("scan bid history", err)
		}
		e.LastBidTime = time.Unix(0, last).UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPersistence("iterate bid history", err)
	}
	return entries, nil
}

// RecordSearch appends one search-history entry.
func (s *Store) RecordSearch(ctx context.Context, entry model.SearchHistoryEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO search_history (id, user_id, query, search_type, created_at) VALUES (?, ?, ?, ?, ?)`,
		entry.SearchID, entry.UserID, entry.Query, entry.SearchType, entry.CreatedAt.UTC().UnixNano(),
	)
	if err != nil {
		return wrapPersistence("insert search history", err)
	}
	return nil
}

// GetSearchHistoryByUser returns the user's raw search log, oldest first.
func (s *Store) GetSearchHistoryByUser(ctx context.Context, userID string) ([]model.SearchHistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, query, search_type, created_at FROM search_history WHERE user_id = ? ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, wrapPersistence("select search history", err)
	}
	defer rows.Close()

	entries := make([]model.SearchHistoryEntry, 0)
	for rows.Next() {
		var e model.SearchHistoryEntry
		var created int64
		if err := rows.Scan(&e.SearchID, &e.UserID, &e.Query, &e.SearchType, &created); err != nil {
			return nil, wrapPersistence("scan search history", err)
		}
		e.CreatedAt = time.Unix(0, created).UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPersistence("iterate search history", err)
	}
	return entries, nil
}
