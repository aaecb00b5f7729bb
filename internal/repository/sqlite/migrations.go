package sqlite

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist. Timestamps are stored as
// unix nanoseconds (UTC) so bid ordering survives the round trip.
const schema = `
CREATE TABLE IF NOT EXISTS products (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    keywords TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    subcategory TEXT NOT NULL DEFAULT '',
    seller_id TEXT NOT NULL,
    starting_bid INTEGER NOT NULL,
    reserve_price INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS auctions (
    id TEXT PRIMARY KEY,
    product_id TEXT NOT NULL,
    start_time INTEGER NOT NULL,
    end_time INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (product_id) REFERENCES products(id)
);

CREATE TABLE IF NOT EXISTS bids (
    id TEXT PRIMARY KEY,
    auction_id TEXT NOT NULL,
    bidder_id TEXT NOT NULL,
    amount INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (auction_id) REFERENCES auctions(id)
);

CREATE TABLE IF NOT EXISTS proxy_bids (
    id TEXT PRIMARY KEY,
    bidder_id TEXT NOT NULL,
    auction_id TEXT NOT NULL,
    product_id TEXT NOT NULL,
    max_amount INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    UNIQUE (bidder_id, auction_id),
    FOREIGN KEY (auction_id) REFERENCES auctions(id)
);

CREATE TABLE IF NOT EXISTS auction_results (
    id TEXT PRIMARY KEY,
    auction_id TEXT NOT NULL UNIQUE,
    winner_id TEXT NOT NULL DEFAULT '',
    winning_bid INTEGER NOT NULL,
    ended_at INTEGER NOT NULL,
    FOREIGN KEY (auction_id) REFERENCES auctions(id)
);

CREATE TABLE IF NOT EXISTS bid_history (
    user_id TEXT NOT NULL,
    product_id TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    subcategory TEXT NOT NULL DEFAULT '',
    seller_id TEXT NOT NULL DEFAULT '',
    bid_count INTEGER NOT NULL,
    last_bid_time INTEGER NOT NULL,
    PRIMARY KEY (user_id, product_id)
);

CREATE TABLE IF NOT EXISTS search_history (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    query TEXT NOT NULL,
    search_type TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bids_auction_id ON bids(auction_id);
CREATE INDEX IF NOT EXISTS idx_proxy_bids_auction_id ON proxy_bids(auction_id);
CREATE INDEX IF NOT EXISTS idx_proxy_bids_bidder_id ON proxy_bids(bidder_id);
CREATE INDEX IF NOT EXISTS idx_search_history_user_id ON search_history(user_id);
`
