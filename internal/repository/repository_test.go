package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"

	"github.com/stretchr/testify/require"
)

// Helper to create a product
func newProduct(productID, sellerID string, startingBid int64) model.Product {
	return model.Product{
		ProductID:   productID,
		Name:        fmt.Sprintf("Product %s", productID),
		Description: fmt.Sprintf("%s description", productID),
		Category:    "electronics",
		Subcategory: "cameras",
		SellerID:    sellerID,
		StartingBid: startingBid,
		CreatedAt:   time.Now().UTC(),
	}
}

// Helper to create an auction
func newAuction(auctionID, productID string, start, end time.Time) model.Auction {
	return model.Auction{
		AuctionID: auctionID,
		ProductID: productID,
		StartTime: start,
		EndTime:   end,
		CreatedAt: time.Now().UTC(),
	}
}

// Helper to create a bid
func newBid(bidID, auctionID, bidderID string, amount int64, createdAt time.Time) model.Bid {
	return model.Bid{
		BidID:     bidID,
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: createdAt,
	}
}

// seedAuction adds a product and a live auction to the repo
func seedAuction(t *testing.T, repo *MemoryRepo, auctionID string) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	require.NoError(t, repo.AddProduct(ctx, newProduct("prod-"+auctionID, "seller1", 100)))
	require.NoError(t, repo.AddAuction(ctx, newAuction(auctionID, "prod-"+auctionID, now.Add(-time.Hour), now.Add(time.Hour))))
}

// Test RecordBid
func TestMemoryRepo_RecordBid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	seedAuction(t, repo, "auction1")

	tests := []struct {
		name      string
		bid       model.Bid
		wantError bool
	}{
		{name: "valid_bid", bid: newBid("bid1", "auction1", "user1", 105, time.Now().UTC()), wantError: false},
		{name: "auction_not_found", bid: newBid("bid2", "auctionX", "user1", 105, time.Now().UTC()), wantError: true},
		{name: "second_bid_appends", bid: newBid("bid3", "auction1", "user2", 111, time.Now().UTC()), wantError: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := repo.RecordBid(ctx, tc.bid)
			if tc.wantError {
				require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
			} else {
				require.NoError(t, err)
			}
		})
	}

	bids, err := repo.GetBidsByAuction(ctx, "auction1")
	require.NoError(t, err)
	require.Len(t, bids, 2)
}

// Test GetHighestBid picks the max amount, ties broken by earliest timestamp
func TestMemoryRepo_GetHighestBid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	seedAuction(t, repo, "auction1")

	_, err := repo.GetHighestBid(ctx, "auction1")
	require.ErrorIs(t, err, auctionerrors.ErrNoBids)

	base := time.Now().UTC()
	require.NoError(t, repo.RecordBid(ctx, newBid("bid1", "auction1", "user1", 105, base)))
	require.NoError(t, repo.RecordBid(ctx, newBid("bid2", "auction1", "user2", 120, base.Add(time.Second))))
	require.NoError(t, repo.RecordBid(ctx, newBid("bid3", "auction1", "user3", 120, base.Add(2*time.Second))))

	highest, err := repo.GetHighestBid(ctx, "auction1")
	require.NoError(t, err)
	require.Equal(t, "bid2", highest.BidID) // earliest of the tied 120s
	require.Equal(t, int64(120), highest.Amount)
}

// Test proxy bid upsert keeps one entry per (bidder, auction)
func TestMemoryRepo_UpsertProxyBid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	seedAuction(t, repo, "auction1")

	first := model.ProxyBid{
		ProxyBidID: "proxy1",
		BidderID:   "user1",
		AuctionID:  "auction1",
		ProductID:  "prod-auction1",
		MaxAmount:  2000,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	require.NoError(t, repo.UpsertProxyBid(ctx, first))

	// Overwrite with a new max; identity and creation time survive
	second := first
	second.ProxyBidID = "proxy2"
	second.MaxAmount = 3000
	second.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.UpsertProxyBid(ctx, second))

	got, err := repo.GetProxyBid(ctx, "user1", "auction1")
	require.NoError(t, err)
	require.Equal(t, "proxy1", got.ProxyBidID)
	require.Equal(t, int64(3000), got.MaxAmount)

	all, err := repo.GetProxyBidsByAuction(ctx, "auction1")
	require.NoError(t, err)
	require.Len(t, all, 1)
}

// Test GetProxyBidsByAuction returns proxies sorted by max amount descending
func TestMemoryRepo_GetProxyBidsByAuction_Order(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	seedAuction(t, repo, "auction1")

	base := time.Now().UTC()
	for i, max := range []int64{1500, 3000, 2000} {
		require.NoError(t, repo.UpsertProxyBid(ctx, model.ProxyBid{
			ProxyBidID: fmt.Sprintf("proxy%d", i),
			BidderID:   fmt.Sprintf("user%d", i),
			AuctionID:  "auction1",
			ProductID:  "prod-auction1",
			MaxAmount:  max,
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		}))
	}

	proxies, err := repo.GetProxyBidsByAuction(ctx, "auction1")
	require.NoError(t, err)
	require.Len(t, proxies, 3)
	require.Equal(t, int64(3000), proxies[0].MaxAmount)
	require.Equal(t, int64(2000), proxies[1].MaxAmount)
	require.Equal(t, int64(1500), proxies[2].MaxAmount)
}

// Test RemoveProxyBid
func TestMemoryRepo_RemoveProxyBid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	seedAuction(t, repo, "auction1")

	err := repo.RemoveProxyBid(ctx, "user1", "auction1")
	require.ErrorIs(t, err, auctionerrors.ErrNoProxyBid)

	require.NoError(t, repo.UpsertProxyBid(ctx, model.ProxyBid{
		ProxyBidID: "proxy1", BidderID: "user1", AuctionID: "auction1", MaxAmount: 500,
	}))
	require.NoError(t, repo.RemoveProxyBid(ctx, "user1", "auction1"))

	_, err = repo.GetProxyBid(ctx, "user1", "auction1")
	require.ErrorIs(t, err, auctionerrors.ErrNoProxyBid)
}

// Test CreateResult enforces the exactly-once invariant
func TestMemoryRepo_CreateResult_ExactlyOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	seedAuction(t, repo, "auction1")

	result := model.AuctionResult{
		ResultID:   "result1",
		AuctionID:  "auction1",
		WinnerID:   "user1",
		WinningBid: 500,
		EndedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.CreateResult(ctx, result))

	err := repo.CreateResult(ctx, result)
	require.ErrorIs(t, err, auctionerrors.ErrResultExists)

	got, err := repo.GetResult(ctx, "auction1")
	require.NoError(t, err)
	require.Equal(t, "result1", got.ResultID)
}

// Test IncrementBidHistory aggregates instead of appending
func TestMemoryRepo_IncrementBidHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()

	base := time.Now().UTC()
	entry := model.BidHistoryEntry{
		UserID:      "user1",
		ProductID:   "prod1",
		Category:    "electronics",
		Subcategory: "cameras",
		SellerID:    "seller1",
		BidCount:    1,
		LastBidTime: base,
	}
	require.NoError(t, repo.IncrementBidHistory(ctx, entry))

	entry.LastBidTime = base.Add(time.Minute)
	require.NoError(t, repo.IncrementBidHistory(ctx, entry))

	entries, err := repo.GetBidHistoryByUser(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 2, entries[0].BidCount)
	require.Equal(t, base.Add(time.Minute), entries[0].LastBidTime)
}

// Test concurrent bid recording does not lose writes
func TestMemoryRepo_ConcurrentRecordBid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	seedAuction(t, repo, "auction1")

	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			bid := newBid(fmt.Sprintf("bid%d", i), "auction1", fmt.Sprintf("user%d", i), int64(100+i), time.Now().UTC())
			_ = repo.RecordBid(ctx, bid)
		}(i)
	}
	wg.Wait()

	bids, err := repo.GetBidsByAuction(ctx, "auction1")
	require.NoError(t, err)
	require.Len(t, bids, writers)
}
