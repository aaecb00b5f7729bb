package bidding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/auctionlock"
	"auction-engine/internal/events"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
)

type stubProxy struct {
	executed []events.ExecutedBid
	err      error
	calls    int
}

func (p *stubProxy) ProcessProxyBids(_ context.Context, _ string) ([]events.ExecutedBid, error) {
	p.calls++
	return p.executed, p.err
}

func liveAuction(auctionID, productID string) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		AuctionID: auctionID,
		ProductID: productID,
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
		CreatedAt: now.Add(-2 * time.Hour),
	}
}

func endedAuction(auctionID, productID string) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		AuctionID: auctionID,
		ProductID: productID,
		StartTime: now.Add(-2 * time.Hour),
		EndTime:   now.Add(-time.Hour),
		CreatedAt: now.Add(-3 * time.Hour),
	}
}

func testProduct(productID, sellerID string, startingBid int64) model.Product {
	return model.Product{
		ProductID:   productID,
		Name:        "vintage camera",
		SellerID:    sellerID,
		StartingBid: startingBid,
	}
}

func TestPlaceBid_FirstBidAgainstStartingPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	proxy := &stubProxy{}
	service := NewBiddingService(mockRepo, auctionlock.New(), proxy, nil)

	mockRepo.EXPECT().GetAuction(gomock.Any(), "a1").Return(liveAuction("a1", "p1"), nil)
	mockRepo.EXPECT().GetProduct(gomock.Any(), "p1").Return(testProduct("p1", "seller-1", 1000), nil)
	mockRepo.EXPECT().GetHighestBid(gomock.Any(), "a1").Return(model.Bid{}, auctionerrors.ErrNoBids)
	mockRepo.EXPECT().RecordBid(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, bid model.Bid) error {
		require.Equal(t, "a1", bid.AuctionID)
		require.Equal(t, "bidder-1", bid.BidderID)
		require.Equal(t, int64(1050), bid.Amount)
		require.NotEmpty(t, bid.BidID)
		return nil
	})
	mockRepo.EXPECT().IncrementBidHistory(gomock.Any(), gomock.Any()).Return(nil)

	// starting bid 1000 -> 5% tier -> minimum acceptable 1050
	bid, _, err := service.PlaceBid(context.Background(), "a1", "bidder-1", 1050)
	require.NoError(t, err)
	require.Equal(t, int64(1050), bid.Amount)
	require.Equal(t, 1, proxy.calls)
}

func TestPlaceBid_ValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		bidderID  string
		amount    int64
		configure func(m *repository.MockAuctionDB)
		wantErr   error
	}{
		{
			name:     "auction not found",
			bidderID: "bidder-1",
			amount:   1050,
			configure: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetAuction(gomock.Any(), "a1").Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)
			},
			wantErr: auctionerrors.ErrAuctionNotFound,
		},
		{
			name:     "auction not live",
			bidderID: "bidder-1",
			amount:   1050,
			configure: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetAuction(gomock.Any(), "a1").Return(endedAuction("a1", "p1"), nil)
			},
			wantErr: auctionerrors.ErrAuctionNotLive,
		},
		{
			name:     "seller bidding on own product",
			bidderID: "seller-1",
			amount:   1050,
			configure: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetAuction(gomock.Any(), "a1").Return(liveAuction("a1", "p1"), nil)
				m.EXPECT().GetProduct(gomock.Any(), "p1").Return(testProduct("p1", "seller-1", 1000), nil)
			},
			wantErr: auctionerrors.ErrSelfBidding,
		},
		{
			name:     "consecutive bid by current leader",
			bidderID: "bidder-1",
			amount:   2000,
			configure: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetAuction(gomock.Any(), "a1").Return(liveAuction("a1", "p1"), nil)
				m.EXPECT().GetProduct(gomock.Any(), "p1").Return(testProduct("p1", "seller-1", 1000), nil)
				m.EXPECT().GetHighestBid(gomock.Any(), "a1").Return(model.Bid{BidderID: "bidder-1", Amount: 1500}, nil)
			},
			wantErr: auctionerrors.ErrConsecutiveBid,
		},
		{
			name:     "below minimum increment",
			bidderID: "bidder-2",
			amount:   1549, // highest 1500, 5% tier -> minimum 1575
			configure: func(m *repository.MockAuctionDB) {
				m.EXPECT().GetAuction(gomock.Any(), "a1").Return(liveAuction("a1", "p1"), nil)
				m.EXPECT().GetProduct(gomock.Any(), "p1").Return(testProduct("p1", "seller-1", 1000), nil)
				m.EXPECT().GetHighestBid(gomock.Any(), "a1").Return(model.Bid{BidderID: "bidder-1", Amount: 1500}, nil)
			},
			wantErr: auctionerrors.ErrBidTooLow,
		},
		{
			name:      "non-positive amount",
			bidderID:  "bidder-1",
			amount:    0,
			configure: func(m *repository.MockAuctionDB) {},
			wantErr:   auctionerrors.ErrInvalidBid,
		},
		{
			name:      "missing bidder id",
			bidderID:  "",
			amount:    1050,
			configure: func(m *repository.MockAuctionDB) {},
			wantErr:   auctionerrors.ErrInvalidBid,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			tc.configure(mockRepo)

			proxy := &stubProxy{}
			service := NewBiddingService(mockRepo, auctionlock.New(), proxy, nil)

			_, _, err := service.PlaceBid(context.Background(), "a1", tc.bidderID, tc.amount)
			require.ErrorIs(t, err, tc.wantErr)
			require.Zero(t, proxy.calls, "proxy engine must not run after a rejected bid")
		})
	}
}

func TestPlaceBid_ProxyEngineFailureDoesNotFailBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	mockRepo.EXPECT().GetAuction(gomock.Any(), "a1").Return(liveAuction("a1", "p1"), nil)
	mockRepo.EXPECT().GetProduct(gomock.Any(), "p1").Return(testProduct("p1", "seller-1", 1000), nil)
	mockRepo.EXPECT().GetHighestBid(gomock.Any(), "a1").Return(model.Bid{}, auctionerrors.ErrNoBids)
	mockRepo.EXPECT().RecordBid(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().IncrementBidHistory(gomock.Any(), gomock.Any()).Return(nil)

	proxy := &stubProxy{err: errors.New("engine unavailable")}
	service := NewBiddingService(mockRepo, auctionlock.New(), proxy, nil)

	bid, executed, err := service.PlaceBid(context.Background(), "a1", "bidder-1", 1050)
	require.NoError(t, err)
	require.Equal(t, int64(1050), bid.Amount)
	require.Empty(t, executed)
}

func TestPlaceBid_BroadcastsProxyExecutions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	mockRepo.EXPECT().GetAuction(gomock.Any(), "a1").Return(liveAuction("a1", "p1"), nil)
	mockRepo.EXPECT().GetProduct(gomock.Any(), "p1").Return(testProduct("p1", "seller-1", 1000), nil)
	mockRepo.EXPECT().GetHighestBid(gomock.Any(), "a1").Return(model.Bid{}, auctionerrors.ErrNoBids)
	mockRepo.EXPECT().RecordBid(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().IncrementBidHistory(gomock.Any(), gomock.Any()).Return(nil)

	broadcaster := events.NewBroadcaster()
	ch, cancel := broadcaster.Subscribe()
	defer cancel()

	proxy := &stubProxy{executed: []events.ExecutedBid{{BidderID: "proxy-1", Amount: 1103}}}
	service := NewBiddingService(mockRepo, auctionlock.New(), proxy, broadcaster)

	_, executed, err := service.PlaceBid(context.Background(), "a1", "bidder-1", 1050)
	require.NoError(t, err)
	require.Len(t, executed, 1)

	select {
	case event := <-ch:
		require.Equal(t, events.TypeProxyBidsExecuted, event.Type)
		require.Equal(t, "a1", event.AuctionID)
		require.Equal(t, proxy.executed, event.Executed)
	case <-time.After(time.Second):
		t.Fatal("expected proxy_bids_executed event")
	}
}

func TestPlaceBid_BidHistoryFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	mockRepo.EXPECT().GetAuction(gomock.Any(), "a1").Return(liveAuction("a1", "p1"), nil)
	mockRepo.EXPECT().GetProduct(gomock.Any(), "p1").Return(testProduct("p1", "seller-1", 1000), nil)
	mockRepo.EXPECT().GetHighestBid(gomock.Any(), "a1").Return(model.Bid{}, auctionerrors.ErrNoBids)
	mockRepo.EXPECT().RecordBid(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().IncrementBidHistory(gomock.Any(), gomock.Any()).Return(auctionerrors.ErrPersistence)

	service := NewBiddingService(mockRepo, auctionlock.New(), &stubProxy{}, nil)

	_, _, err := service.PlaceBid(context.Background(), "a1", "bidder-1", 1050)
	require.NoError(t, err)
}

func TestCurrentAmount(t *testing.T) {
	t.Run("falls back to starting bid with empty ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repository.NewMockAuctionDB(ctrl)
		mockRepo.EXPECT().GetAuction(gomock.Any(), "a1").Return(liveAuction("a1", "p1"), nil)
		mockRepo.EXPECT().GetHighestBid(gomock.Any(), "a1").Return(model.Bid{}, auctionerrors.ErrNoBids)
		mockRepo.EXPECT().GetProduct(gomock.Any(), "p1").Return(testProduct("p1", "seller-1", 750), nil)

		service := NewBiddingService(mockRepo, auctionlock.New(), nil, nil)
		amount, err := service.CurrentAmount(context.Background(), "a1")
		require.NoError(t, err)
		require.Equal(t, int64(750), amount)
	})

	t.Run("uses highest bid when present", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := repository.NewMockAuctionDB(ctrl)
		mockRepo.EXPECT().GetAuction(gomock.Any(), "a1").Return(liveAuction("a1", "p1"), nil)
		mockRepo.EXPECT().GetHighestBid(gomock.Any(), "a1").Return(model.Bid{Amount: 4200}, nil)

		service := NewBiddingService(mockRepo, auctionlock.New(), nil, nil)
		amount, err := service.CurrentAmount(context.Background(), "a1")
		require.NoError(t, err)
		require.Equal(t, int64(4200), amount)
	})
}

func TestListAuctionsByStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	auctions := []model.Auction{
		{AuctionID: "live", StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)},
		{AuctionID: "upcoming", StartTime: now.Add(time.Hour), EndTime: now.Add(2 * time.Hour)},
		{AuctionID: "ended", StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Hour)},
	}

	mockRepo := repository.NewMockAuctionDB(ctrl)
	mockRepo.EXPECT().ListAuctions(gomock.Any()).Return(auctions, nil)

	service := NewBiddingService(mockRepo, auctionlock.New(), nil, nil)
	grouped, err := service.ListAuctionsByStatus(context.Background())
	require.NoError(t, err)
	require.Len(t, grouped.Live, 1)
	require.Len(t, grouped.Upcoming, 1)
	require.Len(t, grouped.Ended, 1)
	require.Equal(t, "live", grouped.Live[0].AuctionID)
	require.Equal(t, "upcoming", grouped.Upcoming[0].AuctionID)
	require.Equal(t, "ended", grouped.Ended[0].AuctionID)
}
