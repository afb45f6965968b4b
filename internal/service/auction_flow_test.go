package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openbid/auctiond/internal/errors"
	"github.com/openbid/auctiond/internal/model"
)

// fakeAuctionRepo is an in-memory AuctionRepository whose AppendBid
// honors the same conditional-update contract as the store: the append
// and the current-bid raise happen atomically, and only if the stored
// current bid is still below the new amount and the auction still open.
type fakeAuctionRepo struct {
	mu       sync.Mutex
	auctions map[primitive.ObjectID]*model.Auction
}

func newFakeAuctionRepo() *fakeAuctionRepo {
	return &fakeAuctionRepo{auctions: make(map[primitive.ObjectID]*model.Auction)}
}

func (r *fakeAuctionRepo) Create(_ context.Context, auction *model.Auction) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := primitive.NewObjectID()
	auction.ID = id
	stored := *auction
	stored.Bids = append([]model.Bid{}, auction.Bids...)
	r.auctions[id] = &stored
	return id, nil
}

func (r *fakeAuctionRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.auctions[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	snapshot := *stored
	snapshot.Bids = append([]model.Bid{}, stored.Bids...)
	return &snapshot, nil
}

func (r *fakeAuctionRepo) FindDocument(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	auction, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return bson.M{
		"_id":         auction.ID,
		"title":       auction.Title,
		"current_bid": auction.CurrentBid,
		"end_time":    auction.EndTime,
		"seller_id":   auction.SellerID,
	}, nil
}

func (r *fakeAuctionRepo) ListDocuments(context.Context) ([]bson.M, error) {
	return nil, nil
}

func (r *fakeAuctionRepo) ListBySeller(context.Context, primitive.ObjectID) ([]bson.M, error) {
	return nil, nil
}

func (r *fakeAuctionRepo) ListByBidder(context.Context, primitive.ObjectID) ([]bson.M, error) {
	return nil, nil
}

func (r *fakeAuctionRepo) AppendBid(_ context.Context, auctionID primitive.ObjectID, bid model.Bid) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.auctions[auctionID]
	if !ok {
		return false, nil
	}
	current, err := model.FromDecimal128(stored.CurrentBid)
	if err != nil {
		return false, err
	}
	amount, err := model.FromDecimal128(bid.Amount)
	if err != nil {
		return false, err
	}
	if !amount.GreaterThan(current) || stored.Ended(bid.Time) {
		return false, nil
	}
	stored.Bids = append(stored.Bids, bid)
	stored.CurrentBid = bid.Amount
	return true, nil
}

func createOpenAuction(t *testing.T, svc AuctionService, sellerID primitive.ObjectID) primitive.ObjectID {
	t.Helper()
	out, err := svc.Create(t.Context(), sellerID.Hex(), CreateAuctionParams{
		Title:            "Vase",
		Description:      "A vase",
		StartingPrice:    decimal.New(100, 0),
		MinimumIncrement: decimal.New(5, 0),
		EndTime:          time.Now().Add(7 * 24 * time.Hour).UTC().Format(time.RFC3339),
	})
	require.NoError(t, err)
	doc := out.(map[string]any)
	id, err := primitive.ObjectIDFromHex(doc["_id"].(string))
	require.NoError(t, err)
	return id
}

func TestBidSequence(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAuctionRepo()
	svc := NewAuctionService(repo, nil)

	seller := primitive.NewObjectID()
	bidderA := primitive.NewObjectID()
	bidderB := primitive.NewObjectID()

	auctionID := createOpenAuction(t, svc, seller)

	stored, err := repo.FindByID(ctx, auctionID)
	require.NoError(t, err)
	assert.Equal(t, model.ToDecimal128(decimal.New(100, 0)), stored.CurrentBid)
	assert.Empty(t, stored.Bids)

	// 150 beats the 100 starting price
	require.NoError(t, svc.PlaceBid(ctx, bidderA.Hex(), auctionID.Hex(), decimal.New(150, 0)))

	// 120 is below the new current bid
	err = svc.PlaceBid(ctx, bidderB.Hex(), auctionID.Hex(), decimal.New(120, 0))
	assert.True(t, errors.IsKind(err, errors.KindValidation))
	assert.EqualError(t, err, "Bid must be higher than current bid ($150)")

	// 200 by a different user beats 150
	require.NoError(t, svc.PlaceBid(ctx, bidderB.Hex(), auctionID.Hex(), decimal.New(200, 0)))

	stored, err = repo.FindByID(ctx, auctionID)
	require.NoError(t, err)
	assert.Equal(t, model.ToDecimal128(decimal.New(200, 0)), stored.CurrentBid)
	require.Len(t, stored.Bids, 2)
	assert.Equal(t, bidderA, stored.Bids[0].UserID)
	assert.Equal(t, bidderB, stored.Bids[1].UserID)
}

func TestConcurrentBidsNeverRegress(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAuctionRepo()
	svc := NewAuctionService(repo, nil)

	auctionID := createOpenAuction(t, svc, primitive.NewObjectID())

	const bidders = 32
	var wg sync.WaitGroup
	results := make([]error, bidders)
	for i := 0; i < bidders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			amount := decimal.New(int64(101+i), 0)
			results[i] = svc.PlaceBid(ctx, primitive.NewObjectID().Hex(), auctionID.Hex(), amount)
		}(i)
	}
	wg.Wait()

	accepted := 0
	for i, err := range results {
		if err == nil {
			accepted++
			continue
		}
		ok := errors.IsKind(err, errors.KindValidation) || errors.IsKind(err, errors.KindOutbid)
		assert.True(t, ok, fmt.Sprintf("bid %d failed with unexpected error: %v", i, err))
	}
	require.Greater(t, accepted, 0)

	stored, err := repo.FindByID(ctx, auctionID)
	require.NoError(t, err)
	require.Len(t, stored.Bids, accepted)

	// accepted amounts are strictly increasing, so no accepted bid ever
	// lowered the current bid
	prev := decimal.New(100, 0)
	for _, bid := range stored.Bids {
		amount, err := model.FromDecimal128(bid.Amount)
		require.NoError(t, err)
		assert.True(t, amount.GreaterThan(prev), "bid sequence regressed: %s after %s", amount, prev)
		prev = amount
	}

	// the highest bid (132) can never lose its conditional update to a
	// lower amount, so it always ends up as the final current bid
	final, err := model.FromDecimal128(stored.CurrentBid)
	require.NoError(t, err)
	assert.True(t, final.Equal(decimal.New(132, 0)))
	assert.True(t, final.Equal(prev))
}
