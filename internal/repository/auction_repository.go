package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openbid/auctiond/internal/db"
	"github.com/openbid/auctiond/internal/model"
)

// AuctionRepository defines auction persistence operations. Read paths
// used for wire output return raw documents so the serialization adapter
// can normalize identifiers and timestamps generically.
type AuctionRepository interface {
	Create(ctx context.Context, auction *model.Auction) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Auction, error)
	FindDocument(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	ListDocuments(ctx context.Context) ([]bson.M, error)
	ListBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]bson.M, error)
	ListByBidder(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error)
	AppendBid(ctx context.Context, auctionID primitive.ObjectID, bid model.Bid) (bool, error)
}

type auctionRepository struct {
	coll *mongo.Collection
}

// NewAuctionRepository creates a new auction repository.
func NewAuctionRepository(store *db.Store) AuctionRepository {
	return &auctionRepository{coll: store.Auctions()}
}

// Create inserts a new auction and returns its identifier.
func (r *auctionRepository) Create(ctx context.Context, auction *model.Auction) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, auction)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, mongo.ErrNilDocument
	}
	auction.ID = oid
	return oid, nil
}

// FindByID decodes an auction into its typed model.
func (r *auctionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Auction, error) {
	var auction model.Auction
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&auction); err != nil {
		return nil, err
	}
	return &auction, nil
}

// FindDocument returns an auction as a raw document.
func (r *auctionRepository) FindDocument(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ListDocuments returns all auctions in natural store order.
func (r *auctionRepository) ListDocuments(ctx context.Context) ([]bson.M, error) {
	return r.findDocuments(ctx, bson.M{})
}

// ListBySeller returns the auctions created by sellerID.
func (r *auctionRepository) ListBySeller(ctx context.Context, sellerID primitive.ObjectID) ([]bson.M, error) {
	return r.findDocuments(ctx, bson.M{"seller_id": sellerID})
}

// ListByBidder returns the auctions containing at least one bid by userID.
func (r *auctionRepository) ListByBidder(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error) {
	return r.findDocuments(ctx, bson.M{"bids.user_id": userID})
}

func (r *auctionRepository) findDocuments(ctx context.Context, filter bson.M) ([]bson.M, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// AppendBid atomically appends a bid and raises the current bid in a
// single conditional update. The filter requires the stored current bid
// to still be below the new amount and the auction to still be open at
// write time, so a racing lower bid can never overwrite a higher one.
// Returns false when the condition did not match; the caller re-reads the
// document to diagnose why.
func (r *auctionRepository) AppendBid(ctx context.Context, auctionID primitive.ObjectID, bid model.Bid) (bool, error) {
	filter := bson.M{
		"_id":         auctionID,
		"current_bid": bson.M{"$lt": bid.Amount},
		"end_time":    bson.M{"$gt": bid.Time},
	}
	update := bson.M{
		"$push": bson.M{"bids": bid},
		"$set":  bson.M{"current_bid": bid.Amount},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}
