package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. Immutable after registration; referenced
// by Auction.seller_id and Bid.user_id.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	FirstName  string             `bson:"firstName"`
	LastName   string             `bson:"lastName"`
	Email      string             `bson:"email"`
	Phone      string             `bson:"phone"`
	Password   []byte             `bson:"password"` // bcrypt hash, never serialized
	CreatedAt  time.Time          `bson:"created_at"`
	Rating     int                `bson:"rating"`
	TotalSales int                `bson:"total_sales"`
}

// PublicUser is the wire-safe summary returned by login.
type PublicUser struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Public returns the wire-safe summary of u.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID.Hex(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
