// Seed populates the store with a few demo users and open auctions so
// the API can be exercised without registering by hand. Safe to re-run:
// duplicate users are skipped via the unique email index.
package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/openbid/auctiond/internal/config"
	"github.com/openbid/auctiond/internal/db"
	"github.com/openbid/auctiond/internal/model"
	"github.com/openbid/auctiond/internal/repository"
)

const demoPassword = "password123"

type demoUser struct {
	firstName, lastName, email, phone string
}

type demoAuction struct {
	sellerEmail      string
	title            string
	description      string
	startingPrice    string
	minimumIncrement string
	duration         time.Duration
}

var demoUsers = []demoUser{
	{"Alice", "Ng", "alice@example.com", "555-0101"},
	{"Bob", "Martin", "bob@example.com", "555-0102"},
	{"Carla", "Reyes", "carla@example.com", "555-0103"},
}

var demoAuctions = []demoAuction{
	{"alice@example.com", "Mid-century armchair", "Teak frame, reupholstered in 2024.", "150", "10", 7 * 24 * time.Hour},
	{"alice@example.com", "Vintage film camera", "Fully serviced, includes 50mm lens.", "220", "5", 3 * 24 * time.Hour},
	{"bob@example.com", "Mechanical keyboard", "Lightly used, brown switches.", "60", "5", 5 * 24 * time.Hour},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close(context.Background())
	log.Println("Connected to database")

	userRepo := repository.NewUserRepository(store)
	auctionRepo := repository.NewAuctionRepository(store)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	sellers := make(map[string]*model.User, len(demoUsers))
	created := 0
	for _, u := range demoUsers {
		user := &model.User{
			FirstName: u.firstName,
			LastName:  u.lastName,
			Email:     u.email,
			Phone:     u.phone,
			Password:  hash,
			CreatedAt: time.Now().UTC(),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			if !mongo.IsDuplicateKeyError(err) {
				log.Fatalf("Failed to seed user %s: %v", u.email, err)
			}
			existing, err := userRepo.FindByEmail(ctx, u.email)
			if err != nil {
				log.Fatalf("Failed to look up existing user %s: %v", u.email, err)
			}
			sellers[u.email] = existing
			continue
		}
		sellers[u.email] = user
		created++
	}
	log.Printf("Seeded %d users (%d already present)", created, len(demoUsers)-created)

	seeded := 0
	for _, a := range demoAuctions {
		seller, ok := sellers[a.sellerEmail]
		if !ok {
			log.Fatalf("No seller for auction %q", a.title)
		}
		auction := model.NewAuction(
			a.title,
			a.description,
			decimal.RequireFromString(a.startingPrice),
			decimal.RequireFromString(a.minimumIncrement),
			time.Now().Add(a.duration).UTC(),
			seller.ID,
			"",
		)
		if _, err := auctionRepo.Create(ctx, auction); err != nil {
			log.Fatalf("Failed to seed auction %q: %v", a.title, err)
		}
		seeded++
	}
	log.Printf("Seeded %d auctions", seeded)
	log.Printf("Demo login: alice@example.com / %s", demoPassword)
}
