package mongodb

import (
	"unirent-backend/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	db *mongo.Database
	repository.ItemRepository
	repository.BookingRepository
	repository.UserRepository
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		db:                db,
		ItemRepository:    NewItemRepository(db),
		BookingRepository: NewBookingRepository(db),
		UserRepository:    NewUserRepository(db),
	}
}
