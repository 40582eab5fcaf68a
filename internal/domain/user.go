package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FullName      string             `json:"full_name" bson:"full_name"`
	Email         string             `json:"email" bson:"email"`
	ContactNumber string             `json:"contact_number" bson:"contact_number"`
	IDNumber      string             `json:"id_number" bson:"id_number"`
	PasswordHash  string             `json:"-" bson:"password"`
}
