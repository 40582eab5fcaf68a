package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Item struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Category     string             `json:"category" bson:"category"`
	Subcategory  string             `json:"subcategory" bson:"subcategory"`
	Price        float64            `json:"price" bson:"price"`
	Quantity     int32              `json:"quantity" bson:"quantity"`
	Availability bool               `json:"availability" bson:"availability"`
	ImageURL     string             `json:"image_url" bson:"image_url"`
	Locations    []string           `json:"available_locations" bson:"available_locations"`
	IsFeatured   bool               `json:"is_featured,omitempty" bson:"is_featured,omitempty"`
}

// Available reports whether the item can be booked. Availability is derived
// from quantity; the stored availability flag is recomputed on every
// quantity update.
func (i *Item) Available() bool {
	return i.Quantity > 0
}
