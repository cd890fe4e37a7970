package models

import "time"

type TimeModel struct {
	CreatedAt time.Time  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}
