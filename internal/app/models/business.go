package models

type Business struct {
	Name      string `json:"name" bson:"name" validate:"required"`
	Hours     string `json:"hours" bson:"hours" validate:"required"`
	TimeModel `bson:",inline"`
}
