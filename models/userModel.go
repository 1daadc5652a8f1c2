package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Name         *string            `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email        *string            `json:"email" bson:"email" validate:"email,required"`
	Password     *string            `json:"password,omitempty" bson:"password" validate:"required,min=6"`
	Img          string             `json:"img" bson:"img"`
	ImgKey       string             `json:"-" bson:"img_key"`
	Token        *string            `json:"token" bson:"token"`
	RefreshToken *string            `json:"refresh_token" bson:"refresh_token"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
	UserID       string             `json:"user_id" bson:"user_id"`
}
