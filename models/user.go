package models

import "time"

type User struct {
	ID           int64     `json:"id" db:"id" bson:"id"`
	Name         string    `json:"name" db:"name" bson:"name"`
	Email        string    `json:"email" db:"email" bson:"email"`
	PasswordHash string    `json:"-" db:"password_hash" bson:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" bson:"createdAt"`
}
