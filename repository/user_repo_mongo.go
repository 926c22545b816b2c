package repository

import (
	"context"
	"time"

	"github.com/Lieutenant23/Construapp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepo struct {
	DB *mongo.Client
}

func NewMongoUserRepo(db *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) CreateUser(user *models.User) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	existing, err := r.GetUserByEmail(user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	id, err := nextSequence(ctx, db, "app_user")
	if err != nil {
		return err
	}
	user.ID = id
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err = db.Collection("app_user").InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepo) GetUserByEmail(email string) (*models.User, error) {
	ctx := context.Background()
	user := &models.User{}

	err := r.DB.Database(mongoDatabase).Collection("app_user").
		FindOne(ctx, bson.M{"email": email}).Decode(user)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *MongoUserRepo) GetUserByID(id int64) (*models.User, error) {
	ctx := context.Background()
	user := &models.User{}

	err := r.DB.Database(mongoDatabase).Collection("app_user").
		FindOne(ctx, bson.M{"id": id}).Decode(user)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
