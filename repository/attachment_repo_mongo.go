package repository

import (
	"context"
	"time"

	"github.com/Lieutenant23/Construapp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoAttachmentRepo struct {
	DB *mongo.Client
}

func NewMongoAttachmentRepo(db *mongo.Client) *MongoAttachmentRepo {
	return &MongoAttachmentRepo{DB: db}
}

func (r *MongoAttachmentRepo) CreateAttachment(attachment *models.Attachment) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	id, err := nextSequence(ctx, db, "attachment")
	if err != nil {
		return err
	}
	attachment.ID = id
	if attachment.CreatedAt.IsZero() {
		attachment.CreatedAt = time.Now().UTC()
	}
	if attachment.Tipo == "" {
		attachment.Tipo = models.TipoNota
	}

	_, err = db.Collection("attachment").InsertOne(ctx, attachment)
	return err
}

func (r *MongoAttachmentRepo) GetAttachmentByID(id int64) (*models.Attachment, error) {
	ctx := context.Background()
	attachment := &models.Attachment{}

	err := r.DB.Database(mongoDatabase).Collection("attachment").
		FindOne(ctx, bson.M{"id": id}).Decode(attachment)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return attachment, nil
}

func (r *MongoAttachmentRepo) ListAttachmentsByExpense(expenseID int64) ([]*models.Attachment, error) {
	return r.findAttachments(bson.M{"expenseId": expenseID})
}

func (r *MongoAttachmentRepo) ListAttachmentsByProject(projectID int64) ([]*models.Attachment, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	cur, err := db.Collection("expense").Find(ctx, bson.M{"projectId": projectID},
		options.Find().SetProjection(bson.M{"id": 1}))
	if err != nil {
		return nil, err
	}
	var docs []struct {
		ID int64 `bson:"id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return r.findAttachments(bson.M{"expenseId": bson.M{"$in": ids}})
}

func (r *MongoAttachmentRepo) DeleteAttachment(id int64) error {
	ctx := context.Background()
	_, err := r.DB.Database(mongoDatabase).Collection("attachment").
		DeleteOne(ctx, bson.M{"id": id})
	return err
}

func (r *MongoAttachmentRepo) findAttachments(filter bson.M) ([]*models.Attachment, error) {
	ctx := context.Background()

	cur, err := r.DB.Database(mongoDatabase).Collection("attachment").
		Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var attachments []*models.Attachment
	if err := cur.All(ctx, &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}
