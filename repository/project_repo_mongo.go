package repository

import (
	"context"
	"time"

	"github.com/Lieutenant23/Construapp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoProjectRepo struct {
	DB *mongo.Client
}

func NewMongoProjectRepo(db *mongo.Client) *MongoProjectRepo {
	return &MongoProjectRepo{DB: db}
}

func (r *MongoProjectRepo) CreateProject(project *models.Project) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	id, err := nextSequence(ctx, db, "project")
	if err != nil {
		return err
	}
	project.ID = id
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	if project.Status == "" {
		project.Status = models.StatusAtivo
	}

	_, err = db.Collection("project").InsertOne(ctx, project)
	return err
}

func (r *MongoProjectRepo) ListProjectsByUser(userID int64) ([]*models.Project, error) {
	ctx := context.Background()

	cur, err := r.DB.Database(mongoDatabase).Collection("project").
		Find(ctx, bson.M{"userId": userID}, options.Find().SetSort(bson.D{{Key: "id", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var projects []*models.Project
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *MongoProjectRepo) GetProjectByID(id int64) (*models.Project, error) {
	ctx := context.Background()
	project := &models.Project{}

	err := r.DB.Database(mongoDatabase).Collection("project").
		FindOne(ctx, bson.M{"id": id}).Decode(project)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return project, nil
}

func (r *MongoProjectRepo) UpdateProject(project *models.Project) error {
	ctx := context.Background()

	_, err := r.DB.Database(mongoDatabase).Collection("project").UpdateOne(ctx,
		bson.M{"id": project.ID},
		bson.M{"$set": bson.M{
			"name":    project.Name,
			"address": project.Address,
			"status":  project.Status,
		}},
	)
	return err
}

// DeleteProjectCascade removes attachment rows, expense rows and the
// project. Mongo has no multi-collection transaction on standalone
// deployments, so deletions run leaf-first to avoid orphans.
func (r *MongoProjectRepo) DeleteProjectCascade(projectID int64) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	cur, err := db.Collection("expense").Find(ctx, bson.M{"projectId": projectID},
		options.Find().SetProjection(bson.M{"id": 1}))
	if err != nil {
		return err
	}
	var docs []struct {
		ID int64 `bson:"id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return err
	}
	ids := make([]int64, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}

	if len(ids) > 0 {
		if _, err := db.Collection("attachment").DeleteMany(ctx, bson.M{"expenseId": bson.M{"$in": ids}}); err != nil {
			return err
		}
		if _, err := db.Collection("expense").DeleteMany(ctx, bson.M{"projectId": projectID}); err != nil {
			return err
		}
	}
	_, err = db.Collection("project").DeleteOne(ctx, bson.M{"id": projectID})
	return err
}
