package repository

import (
	"context"
	"time"

	"github.com/Lieutenant23/Construapp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoExpenseRepo struct {
	DB *mongo.Client
}

func NewMongoExpenseRepo(db *mongo.Client) *MongoExpenseRepo {
	return &MongoExpenseRepo{DB: db}
}

func (r *MongoExpenseRepo) CreateExpense(expense *models.Expense) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	id, err := nextSequence(ctx, db, "expense")
	if err != nil {
		return err
	}
	expense.ID = id
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = time.Now().UTC()
	}

	_, err = db.Collection("expense").InsertOne(ctx, expense)
	return err
}

func (r *MongoExpenseRepo) GetExpenseByID(id int64) (*models.Expense, error) {
	ctx := context.Background()
	expense := &models.Expense{}

	err := r.DB.Database(mongoDatabase).Collection("expense").
		FindOne(ctx, bson.M{"id": id}).Decode(expense)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return expense, nil
}

func (r *MongoExpenseRepo) ListExpensesByProject(projectID int64) ([]*models.Expense, error) {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	cur, err := db.Collection("expense").Find(ctx, bson.M{"projectId": projectID},
		options.Find().SetSort(bson.D{{Key: "id", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var expenses []*models.Expense
	if err := cur.All(ctx, &expenses); err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return expenses, nil
	}

	ids := make([]int64, 0, len(expenses))
	byID := make(map[int64]*models.Expense, len(expenses))
	for _, e := range expenses {
		ids = append(ids, e.ID)
		byID[e.ID] = e
	}

	attCur, err := db.Collection("attachment").Find(ctx,
		bson.M{"expenseId": bson.M{"$in": ids}},
		options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var attachments []*models.Attachment
	if err := attCur.All(ctx, &attachments); err != nil {
		return nil, err
	}
	for _, a := range attachments {
		if e, ok := byID[a.ExpenseID]; ok {
			e.Attachments = append(e.Attachments, a)
		}
	}
	return expenses, nil
}

func (r *MongoExpenseRepo) UpdateExpense(expense *models.Expense) error {
	ctx := context.Background()

	_, err := r.DB.Database(mongoDatabase).Collection("expense").UpdateOne(ctx,
		bson.M{"id": expense.ID},
		bson.M{"$set": bson.M{
			"descricao":  expense.Descricao,
			"valorCents": expense.Valor.Cents(),
			"categoria":  expense.Categoria,
		}},
	)
	return err
}

func (r *MongoExpenseRepo) DeleteExpenseCascade(expenseID int64) error {
	ctx := context.Background()
	db := r.DB.Database(mongoDatabase)

	if _, err := db.Collection("attachment").DeleteMany(ctx, bson.M{"expenseId": expenseID}); err != nil {
		return err
	}
	_, err := db.Collection("expense").DeleteOne(ctx, bson.M{"id": expenseID})
	return err
}
