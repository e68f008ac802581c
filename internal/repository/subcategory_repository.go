package repository

import (
	"context"
	"time"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SubcategoryRepository struct {
	Col *mongo.Collection
}

func NewSubcategoryRepository(db *mongo.Database) *SubcategoryRepository {
	return &SubcategoryRepository{Col: db.Collection("subcategories")}
}

func (r *SubcategoryRepository) FindByID(ctx context.Context, id string) (*models.Subcategory, error) {
	var sub models.Subcategory
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Exists distinguishes a missing subcategory from one that merely has no
// questions yet.
func (r *SubcategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *SubcategoryRepository) FindByCategory(ctx context.Context, categoryID string) ([]models.Subcategory, error) {
	return r.find(ctx, bson.M{"category_id": categoryID})
}

func (r *SubcategoryRepository) FindByStatus(ctx context.Context, status string) ([]models.Subcategory, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *SubcategoryRepository) Create(ctx context.Context, sub *models.Subcategory) error {
	if sub.ID == "" {
		sub.ID = primitive.NewObjectID().Hex()
	}
	sub.CreatedAt = time.Now()
	_, err := r.Col.InsertOne(ctx, sub)
	return err
}

func (r *SubcategoryRepository) Update(ctx context.Context, id string, update bson.M) error {
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *SubcategoryRepository) find(ctx context.Context, filter bson.M) ([]models.Subcategory, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	subs := []models.Subcategory{}
	for cur.Next(ctx) {
		var s models.Subcategory
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, cur.Err()
}
