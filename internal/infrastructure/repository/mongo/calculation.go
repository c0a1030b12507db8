package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/ayankousky/interest-calculator/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CalculationRepository is a MongoDB-backed repository for calculations
type CalculationRepository struct {
	collection *mongo.Collection
}

var _ domain.CalculationRepository = &CalculationRepository{}

// Create stores a calculation
func (r *CalculationRepository) Create(ctx context.Context, calc domain.Calculation) error {
	if _, err := r.collection.InsertOne(ctx, calc); err != nil {
		return fmt.Errorf("inserting calculation: %w", err)
	}
	return nil
}

// GetHistorySince returns all calculations created since the given time,
// oldest first
func (r *CalculationRepository) GetHistorySince(ctx context.Context, since time.Time) ([]domain.Calculation, error) {
	filter := bson.M{"created_at": bson.M{"$gte": since}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("querying calculations: %w", err)
	}
	defer cursor.Close(ctx)

	var calculations []domain.Calculation
	for cursor.Next(ctx) {
		var calc domain.Calculation
		if err := cursor.Decode(&calc); err != nil {
			return nil, fmt.Errorf("decoding calculation: %w", err)
		}
		calculations = append(calculations, calc)
	}
	return calculations, cursor.Err()
}
