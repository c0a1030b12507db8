// Package mongo persists calculations in MongoDB
package mongo

import (
	"github.com/ayankousky/interest-calculator/internal/domain"
	"go.mongodb.org/mongo-driver/mongo"
)

const databaseName = "interest"

// Factory is a factory for creating mongo repositories
type Factory struct {
	client *mongo.Client
}

// NewFactory creates a new Factory
func NewFactory(client *mongo.Client) (*Factory, error) {
	return &Factory{client: client}, nil
}

// GetCalculationRepository returns a CalculationRepository backed by the
// "<name>_calculations" collection
func (f *Factory) GetCalculationRepository(name string) (domain.CalculationRepository, error) {
	return &CalculationRepository{
		collection: f.client.Database(databaseName).Collection(name + "_calculations"),
	}, nil
}
