package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/merchantry/storefront-api/internal/core/domain"
)

const (
	collectionSettings = "settings"
	settingsDocID      = "site"
)

// Defaults applied before the settings document is first saved.
const (
	defaultSiteTitle = "Storefront"
	defaultCurrency  = "USD"
)

// SettingsRepository stores the single site-settings document under a
// fixed _id so Save is an upsert and Get never races with it.
type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection(collectionSettings)}
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Settings
	err := r.col.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &domain.Settings{Title: defaultSiteTitle, Currency: defaultCurrency}, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"title":        s.Title,
		"logo":         s.Logo,
		"currency":     s.Currency,
		"analytics_id": s.AnalyticsID,
		"updated_at":   s.UpdatedAt,
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.col.UpdateOne(ctx, bson.M{"_id": settingsDocID}, bson.M{"$set": doc}, opts); err != nil {
		return nil, err
	}
	return s, nil
}
