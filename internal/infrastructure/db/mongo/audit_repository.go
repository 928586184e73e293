package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/merchantry/storefront-api/internal/core/domain"
	"github.com/merchantry/storefront-api/internal/core/ports"
)

const collectionAudit = "audit_events"

// AuditRepository persists security audit events. Records are append-only;
// nothing in the system updates or deletes them.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAudit)}
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"email":       event.Email,
		"kind":        event.Kind,
		"detail":      event.Detail,
		"timestamp":   event.Timestamp.UTC(),
		"recorded_at": time.Now().UTC(),
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if limit <= 0 || limit > 500 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.AuditEvent
	for cur.Next(ctx) {
		var doc struct {
			Email     string    `bson:"email"`
			Kind      string    `bson:"kind"`
			Detail    string    `bson:"detail"`
			Timestamp time.Time `bson:"timestamp"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, domain.AuditEvent{
			Email:     doc.Email,
			Kind:      doc.Kind,
			Detail:    doc.Detail,
			Timestamp: doc.Timestamp,
		})
	}
	return out, cur.Err()
}
