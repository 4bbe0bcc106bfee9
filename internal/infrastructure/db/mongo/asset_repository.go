package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

const collectionAssets = "assets"

type AssetRepository struct {
	col *mongo.Collection
}

func NewAssetRepository(db *mongo.Database) *AssetRepository {
	return &AssetRepository{col: db.Collection(collectionAssets)}
}

type mongoAsset struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"user_id"`
	Name         string             `bson:"name"`
	Type         domain.AssetType   `bson:"type"`
	Value        float64            `bson:"value"`
	PurchaseDate time.Time          `bson:"purchase_date"`
	Appreciation float64            `bson:"appreciation"`
	Description  string             `bson:"description,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (r *AssetRepository) Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAsset{
		UserID:       asset.UserID,
		Name:         asset.Name,
		Type:         asset.Type,
		Value:        asset.Value,
		PurchaseDate: asset.PurchaseDate,
		Appreciation: asset.Appreciation,
		Description:  asset.Description,
		CreatedAt:    asset.CreatedAt,
		UpdatedAt:    asset.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert asset: %w", err)
	}

	created := *asset
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *AssetRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer cursor.Close(ctx)

	assets := []*domain.Asset{}
	for cursor.Next(ctx) {
		var ma mongoAsset
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode asset: %w", err)
		}
		assets = append(assets, ma.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

// Update applies a partial update matched on both id and owner.
func (r *AssetRepository) Update(ctx context.Context, id, userID string, update ports.AssetUpdate) (*domain.Asset, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAssetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Type != nil {
		set["type"] = *update.Type
	}
	if update.Value != nil {
		set["value"] = *update.Value
	}
	if update.PurchaseDate != nil {
		set["purchase_date"] = *update.PurchaseDate
	}
	if update.Appreciation != nil {
		set["appreciation"] = *update.Appreciation
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}

	var ma mongoAsset
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ma)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, fmt.Errorf("update asset: %w", err)
	}
	return ma.toDomain(), nil
}

// Delete removes an asset matched on both id and owner.
func (r *AssetRepository) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAssetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index on the assets collection.
func (r *AssetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

func (ma mongoAsset) toDomain() *domain.Asset {
	return &domain.Asset{
		ID:           ma.ID.Hex(),
		UserID:       ma.UserID,
		Name:         ma.Name,
		Type:         ma.Type,
		Value:        ma.Value,
		PurchaseDate: ma.PurchaseDate,
		Appreciation: ma.Appreciation,
		Description:  ma.Description,
		CreatedAt:    ma.CreatedAt,
		UpdatedAt:    ma.UpdatedAt,
	}
}
