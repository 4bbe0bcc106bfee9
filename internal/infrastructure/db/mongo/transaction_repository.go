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

const collectionTransactions = "transactions"

type TransactionRepository struct {
	col *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{col: db.Collection(collectionTransactions)}
}

type mongoTransaction struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty"`
	UserID    string                 `bson:"user_id"`
	Title     string                 `bson:"title"`
	Amount    float64                `bson:"amount"`
	Category  string                 `bson:"category"`
	Type      domain.TransactionType `bson:"type"`
	Date      time.Time              `bson:"date"`
	Notes     string                 `bson:"notes,omitempty"`
	Currency  string                 `bson:"currency"`
	CreatedAt time.Time              `bson:"created_at"`
	UpdatedAt time.Time              `bson:"updated_at"`
}

func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoTransaction{
		UserID:    tx.UserID,
		Title:     tx.Title,
		Amount:    tx.Amount,
		Category:  tx.Category,
		Type:      tx.Type,
		Date:      tx.Date,
		Notes:     tx.Notes,
		Currency:  tx.Currency,
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	created := *tx
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// List returns the user's transactions newest first, optionally narrowed by
// category and an inclusive date range. The owner filter is always applied.
func (r *TransactionRepository) List(ctx context.Context, filter ports.ListTransactionsFilter) ([]*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"user_id": filter.UserID}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if !filter.DateFrom.IsZero() || !filter.DateTo.IsZero() {
		dateRange := bson.M{}
		if !filter.DateFrom.IsZero() {
			dateRange["$gte"] = filter.DateFrom
		}
		if !filter.DateTo.IsZero() {
			dateRange["$lte"] = filter.DateTo
		}
		query["date"] = dateRange
	}

	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer cursor.Close(ctx)

	txs := []*domain.Transaction{}
	for cursor.Next(ctx) {
		var mt mongoTransaction
		if err := cursor.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode transaction: %w", err)
		}
		txs = append(txs, mt.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// Update applies a partial update matched on both id and owner. A wrong owner
// and a missing id both come back as ErrTransactionNotFound.
func (r *TransactionRepository) Update(ctx context.Context, id, userID string, update ports.TransactionUpdate) (*domain.Transaction, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTransactionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Amount != nil {
		set["amount"] = *update.Amount
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Type != nil {
		set["type"] = *update.Type
	}
	if update.Date != nil {
		set["date"] = *update.Date
	}
	if update.Notes != nil {
		set["notes"] = *update.Notes
	}
	if update.Currency != nil {
		set["currency"] = *update.Currency
	}

	var mt mongoTransaction
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	return mt.toDomain(), nil
}

// Delete removes a transaction matched on both id and owner.
func (r *TransactionRepository) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTransactionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// EnsureIndexes creates the query indexes on the transactions collection.
func (r *TransactionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "category", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (mt mongoTransaction) toDomain() *domain.Transaction {
	return &domain.Transaction{
		ID:        mt.ID.Hex(),
		UserID:    mt.UserID,
		Title:     mt.Title,
		Amount:    mt.Amount,
		Category:  mt.Category,
		Type:      mt.Type,
		Date:      mt.Date,
		Notes:     mt.Notes,
		Currency:  mt.Currency,
		CreatedAt: mt.CreatedAt,
		UpdatedAt: mt.UpdatedAt,
	}
}
