package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/emirhanakgul/toolshop-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Collection names. Users have their own typed table; everything else is a
// schema-less document collection.
const (
	Products = "products"
	Reviews  = "reviews"
	Orders   = "orders"
)

// Store hands out named collections over the shared documents table.
type Store struct {
	db            *gorm.DB
	warnThreshold int
}

func New(db *gorm.DB, warnThreshold int) *Store {
	return &Store{db: db, warnThreshold: warnThreshold}
}

func (s *Store) Collection(name string) *Collection {
	return &Collection{db: s.db, name: name, warnThreshold: s.warnThreshold}
}

// Collection is one named partition of the documents table. All reads and
// writes are single statements; there are no transactions at this layer.
type Collection struct {
	db            *gorm.DB
	name          string
	warnThreshold int
}

func (c *Collection) Name() string { return c.name }

// Find returns every document matching the filter, ANDing a JSONB
// field-equals condition per entry. An empty filter returns the whole
// collection. Results are not paginated; scans at or above the warn
// threshold are logged.
func (c *Collection) Find(ctx context.Context, filter map[string]string) ([]models.Document, error) {
	q := c.db.WithContext(ctx).Where("collection = ?", c.name)
	for field, value := range filter {
		q = q.Where(datatypes.JSONQuery("data").Equals(value, field))
	}

	docs := make([]models.Document, 0)
	if err := q.Order("created_at").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("find in %s: %w", c.name, err)
	}

	if c.warnThreshold > 0 && len(docs) >= c.warnThreshold {
		slog.Warn("unbounded collection scan", "collection", c.name, "rows", len(docs))
	}
	return docs, nil
}

// FindByID returns the matching document, or (nil, nil) when absent.
func (c *Collection) FindByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := c.db.WithContext(ctx).
		Where("collection = ? AND id = ?", c.name, id).
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s by id: %w", c.name, err)
	}
	return &doc, nil
}

// Insert stores the body verbatim and returns the generated id. The id is
// immutable from this point on.
func (c *Collection) Insert(ctx context.Context, data map[string]interface{}) (uuid.UUID, error) {
	doc := models.Document{
		ID:         uuid.New(),
		Collection: c.name,
		Data:       datatypes.JSONMap(data),
	}
	if err := c.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return uuid.Nil, fmt.Errorf("insert into %s: %w", c.name, err)
	}
	return doc.ID, nil
}

// DeleteByID removes at most one document and returns the affected count.
// Deleting an id that does not exist is not an error; the count is 0.
func (c *Collection) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	res := c.db.WithContext(ctx).
		Where("collection = ? AND id = ?", c.name, id).
		Delete(&models.Document{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete from %s: %w", c.name, res.Error)
	}
	return res.RowsAffected, nil
}
