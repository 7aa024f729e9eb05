package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"wallboard/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// row is the persisted shape of a record: the id plus the JSON-encoded
// document. Keeping the document opaque means both entity types share one
// schema and the record shape can evolve without migrations.
type row struct {
	ID  string `gorm:"primaryKey;column:id"`
	Doc string `gorm:"column:doc;type:text"`
}

// Gorm is a Store backend persisting records through GORM, one table per
// store. It works against Postgres in production and SQLite in tests.
type Gorm[T any] struct {
	db    *gorm.DB
	table string
}

// NewGorm creates a GORM-backed store over the named table. The table is
// created if it does not exist yet.
func NewGorm[T any](db *gorm.DB, table string) (*Gorm[T], error) {
	if err := db.Table(table).AutoMigrate(&row{}); err != nil {
		return nil, fmt.Errorf("migrate %s store: %w", table, err)
	}
	return &Gorm[T]{db: db, table: table}, nil
}

func (g *Gorm[T]) Get(ctx context.Context, id string) (T, bool, error) {
	defer observability.TrackStoreOp("get", g.table)()

	var zero T
	var r row
	err := g.db.WithContext(ctx).Table(g.table).Where("id = ?", id).Take(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	rec, err := decode[T](r.Doc)
	if err != nil {
		return zero, false, err
	}
	return rec, true, nil
}

func (g *Gorm[T]) Insert(ctx context.Context, id string, rec T) error {
	defer observability.TrackStoreOp("insert", g.table)()

	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s record %s: %w", g.table, id, err)
	}
	return g.db.WithContext(ctx).Table(g.table).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"doc"}),
		}).
		Create(&row{ID: id, Doc: string(doc)}).Error
}

func (g *Gorm[T]) Remove(ctx context.Context, id string) (T, bool, error) {
	defer observability.TrackStoreOp("remove", g.table)()

	rec, ok, err := g.Get(ctx, id)
	if err != nil || !ok {
		return rec, ok, err
	}
	if err := g.db.WithContext(ctx).Table(g.table).Where("id = ?", id).Delete(&row{}).Error; err != nil {
		var zero T
		return zero, false, err
	}
	return rec, true, nil
}

func (g *Gorm[T]) Values(ctx context.Context) ([]T, error) {
	defer observability.TrackStoreOp("values", g.table)()

	var rows []row
	if err := g.db.WithContext(ctx).Table(g.table).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		rec, err := decode[T](r.Doc)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func decode[T any](doc string) (T, error) {
	var rec T
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		return rec, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}
