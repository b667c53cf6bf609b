// Command gen writes type-safe gorm query helpers for the card model into
// internal/infra/persistence/postgres/query. Run it after changing CardModel.
package main

import (
	"bizcard/internal/infra/persistence/model"

	"gorm.io/gen"
)

// CardQuerier declares the hand written queries generated alongside the basic CRUD helpers.
type CardQuerier interface {
	// SELECT * FROM @@table WHERE url_slug = @slug ORDER BY created_at, id
	FindBySlug(slug string) ([]gen.T, error)

	// SELECT * FROM @@table WHERE user_id = @ownerID ORDER BY created_at, id
	FindByOwner(ownerID string) ([]gen.T, error)
}

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(model.CardModel{})
	g.ApplyInterface(func(CardQuerier) {}, model.CardModel{})

	g.Execute()
}
