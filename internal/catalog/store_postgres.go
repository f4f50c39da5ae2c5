// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/cookbook/internal/platform/apperr"
	"github.com/taibuivan/cookbook/internal/platform/database/schema"
	"github.com/taibuivan/cookbook/internal/platform/dberr"
	"github.com/taibuivan/cookbook/internal/platform/postgres"
	"github.com/taibuivan/cookbook/internal/recipe"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresRepository stores recipes in cookbook.recipe.
type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context) ([]recipe.Recipe, error) {
	query, args, err := psql.Select(schema.RefRecipe.Columns()...).
		From(schema.RefRecipe.Table).
		OrderBy(schema.RefRecipe.CreatedAt+" ASC", schema.RefRecipe.ID+" ASC").
		ToSql()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, resourceRecipe, "list_recipes")
	}
	defer rows.Close()

	recipes := make([]recipe.Recipe, 0)
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceRecipe, "scan_recipe")
		}
		recipes = append(recipes, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceRecipe, "list_recipes")
	}

	return recipes, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*recipe.Recipe, error) {
	query, args, err := psql.Select(schema.RefRecipe.Columns()...).
		From(schema.RefRecipe.Table).
		Where(sq.Eq{schema.RefRecipe.ID: id}).
		ToSql()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	r, err := scanRecipe(repository.db.QueryRow(context, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, resourceRecipe, "get_recipe")
	}
	return r, nil
}

func (repository *PostgresRepository) Create(context context.Context, r *recipe.Recipe) (*recipe.Recipe, error) {
	query, args, err := psql.Insert(schema.RefRecipe.Table).
		Columns(schema.RefRecipe.Columns()...).
		Values(r.ID, r.Title, r.Description, r.Instructions, r.ImageURL, ingredients(r), r.Favourite).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	created, err := scanRecipe(repository.db.QueryRow(context, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, resourceRecipe, "create_recipe")
	}
	return created, nil
}

func (repository *PostgresRepository) Update(context context.Context, id string, r *recipe.Recipe) (*recipe.Recipe, error) {
	query, args, err := psql.Update(schema.RefRecipe.Table).
		Set(schema.RefRecipe.Title, r.Title).
		Set(schema.RefRecipe.Description, r.Description).
		Set(schema.RefRecipe.Instructions, r.Instructions).
		Set(schema.RefRecipe.ImageURL, r.ImageURL).
		Set(schema.RefRecipe.Ingredients, ingredients(r)).
		Set(schema.RefRecipe.Favourite, r.Favourite).
		Set(schema.RefRecipe.UpdatedAt, sq.Expr("now()")).
		Where(sq.Eq{schema.RefRecipe.ID: id}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	updated, err := scanRecipe(repository.db.QueryRow(context, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, resourceRecipe, "update_recipe")
	}
	return updated, nil
}

func (repository *PostgresRepository) SetFavourite(context context.Context, id string, favourite bool) (*recipe.Recipe, error) {
	query, args, err := psql.Update(schema.RefRecipe.Table).
		Set(schema.RefRecipe.Favourite, favourite).
		Set(schema.RefRecipe.UpdatedAt, sq.Expr("now()")).
		Where(sq.Eq{schema.RefRecipe.ID: id}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	updated, err := scanRecipe(repository.db.QueryRow(context, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, resourceRecipe, "set_favourite")
	}
	return updated, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query, args, err := psql.Delete(schema.RefRecipe.Table).
		Where(sq.Eq{schema.RefRecipe.ID: id}).
		ToSql()
	if err != nil {
		return apperr.Internal(err)
	}

	tag, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, resourceRecipe, "delete_recipe")
	}
	if tag.RowsAffected() == 0 {
		return errRecipeNotFound()
	}
	return nil
}

func scanRecipe(row pgx.Row) (*recipe.Recipe, error) {
	r := &recipe.Recipe{}
	err := row.Scan(&r.ID, &r.Title, &r.Description, &r.Instructions, &r.ImageURL, &r.Ingredients, &r.Favourite)
	if err != nil {
		return nil, err
	}
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	return r, nil
}

func returning() string {
	return "RETURNING " + strings.Join(schema.RefRecipe.Columns(), ", ")
}

// ingredients never binds NULL to the NOT NULL array column.
func ingredients(r *recipe.Recipe) []string {
	if r.Ingredients == nil {
		return []string{}
	}
	return r.Ingredients
}

const resourceRecipe = "Recipe"

func errRecipeNotFound() error {
	return apperr.NotFound(resourceRecipe)
}
