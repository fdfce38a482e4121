package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

var schema = []string{
	`create table if not exists region_stats (
	id          bigserial primary key,
	region_name text not null,
	year        int not null,
	columns     jsonb not null default '{}',
	unique (region_name, year)
)`,
	`create table if not exists region_geometries (
	region_name text primary key,
	geometry    jsonb not null
)`,
	`create table if not exists demographic_stats (
	id                bigserial primary key,
	year              int not null,
	group_name        text not null,
	category          text not null,
	volunteering_type text not null,
	value             double precision not null
)`,
}

// EnsureSchema creates the reference tables if they are missing.
func EnsureSchema(ctx context.Context, pool Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Execx(ctx, sq.Expr(stmt)); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
