// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"database/sql"

	"github.com/rubenv/sql-migrate"
)

// This file maintains the database migration code.  See
// https://github.com/rubenv/sql-migrate for details of what goes in
// here.  This runs "outside" the normal store flow, either at initial
// startup or from an external tool.

var migrationSource = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1_lists",
			Up: []string{
				`CREATE TABLE list(
                                   id BIGSERIAL PRIMARY KEY,
                                   title TEXT NOT NULL DEFAULT '',
                                   created_at TIMESTAMP WITH TIME ZONE NOT NULL,
                                   updated_at TIMESTAMP WITH TIME ZONE NOT NULL
                                 )`,
				`CREATE TABLE item(
                                   id BIGSERIAL PRIMARY KEY,
                                   list_id BIGINT NOT NULL
                                     REFERENCES list(id) ON DELETE CASCADE,
                                   content TEXT NOT NULL,
                                   done BOOLEAN NOT NULL DEFAULT FALSE,
                                   created_at TIMESTAMP WITH TIME ZONE NOT NULL,
                                   updated_at TIMESTAMP WITH TIME ZONE NOT NULL
                                 )`,
				`CREATE INDEX item_list_id ON item(list_id)`,
			},
			Down: []string{
				`DROP TABLE item`,
				`DROP TABLE list`,
			},
		},
	},
}

// Upgrade upgrades a database to the latest database schema version.
func Upgrade(db *sql.DB) error {
	_, err := migrate.Exec(db, "postgres", migrationSource, migrate.Up)
	return err
}

// Drop clears a database by running all of the migrations in reverse,
// ultimately resulting in dropping all of the tables.
func Drop(db *sql.DB) error {
	_, err := migrate.Exec(db, "postgres", migrationSource, migrate.Down)
	return err
}
