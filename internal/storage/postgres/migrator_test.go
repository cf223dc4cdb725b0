package postgres

import (
	"strings"
	"testing"
	"testing/fstest"
)

func migrationFile(body string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(body)}
}

func TestLoadMigrationsFromFS_OrdersByVersion(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"sql/migrations/0002_carts.up.sql":   migrationFile("CREATE TABLE mt_carts (id INT);"),
		"sql/migrations/0002_carts.down.sql": migrationFile("DROP TABLE IF EXISTS mt_carts;"),
		"sql/migrations/0001_init.up.sql":    migrationFile("CREATE TABLE mt_products (id INT);"),
		"sql/migrations/0001_init.down.sql":  migrationFile("DROP TABLE IF EXISTS mt_products;"),
	}

	migrations, err := loadMigrationsFromFS(fsys)
	if err != nil {
		t.Fatalf("loadMigrationsFromFS failed: %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[0].Name != "init" {
		t.Fatalf("unexpected first migration: %+v", migrations[0])
	}
	if migrations[1].Version != 2 || migrations[1].Name != "carts" {
		t.Fatalf("unexpected second migration: %+v", migrations[1])
	}
}

func TestLoadMigrationsFromFS_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr string
	}{
		{
			name: "missing down pair",
			fsys: fstest.MapFS{
				"sql/migrations/0001_init.up.sql": migrationFile("CREATE TABLE mt_products (id INT);"),
			},
			wantErr: "both up and down",
		},
		{
			name: "bad file name",
			fsys: fstest.MapFS{
				"sql/migrations/not_a_migration.sql": migrationFile("SELECT 1;"),
			},
			wantErr: "invalid migration file name",
		},
		{
			name: "empty body",
			fsys: fstest.MapFS{
				"sql/migrations/0001_init.up.sql":   migrationFile("   \n"),
				"sql/migrations/0001_init.down.sql": migrationFile("DROP TABLE IF EXISTS mt_products;"),
			},
			wantErr: "migration file is empty",
		},
		{
			name: "name mismatch within version",
			fsys: fstest.MapFS{
				"sql/migrations/0001_init.up.sql":    migrationFile("CREATE TABLE mt_products (id INT);"),
				"sql/migrations/0001_other.down.sql": migrationFile("DROP TABLE IF EXISTS mt_products;"),
			},
			wantErr: "name mismatch",
		},
		{
			name:    "no files at all",
			fsys:    fstest.MapFS{},
			wantErr: "no migration files",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := loadMigrationsFromFS(tc.fsys)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got: %v", tc.wantErr, err)
			}
		})
	}
}
