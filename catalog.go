package wolfconv

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Catalog records every converted asset in a sqlite database so a build
// can be audited afterwards. The converter only ever writes to it;
// nothing consults it to skip or reuse work.
type Catalog struct {
	db *sql.DB
}

// OpenCatalog opens the catalog database at file, creating it and its
// schema if necessary.
func OpenCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS asset (id INTEGER PRIMARY KEY NOT NULL, path TEXT NOT NULL UNIQUE, category TEXT NOT NULL, sha1 TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// Record stores one converted asset keyed by its destination path,
// replacing any earlier record from a previous run.
func (c *Catalog) Record(path, category, sha string, width, height int) error {
	if _, err := c.db.Exec("INSERT OR REPLACE INTO asset (path, category, sha1, width, height) VALUES (?, ?, ?, ?, ?)", path, category, sha, width, height); err != nil {
		return err
	}
	return nil
}

// Asset is one catalog row.
type Asset struct {
	Path     string
	Category string
	SHA1     string
	Width    int
	Height   int
}

// Find returns the recorded asset for a destination path, or nil when
// the path has never been recorded.
func (c *Catalog) Find(path string) (*Asset, error) {
	a := Asset{Path: path}
	switch err := c.db.QueryRow("SELECT category, sha1, width, height FROM asset WHERE path = ?", path).Scan(&a.Category, &a.SHA1, &a.Width, &a.Height); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return &a, nil
	default:
		return nil, err
	}
}

// Length returns the number of recorded assets.
func (c *Catalog) Length() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM asset").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
