// Package store persists tokenized books in SQLite so that a corpus does
// not have to be re-tokenized on every run.
//
// Each verse row carries a BLAKE3 content key of its source; SaveBook
// rewrites only the verses whose key changed.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/FocuswithJustin/JuniperHebrew/core/cache"
	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
	"github.com/FocuswithJustin/JuniperHebrew/core/hebrew"
	"github.com/FocuswithJustin/JuniperHebrew/core/sqlite"
	"github.com/FocuswithJustin/JuniperHebrew/core/verse"
)

// SchemaVersion is the schema written by this package.
const SchemaVersion = 1

const schema = `
	CREATE TABLE IF NOT EXISTS books (
		code TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		book_order INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS verses (
		book TEXT NOT NULL REFERENCES books(code) ON DELETE CASCADE,
		chapter INTEGER NOT NULL,
		verse INTEGER NOT NULL,
		english TEXT NOT NULL,
		content_key TEXT NOT NULL,
		PRIMARY KEY (book, chapter, verse)
	);
	CREATE TABLE IF NOT EXISTS tokens (
		book TEXT NOT NULL,
		chapter INTEGER NOT NULL,
		verse INTEGER NOT NULL,
		position INTEGER NOT NULL,
		word TEXT NOT NULL,
		space TEXT NOT NULL,
		consonantal TEXT NOT NULL,
		translit TEXT NOT NULL,
		strongs TEXT NOT NULL,
		PRIMARY KEY (book, chapter, verse, position),
		FOREIGN KEY (book, chapter, verse) REFERENCES verses(book, chapter, verse) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_tokens_strongs ON tokens(strongs);
	CREATE INDEX IF NOT EXISTS idx_tokens_translit ON tokens(translit);
`

// Store is a SQLite database of tokenized books.
type Store struct {
	db       *sql.DB
	path     string
	translit func(string) string
}

// Option configures a Store.
type Option func(*Store)

// WithTranslit sets the function used to fill the translit column.
func WithTranslit(fn func(string) string) Option {
	return func(s *Store) {
		if fn != nil {
			s.translit = fn
		}
	}
}

// Open opens or creates the database at path and migrates its schema.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	db, err := sqlite.OpenFile(path)
	if err != nil {
		return nil, err
	}
	s := &Store{db: db, path: path, translit: hebrew.TransliterateString}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) migrate(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&version); err != nil {
		return errors.NewIO("read schema version", s.path, err)
	}
	switch {
	case version == SchemaVersion:
		return nil
	case version > SchemaVersion:
		return errors.NewUnsupported("schema version", fmt.Sprintf("%d (newest known is %d)", version, SchemaVersion))
	}
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return errors.NewIO("create schema", s.path, err)
	}
	if _, err := s.db.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d`, SchemaVersion)); err != nil {
		return errors.NewIO("write schema version", s.path, err)
	}
	return nil
}

// ContentKey returns the key stored for v: a hash of its Hebrew text, its
// English text and its Strong's tags.
func ContentKey(v *verse.Verse) string {
	tags := make([]string, len(v.Tokens))
	for i, t := range v.Tokens {
		tags[i] = t.Strongs
	}
	return cache.ContentKeyOf(v.Hebrew(), v.English, strings.Join(tags, " "))
}

type verseKey struct {
	chapter, verse int
}

// SaveBook writes b, rewriting only verses whose content key changed and
// removing verses no longer present. It returns the number of verses
// written or removed.
func (s *Store) SaveBook(ctx context.Context, b *verse.Book) (changed int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.NewIO("begin", s.path, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO books (code, name, book_order) VALUES (?, ?, ?)
		 ON CONFLICT(code) DO UPDATE SET name = excluded.name, book_order = excluded.book_order`,
		b.Code, b.Name, b.Order); err != nil {
		return 0, errors.NewIO("save book", b.Code, err)
	}

	existing, err := s.contentKeys(ctx, tx, b.Code)
	if err != nil {
		return 0, err
	}

	for _, v := range b.Verses {
		k := verseKey{v.Ref.Chapter, v.Ref.Verse}
		key := ContentKey(v)
		old, ok := existing[k]
		delete(existing, k)
		if ok && old == key {
			continue
		}
		if err = s.writeVerse(ctx, tx, b.Code, v, key); err != nil {
			return 0, err
		}
		changed++
	}

	for k := range existing {
		if _, err = tx.ExecContext(ctx, `DELETE FROM tokens WHERE book = ? AND chapter = ? AND verse = ?`,
			b.Code, k.chapter, k.verse); err != nil {
			return 0, errors.NewIO("delete tokens", b.Code, err)
		}
		if _, err = tx.ExecContext(ctx, `DELETE FROM verses WHERE book = ? AND chapter = ? AND verse = ?`,
			b.Code, k.chapter, k.verse); err != nil {
			return 0, errors.NewIO("delete verse", b.Code, err)
		}
		changed++
	}

	if err = tx.Commit(); err != nil {
		return 0, errors.NewIO("commit", s.path, err)
	}
	return changed, nil
}

func (s *Store) contentKeys(ctx context.Context, tx *sql.Tx, code string) (map[verseKey]string, error) {
	rows, err := tx.QueryContext(ctx, `SELECT chapter, verse, content_key FROM verses WHERE book = ?`, code)
	if err != nil {
		return nil, errors.NewIO("query verses", code, err)
	}
	defer rows.Close()

	keys := make(map[verseKey]string)
	for rows.Next() {
		var k verseKey
		var key string
		if err := rows.Scan(&k.chapter, &k.verse, &key); err != nil {
			return nil, errors.NewIO("scan verse", code, err)
		}
		keys[k] = key
	}
	return keys, rows.Err()
}

func (s *Store) writeVerse(ctx context.Context, tx *sql.Tx, code string, v *verse.Verse, key string) error {
	ref := v.Ref
	if _, err := tx.ExecContext(ctx, `DELETE FROM tokens WHERE book = ? AND chapter = ? AND verse = ?`,
		code, ref.Chapter, ref.Verse); err != nil {
		return errors.NewIO("delete tokens", ref.String(), err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO verses (book, chapter, verse, english, content_key) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(book, chapter, verse) DO UPDATE SET english = excluded.english, content_key = excluded.content_key`,
		code, ref.Chapter, ref.Verse, v.English, key); err != nil {
		return errors.NewIO("save verse", ref.String(), err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO tokens (book, chapter, verse, position, word, space, consonantal, translit, strongs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.NewIO("prepare tokens", ref.String(), err)
	}
	defer stmt.Close()

	for i, t := range v.Tokens {
		if _, err := stmt.ExecContext(ctx, code, ref.Chapter, ref.Verse, i,
			t.Word, t.Space, t.Consonantal, s.translit(t.Word), t.Strongs); err != nil {
			return errors.NewIO("save token", ref.String(), err)
		}
	}
	return nil
}

// BookSummary describes a stored book.
type BookSummary struct {
	Code   string
	Name   string
	Order  int
	Verses int
}

// Books lists the stored books in canonical order.
func (s *Store) Books(ctx context.Context) ([]BookSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.code, b.name, b.book_order, COUNT(v.verse)
		FROM books b LEFT JOIN verses v ON v.book = b.code
		GROUP BY b.code
		ORDER BY b.book_order, b.code`)
	if err != nil {
		return nil, errors.NewIO("query books", s.path, err)
	}
	defer rows.Close()

	var out []BookSummary
	for rows.Next() {
		var bs BookSummary
		if err := rows.Scan(&bs.Code, &bs.Name, &bs.Order, &bs.Verses); err != nil {
			return nil, errors.NewIO("scan book", s.path, err)
		}
		out = append(out, bs)
	}
	return out, rows.Err()
}

// LoadBook reads a stored book with its verses and tokens.
func (s *Store) LoadBook(ctx context.Context, code string) (*verse.Book, error) {
	b := &verse.Book{}
	err := s.db.QueryRowContext(ctx, `SELECT code, name, book_order FROM books WHERE code = ?`, code).
		Scan(&b.Code, &b.Name, &b.Order)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound("book", code)
	}
	if err != nil {
		return nil, errors.NewIO("query book", code, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT chapter, verse, english FROM verses WHERE book = ? ORDER BY chapter, verse`, code)
	if err != nil {
		return nil, errors.NewIO("query verses", code, err)
	}
	index := make(map[verseKey]*verse.Verse)
	for rows.Next() {
		v := &verse.Verse{Ref: verse.Ref{Book: b.Code}}
		if err := rows.Scan(&v.Ref.Chapter, &v.Ref.Verse, &v.English); err != nil {
			rows.Close()
			return nil, errors.NewIO("scan verse", code, err)
		}
		b.Verses = append(b.Verses, v)
		index[verseKey{v.Ref.Chapter, v.Ref.Verse}] = v
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errors.NewIO("query verses", code, err)
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT chapter, verse, word, space, consonantal, strongs FROM tokens
		 WHERE book = ? ORDER BY chapter, verse, position`, code)
	if err != nil {
		return nil, errors.NewIO("query tokens", code, err)
	}
	defer rows.Close()
	for rows.Next() {
		var k verseKey
		var t verse.Token
		if err := rows.Scan(&k.chapter, &k.verse, &t.Word, &t.Space, &t.Consonantal, &t.Strongs); err != nil {
			return nil, errors.NewIO("scan token", code, err)
		}
		if v := index[k]; v != nil {
			v.Tokens = append(v.Tokens, t)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewIO("query tokens", code, err)
	}
	return b, nil
}

// LoadAll reads every stored book in canonical order.
func (s *Store) LoadAll(ctx context.Context) ([]*verse.Book, error) {
	summaries, err := s.Books(ctx)
	if err != nil {
		return nil, err
	}
	books := make([]*verse.Book, 0, len(summaries))
	for _, bs := range summaries {
		b, err := s.LoadBook(ctx, bs.Code)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, nil
}

// DeleteBook removes a book and its verses.
func (s *Store) DeleteBook(ctx context.Context, code string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tokens WHERE book = ?`, code); err != nil {
		return errors.NewIO("delete tokens", code, err)
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE code = ?`, code)
	if err != nil {
		return errors.NewIO("delete book", code, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NewNotFound("book", code)
	}
	return nil
}

// StrongsCount is the number of stored tokens tagged with one Strong's
// number in one verse.
type StrongsCount struct {
	Ref   verse.Ref
	Count int
}

// FindStrongs lists the verses containing a Strong's number, in canonical
// order.
func (s *Store) FindStrongs(ctx context.Context, id string) ([]StrongsCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.book, t.chapter, t.verse, COUNT(*)
		FROM tokens t JOIN books b ON b.code = t.book
		WHERE t.strongs = ?
		GROUP BY t.book, t.chapter, t.verse
		ORDER BY b.book_order, t.chapter, t.verse`, strings.ToUpper(strings.TrimSpace(id)))
	if err != nil {
		return nil, errors.NewIO("query strongs", id, err)
	}
	defer rows.Close()

	var out []StrongsCount
	for rows.Next() {
		var sc StrongsCount
		if err := rows.Scan(&sc.Ref.Book, &sc.Ref.Chapter, &sc.Ref.Verse, &sc.Count); err != nil {
			return nil, errors.NewIO("scan strongs", id, err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
