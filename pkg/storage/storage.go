// Package storage implements the catalog store on SQLite. It owns the schema
// (applied through pkg/db migrations), the seeding write path and the three
// read operations the resolution pipeline depends on.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/placera/placera/pkg/catalog"
	"github.com/placera/placera/pkg/db"
	"github.com/placera/placera/pkg/log"
)

const subjectColumns = "id, name, type, location, city, average_rating, review_count"

// Store is a SQLite-backed subject catalog. It is safe for concurrent
// readers; writes only happen through ImportSubjects.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// Open opens (creating if necessary) the catalog database at dbPath and
// applies pending migrations.
func Open(dbPath string) (*Store, error) {
	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 30000",
		"PRAGMA cache_size = -64000",
		"PRAGMA temp_store = memory",
		"PRAGMA optimize",
	}
	for _, pragma := range pragmas {
		if _, err := sqlDB.Exec(pragma); err != nil {
			return nil, fmt.Errorf("applying pragma %q: %w", pragma, err)
		}
	}

	if err := db.NewMigrator(sqlDB).ApplyPending(); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return &Store{
		db:     sqlDB,
		logger: log.ForComponent("storage"),
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database handle, used by maintenance commands.
func (s *Store) DB() *sql.DB {
	return s.db
}

// FilteredSearch returns one page of subjects matching the conjunction of the
// filter's conditions plus the total number of matching rows independent of
// pagination. Ordering is deterministic: rating desc, reviews desc, id asc.
func (s *Store) FilteredSearch(ctx context.Context, f catalog.Filter, limit, offset int) ([]catalog.Subject, int, error) {
	where, args := buildFilter(f)

	var total int
	countQuery := "SELECT COUNT(*) FROM subjects" + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting subjects: %w", err)
	}

	rowsQuery := "SELECT " + subjectColumns + " FROM subjects" + where +
		" ORDER BY average_rating DESC, review_count DESC, id ASC LIMIT ? OFFSET ?"
	rows, err := s.db.QueryContext(ctx, rowsQuery, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying subjects: %w", err)
	}
	defer s.closeRows(rows)

	subjects, err := scanSubjects(rows)
	if err != nil {
		return nil, 0, err
	}
	return subjects, total, nil
}

// DistinctCities returns the distinct lowercase city names present in the
// catalog, alphabetically ordered.
func (s *Store) DistinctCities(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT lower(city) FROM subjects
		WHERE city IS NOT NULL AND city <> ''
		ORDER BY 1`)
	if err != nil {
		return nil, fmt.Errorf("querying cities: %w", err)
	}
	defer s.closeRows(rows)

	var cities []string
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("scanning city: %w", err)
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}

// AllSubjects returns every subject, scoped to a city when city is non-empty.
func (s *Store) AllSubjects(ctx context.Context, city string) ([]catalog.Subject, error) {
	query := "SELECT " + subjectColumns + " FROM subjects"
	var args []any
	if city != "" {
		query += " WHERE city = ? COLLATE NOCASE"
		args = append(args, city)
	}
	query += " ORDER BY id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying subjects: %w", err)
	}
	defer s.closeRows(rows)

	return scanSubjects(rows)
}

// ImportSubjects inserts the given subjects in a single transaction.
func (s *Store) ImportSubjects(ctx context.Context, subjects []catalog.Subject) error {
	if len(subjects) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			if err := tx.Rollback(); err != nil {
				s.logger.Warnf("failed to rollback transaction: %v", err)
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO subjects (name, type, location, city, average_rating, review_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			s.logger.Warnf("failed to close statement: %v", err)
		}
	}()

	for _, subject := range subjects {
		_, err := stmt.ExecContext(ctx,
			subject.Name,
			subject.Type,
			nullable(subject.Location),
			nullable(subject.City),
			subject.AverageRating,
			subject.ReviewCount,
		)
		if err != nil {
			return fmt.Errorf("inserting subject %q: %w", subject.Name, err)
		}
	}

	err = tx.Commit()
	if err == nil {
		committed = true
	}
	return err
}

// Stats returns summary statistics about the catalog.
func (s *Store) Stats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var totalSubjects int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM subjects").Scan(&totalSubjects); err != nil {
		return nil, fmt.Errorf("counting subjects: %w", err)
	}
	stats["total_subjects"] = totalSubjects

	var totalCities int
	err := s.db.QueryRow(`
		SELECT COUNT(DISTINCT lower(city)) FROM subjects
		WHERE city IS NOT NULL AND city <> ''`).Scan(&totalCities)
	if err != nil {
		return nil, fmt.Errorf("counting cities: %w", err)
	}
	stats["total_cities"] = totalCities

	var totalTypes int
	if err := s.db.QueryRow("SELECT COUNT(DISTINCT lower(type)) FROM subjects").Scan(&totalTypes); err != nil {
		return nil, fmt.Errorf("counting types: %w", err)
	}
	stats["total_types"] = totalTypes

	return stats, nil
}

func (s *Store) Optimize() error {
	_, err := s.db.Exec("PRAGMA optimize")
	return err
}

func (s *Store) Analyze() error {
	_, err := s.db.Exec("ANALYZE")
	return err
}

func (s *Store) Vacuum() error {
	_, err := s.db.Exec("VACUUM")
	return err
}

func (s *Store) WALCheckpoint() error {
	_, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
	return err
}

// IntegrityCheck runs SQLite's integrity check and fails unless it reports ok.
func (s *Store) IntegrityCheck() error {
	var result string
	if err := s.db.QueryRow("PRAGMA integrity_check").Scan(&result); err != nil {
		return fmt.Errorf("running integrity check: %w", err)
	}
	if result != "ok" {
		return fmt.Errorf("integrity check failed: %s", result)
	}
	return nil
}

func (s *Store) closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		s.logger.Warnf("failed to close rows: %v", err)
	}
}

// buildFilter renders the conjunctive WHERE clause for a filter. Empty filter
// yields an empty clause.
func buildFilter(f catalog.Filter) (string, []any) {
	var conds []string
	var args []any

	if f.NameQuery != "" {
		conds = append(conds, `name LIKE ? ESCAPE '\' COLLATE NOCASE`)
		args = append(args, "%"+escapeLike(f.NameQuery)+"%")
	}
	if f.City != "" {
		conds = append(conds, "city = ? COLLATE NOCASE")
		args = append(args, f.City)
	}
	if len(f.Types) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(f.Types)), ",")
		conds = append(conds, "type COLLATE NOCASE IN ("+placeholders+")")
		for _, t := range f.Types {
			args = append(args, t)
		}
	}
	if f.RatingMin > 0 {
		conds = append(conds, "average_rating >= ?")
		args = append(args, f.RatingMin)
	}
	if f.ReviewsMin > 0 {
		conds = append(conds, "review_count >= ?")
		args = append(args, f.ReviewsMin)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// escapeLike escapes LIKE wildcards so user text always matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

func scanSubjects(rows *sql.Rows) ([]catalog.Subject, error) {
	var subjects []catalog.Subject
	for rows.Next() {
		var subject catalog.Subject
		var location, city sql.NullString

		err := rows.Scan(
			&subject.ID,
			&subject.Name,
			&subject.Type,
			&location,
			&city,
			&subject.AverageRating,
			&subject.ReviewCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning subject: %w", err)
		}

		subject.Location = location.String
		subject.City = city.String
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
