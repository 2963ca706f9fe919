package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/dbx"
)

const uniqueViolation = "23505"

// sharedWithExpr aggregates the share set into one CSV column, so a note row
// scans with database/sql without array support in the driver. array_agg over
// the LEFT JOIN yields {NULL} for unshared notes and array_to_string drops
// the NULLs, leaving an empty string.
const sharedWithExpr = "COALESCE(array_to_string(array_agg(s.user_id), ','), '')"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func splitShared(csv string) []string {
	if csv == "" {
		return []string{}
	}
	return strings.Split(csv, ",")
}

func (r *PostgresRepository) Create(ctx context.Context, note *Note) (*Note, error) {

	query :=
		`INSERT INTO notes (title, body, owner_id)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		note.Title, note.Body, note.OwnerID).Scan(&note.ID)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	note.SharedWith = []string{}
	return note, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Note, error) {

	queryBuilder := squirrel.
		Select("n.id",
			"n.title",
			"n.body",
			"n.owner_id",
			sharedWithExpr).
		From("notes n").
		LeftJoin("note_shares s ON s.note_id = n.id").
		Where(squirrel.Eq{"n.owner_id": ownerID}).
		GroupBy("n.id").
		OrderBy("n.created_at").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	notes := []*Note{}
	for rows.Next() {
		note := &Note{}
		var shared string
		if err := rows.Scan(&note.ID, &note.Title, &note.Body, &note.OwnerID, &shared); err != nil {
			return nil, fmt.Errorf("error scanning note: %w", err)
		}
		note.SharedWith = splitShared(shared)
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading notes: %w", err)
	}

	return notes, nil
}

func (r *PostgresRepository) getNote(ctx context.Context, conditions string, args ...any) (*Note, error) {
	query := fmt.Sprintf(
		`SELECT n.id, n.title, n.body, n.owner_id, %s
		 FROM notes n
		 LEFT JOIN note_shares s ON s.note_id = n.id
		 WHERE %s
		 GROUP BY n.id
		 `, sharedWithExpr, conditions)

	note := &Note{}
	var shared string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&note.ID, &note.Title, &note.Body, &note.OwnerID, &shared)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	note.SharedWith = splitShared(shared)
	return note, nil
}

func (r *PostgresRepository) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*Note, error) {
	return r.getNote(ctx, "n.id = $1 AND n.owner_id = $2", id, ownerID)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Note, error) {
	return r.getNote(ctx, "n.id = $1", id)
}

func (r *PostgresRepository) Update(ctx context.Context, id, ownerID string, title, body *string) (*Note, error) {

	query :=
		`UPDATE notes
		 SET title = COALESCE($3, title), body = COALESCE($4, body)
		 WHERE id = $1 AND owner_id = $2
		 RETURNING id
		 `

	var updated string
	err := r.db.QueryRowContext(ctx, query, id, ownerID, title, body).Scan(&updated)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return r.GetByIDAndOwner(ctx, id, ownerID)
}

func (r *PostgresRepository) Delete(ctx context.Context, id, ownerID string) error {

	query := `DELETE FROM notes WHERE id = $1 AND owner_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// AddShare locks the note row and appends the share inside one transaction.
// The note_shares primary key turns a concurrent duplicate share into a
// unique violation, so two racing calls for the same target cannot both
// succeed.
func (r *PostgresRepository) AddShare(ctx context.Context, noteID, userID string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		var ownerID string
		err := tx.QueryRowContext(ctx, `SELECT owner_id FROM notes WHERE id = $1 FOR UPDATE`, noteID).Scan(&ownerID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("error performing sql request: %w", err)
		}

		_, err = tx.ExecContext(ctx, `INSERT INTO note_shares (note_id, user_id) VALUES ($1, $2)`, noteID, userID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return common.ErrorAlreadyShared
			}
			return fmt.Errorf("error performing sql request: %w", err)
		}

		return nil
	})
}
