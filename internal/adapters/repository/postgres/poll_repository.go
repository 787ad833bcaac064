package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/vncsmyrnk/polling-app/internal/core/domain"
	"github.com/vncsmyrnk/polling-app/internal/core/ports"
)

var dialect = goqu.Dialect("postgres")

type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollRepository {
	return &pollRepository{
		db: db,
	}
}

func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryPoll := `
		INSERT INTO polls (id, title, description, created_by, is_active, ends_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = tx.ExecContext(ctx, queryPoll,
		poll.ID, poll.Title, poll.Description, poll.CreatedBy, poll.IsActive, poll.EndsAt, poll.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}

	queryOption := `
		INSERT INTO poll_options (id, poll_id, option_text, position, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	stmt, err := tx.PrepareContext(ctx, queryOption)
	if err != nil {
		return fmt.Errorf("failed to prepare option statement: %w", err)
	}
	defer stmt.Close()

	for _, opt := range poll.Options {
		_, err = stmt.ExecContext(ctx, opt.ID, opt.PollID, opt.Text, opt.Position, opt.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	queryPoll := `
		SELECT id, title, description, created_by, is_active, ends_at, created_at
		FROM polls
		WHERE id = $1
	`

	var poll domain.Poll
	err := r.db.QueryRowContext(ctx, queryPoll, id).Scan(
		&poll.ID, &poll.Title, &poll.Description, &poll.CreatedBy, &poll.IsActive, &poll.EndsAt, &poll.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}

	options, err := r.ListOptions(ctx, poll.ID)
	if err != nil {
		return nil, err
	}
	poll.Options = options

	return &poll, nil
}

func (r *pollRepository) List(ctx context.Context, filter ports.PollFilter) ([]*domain.Poll, error) {
	ds := dialect.From("polls").
		Select("id", "title", "description", "created_by", "is_active", "ends_at", "created_at").
		Order(goqu.C("created_at").Desc(), goqu.C("id").Desc())

	if filter.ActiveOnly {
		ds = ds.Where(goqu.C("is_active").IsTrue())
	}
	if filter.CreatedBy != uuid.Nil {
		ds = ds.Where(goqu.C("created_by").Eq(filter.CreatedBy.String()))
	}
	if filter.Query != "" {
		ds = ds.Where(goqu.C("title").ILike(containsPattern(filter.Query)))
	}
	if filter.Limit > 0 {
		ds = ds.Limit(uint(filter.Limit))
	}
	if filter.Offset > 0 {
		ds = ds.Offset(uint(filter.Offset))
	}

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build poll list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	defer rows.Close()

	polls, err := scanPolls(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachOptions(ctx, polls); err != nil {
		return nil, err
	}
	return polls, nil
}

func (r *pollRepository) ListOptions(ctx context.Context, pollID uuid.UUID) ([]domain.PollOption, error) {
	queryOptions := `
		SELECT id, poll_id, option_text, position, created_at
		FROM poll_options
		WHERE poll_id = $1
		ORDER BY created_at, position
	`
	rows, err := r.db.QueryContext(ctx, queryOptions, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get poll options: %w", err)
	}
	defer rows.Close()

	return scanOptions(rows)
}

func (r *pollRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// attachOptions loads the options of all polls with a single query.
func (r *pollRepository) attachOptions(ctx context.Context, polls []*domain.Poll) error {
	if len(polls) == 0 {
		return nil
	}

	ids := make([]string, 0, len(polls))
	byID := make(map[uuid.UUID]*domain.Poll, len(polls))
	for _, poll := range polls {
		ids = append(ids, poll.ID.String())
		byID[poll.ID] = poll
	}

	queryOptions := `
		SELECT id, poll_id, option_text, position, created_at
		FROM poll_options
		WHERE poll_id = ANY($1::uuid[])
		ORDER BY created_at, position
	`
	rows, err := r.db.QueryContext(ctx, queryOptions, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to get poll options: %w", err)
	}
	defer rows.Close()

	options, err := scanOptions(rows)
	if err != nil {
		return err
	}
	for _, opt := range options {
		if poll, ok := byID[opt.PollID]; ok {
			poll.Options = append(poll.Options, opt)
		}
	}
	return nil
}

func scanPolls(rows *sql.Rows) ([]*domain.Poll, error) {
	var polls []*domain.Poll
	for rows.Next() {
		var poll domain.Poll
		if err := rows.Scan(
			&poll.ID, &poll.Title, &poll.Description, &poll.CreatedBy, &poll.IsActive, &poll.EndsAt, &poll.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, &poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating polls: %w", err)
	}
	return polls, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern matches text literally anywhere in a column. Postgres
// uses backslash as the default LIKE escape.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

func scanOptions(rows *sql.Rows) ([]domain.PollOption, error) {
	var options []domain.PollOption
	for rows.Next() {
		var opt domain.PollOption
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Text, &opt.Position, &opt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating options: %w", err)
	}
	return options, nil
}
