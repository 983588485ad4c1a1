package logs

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/playerprogress/internal/telemetry/tracing"
	"github.com/2beens/playerprogress/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrEntryNotFound  = errors.New("log entry not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidEntry   = errors.New("log entry rejected by db constraints")
)

var kind2table = map[Kind]string{
	KindPhysical: "physical_log",
	KindSkill:    "skill_log",
	KindMatch:    "match_log",
	KindPractice: "practice_log",
}

type Player struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddPlayer(ctx context.Context, name string) (_ *Player, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.add_player")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO players (name) VALUES ($1) RETURNING id;`,
		name,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert player: %w", err)
	}

	span.SetAttributes(attribute.Int("player.id", id))
	return &Player{ID: id, Name: name}, nil
}

func (r *Repo) AddPhysical(ctx context.Context, l PhysicalLog) (_ *PhysicalLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.add_physical")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("player.id", l.PlayerID))

	id, err := r.insert(
		ctx,
		`INSERT INTO physical_log
				(player_id, date, height, weight, run50m, vision, jump, situp, flexibility)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		l.PlayerID, l.Date, l.Height, l.Weight, l.Run50m, l.Vision, l.Jump, l.SitUp, l.Flexibility,
	)
	if err != nil {
		return nil, err
	}
	l.ID = id
	return &l, nil
}

func (r *Repo) AddSkill(ctx context.Context, l SkillLog) (_ *SkillLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.add_skill")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("player.id", l.PlayerID))

	id, err := r.insert(
		ctx,
		`INSERT INTO skill_log
				(player_id, date, dribble, shoot, pass, defense, tactic, comment)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		l.PlayerID, l.Date, l.Dribble, l.Shoot, l.Pass, l.Defense, l.Tactic, l.Comment,
	)
	if err != nil {
		return nil, err
	}
	l.ID = id
	return &l, nil
}

func (r *Repo) AddMatch(ctx context.Context, l MatchLog) (_ *MatchLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.add_match")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("player.id", l.PlayerID))

	id, err := r.insert(
		ctx,
		`INSERT INTO match_log
				(player_id, date, opponent, result, score, status, note)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		l.PlayerID, l.Date, l.Opponent, l.Result, l.Score, string(l.Status), l.Note,
	)
	if err != nil {
		return nil, err
	}
	l.ID = id
	return &l, nil
}

func (r *Repo) AddPractice(ctx context.Context, l PracticeLog) (_ *PracticeLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.add_practice")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("player.id", l.PlayerID))

	id, err := r.insert(
		ctx,
		`INSERT INTO practice_log
				(player_id, date, duration, title, description)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		l.PlayerID, l.Date, l.Duration, l.Title, l.Description,
	)
	if err != nil {
		return nil, err
	}
	l.ID = id
	return &l, nil
}

func (r *Repo) insert(ctx context.Context, query string, args ...any) (int, error) {
	var id int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return 0, ErrPlayerNotFound
		}
		if pkg.IsCheckViolationError(err) {
			return 0, ErrInvalidEntry
		}
		return 0, fmt.Errorf("insert: %w", err)
	}
	return id, nil
}

func (r *Repo) ListPhysical(ctx context.Context, playerID int) (_ []PhysicalLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.list_physical")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("player.id", playerID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, player_id, date, height, weight, run50m, vision, jump, situp, flexibility
			FROM physical_log
			WHERE player_id = $1
			ORDER BY date DESC, id ASC;`,
		playerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var entries []PhysicalLog
	for rows.Next() {
		var l PhysicalLog
		if err := rows.Scan(
			&l.ID, &l.PlayerID, &l.Date, &l.Height, &l.Weight,
			&l.Run50m, &l.Vision, &l.Jump, &l.SitUp, &l.Flexibility,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	span.SetAttributes(attribute.Int("entries.count", len(entries)))
	return entries, nil
}

func (r *Repo) ListSkill(ctx context.Context, playerID int) (_ []SkillLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.list_skill")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("player.id", playerID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, player_id, date, dribble, shoot, pass, defense, tactic, comment
			FROM skill_log
			WHERE player_id = $1
			ORDER BY date DESC, id ASC;`,
		playerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var entries []SkillLog
	for rows.Next() {
		var l SkillLog
		if err := rows.Scan(
			&l.ID, &l.PlayerID, &l.Date,
			&l.Dribble, &l.Shoot, &l.Pass, &l.Defense, &l.Tactic, &l.Comment,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	span.SetAttributes(attribute.Int("entries.count", len(entries)))
	return entries, nil
}

func (r *Repo) ListMatch(ctx context.Context, playerID int) (_ []MatchLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.list_match")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("player.id", playerID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, player_id, date, opponent, result, score, status, note
			FROM match_log
			WHERE player_id = $1
			ORDER BY date DESC, id ASC;`,
		playerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var entries []MatchLog
	for rows.Next() {
		var (
			l      MatchLog
			status string
		)
		if err := rows.Scan(
			&l.ID, &l.PlayerID, &l.Date, &l.Opponent, &l.Result, &l.Score, &status, &l.Note,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		l.Status = MatchStatus(status)
		entries = append(entries, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	span.SetAttributes(attribute.Int("entries.count", len(entries)))
	return entries, nil
}

func (r *Repo) ListPractice(ctx context.Context, playerID int) (_ []PracticeLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.list_practice")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("player.id", playerID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, player_id, date, duration, title, description
			FROM practice_log
			WHERE player_id = $1
			ORDER BY date DESC, id ASC;`,
		playerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var entries []PracticeLog
	for rows.Next() {
		var l PracticeLog
		if err := rows.Scan(
			&l.ID, &l.PlayerID, &l.Date, &l.Duration, &l.Title, &l.Description,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	span.SetAttributes(attribute.Int("entries.count", len(entries)))
	return entries, nil
}

func (r *Repo) Delete(ctx context.Context, playerID int, kind Kind, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.logs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("player.id", playerID),
		attribute.String("kind", kind.String()),
		attribute.Int("id", id),
	)

	table, ok := kind2table[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	// table name comes from the fixed kind2table map, never from the request
	tag, err := r.db.Exec(
		ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND player_id = $2;`, pgx.Identifier{table}.Sanitize()),
		id, playerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}
