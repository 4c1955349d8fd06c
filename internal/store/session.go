package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cruxlog/ent"
	entschema "github.com/abhisek/cruxlog/ent/schema"
	entsession "github.com/abhisek/cruxlog/ent/session"
)

// sessionRepo implements SessionRepo over the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) CreateSession(ctx context.Context, userID string, doc SessionDoc) (int, error) {
	row, err := r.client.Session.Create().
		SetUserID(userID).
		SetGym(doc.Gym).
		SetDiscipline(doc.Discipline).
		SetStartTime(doc.StartTime).
		SetClimbs(climbsToRecords(doc.Climbs)).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("create session: %w", err)
	}
	return row.ID, nil
}

func (r *sessionRepo) AppendClimb(ctx context.Context, userID string, sessionID int, climb ClimbDoc) error {
	row, err := r.fetch(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	climbs := append(row.Climbs, climbToRecord(climb))
	_, err = row.Update().SetClimbs(climbs).Save(ctx)
	if err != nil {
		return fmt.Errorf("append climb: %w", err)
	}
	return nil
}

func (r *sessionRepo) OverwriteClimbs(ctx context.Context, userID string, sessionID int, climbs []ClimbDoc) error {
	row, err := r.fetch(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	_, err = row.Update().SetClimbs(climbsToRecords(climbs)).Save(ctx)
	if err != nil {
		return fmt.Errorf("overwrite climbs: %w", err)
	}
	return nil
}

func (r *sessionRepo) CloseSession(ctx context.Context, userID string, sessionID int, endTime time.Time, durationMinutes int) error {
	row, err := r.fetch(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	_, err = row.Update().
		SetEndTime(endTime).
		SetDurationMinutes(durationMinutes).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	return nil
}

func (r *sessionRepo) ListSessions(ctx context.Context, userID string) ([]SessionDoc, error) {
	rows, err := r.client.Session.Query().
		Where(entsession.UserID(userID)).
		Order(ent.Desc(entsession.FieldStartTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	docs := make([]SessionDoc, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, rowToDoc(row))
	}
	return docs, nil
}

func (r *sessionRepo) GetSession(ctx context.Context, userID string, sessionID int) (SessionDoc, error) {
	row, err := r.fetch(ctx, userID, sessionID)
	if err != nil {
		return SessionDoc{}, err
	}
	return rowToDoc(row), nil
}

func (r *sessionRepo) DeleteSession(ctx context.Context, userID string, sessionID int) error {
	n, err := r.client.Session.Delete().
		Where(entsession.ID(sessionID), entsession.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// fetch loads one session row scoped by user, mapping absence to ErrNotFound.
func (r *sessionRepo) fetch(ctx context.Context, userID string, sessionID int) (*ent.Session, error) {
	row, err := r.client.Session.Query().
		Where(entsession.ID(sessionID), entsession.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return row, nil
}

func rowToDoc(row *ent.Session) SessionDoc {
	climbs := make([]ClimbDoc, 0, len(row.Climbs))
	for _, c := range row.Climbs {
		climbs = append(climbs, ClimbDoc{
			Grade:      c.Grade,
			Outcome:    c.Outcome,
			Style:      c.Style,
			Difficulty: c.Difficulty,
			Tags:       c.Tags,
			Notes:      c.Notes,
			LoggedAt:   c.LoggedAt,
		})
	}
	return SessionDoc{
		ID:              row.ID,
		Gym:             row.Gym,
		Discipline:      row.Discipline,
		StartTime:       row.StartTime,
		EndTime:         row.EndTime,
		DurationMinutes: row.DurationMinutes,
		Climbs:          climbs,
	}
}

func climbToRecord(c ClimbDoc) entschema.ClimbRecord {
	return entschema.ClimbRecord{
		Grade:      c.Grade,
		Outcome:    c.Outcome,
		Style:      c.Style,
		Difficulty: c.Difficulty,
		Tags:       c.Tags,
		Notes:      c.Notes,
		LoggedAt:   c.LoggedAt,
	}
}

func climbsToRecords(climbs []ClimbDoc) []entschema.ClimbRecord {
	records := make([]entschema.ClimbRecord, 0, len(climbs))
	for _, c := range climbs {
		records = append(records, climbToRecord(c))
	}
	return records
}
