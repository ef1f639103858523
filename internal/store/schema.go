package store

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/chebotarevdmitr/school-inventory/internal/auditlog"
	"github.com/chebotarevdmitr/school-inventory/internal/seed"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Relation names.
const (
	EquipmentTable = "Equipment"
	RoomsTable     = "Rooms"
)

type relation struct {
	name   string
	ddl    string
	seeded bool
}

var relations = []relation{
	{name: EquipmentTable, ddl: "schema/equipment.sql"},
	{name: RoomsTable, ddl: "schema/rooms.sql", seeded: true},
}

// TableExists reports whether a table named name exists in the catalog.
// A missing table is (false, nil); a catalog query failure is (false, *Error).
func (s *Store) TableExists(ctx context.Context, name string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
		name,
	).Scan(&count)
	if err != nil {
		s.log.Record(auditlog.LevelError, "catalog query failed", "table", name, "error", err.Error())
		return false, classify("table exists", err)
	}

	if count == 1 {
		s.log.Record(auditlog.LevelInfo, "table exists", "table", name)
		return true, nil
	}
	s.log.Record(auditlog.LevelInfo, "table not found", "table", name)
	return false, nil
}

// InitializeSchema creates whichever relations are missing. When Rooms is
// created it is seeded with the reference dataset in a single statement, so
// seeding happens at most once per database file.
//
// This function is idempotent. It is not transactional: on error some
// relations may already exist, and the caller should run it again before
// further use.
func (s *Store) InitializeSchema(ctx context.Context) error {
	s.log.Record(auditlog.LevelInfo, "initializing schema")

	for _, rel := range relations {
		exists, err := s.TableExists(ctx, rel.name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		s.log.Record(auditlog.LevelWarning, "relation missing, creating", "relation", rel.name)
		ddl, err := schemaFS.ReadFile(rel.ddl)
		if err != nil {
			return &Error{Kind: KindStatement, Op: "create " + rel.name, Err: err}
		}
		if _, err := s.exec(ctx, "create "+rel.name, string(ddl)); err != nil {
			s.log.Record(auditlog.LevelError, "cannot create relation", "relation", rel.name)
			return err
		}

		if rel.seeded {
			if err := s.seedRooms(ctx); err != nil {
				return err
			}
		}
	}

	s.log.Record(auditlog.LevelInfo, "schema initialized")
	return nil
}

// seedRooms inserts the reference dataset as one multi-row INSERT.
func (s *Store) seedRooms(ctx context.Context) error {
	const op = "seed " + RoomsTable

	rooms, err := seed.Rooms()
	if err != nil {
		s.log.Record(auditlog.LevelError, "invalid seed dataset", "error", err.Error())
		return &Error{Kind: KindStatement, Op: op, Err: err}
	}
	if len(rooms) == 0 {
		return nil
	}

	s.log.Record(auditlog.LevelInfo, "seeding rooms", "count", len(rooms))

	placeholders := make([]string, 0, len(rooms))
	args := make([]any, 0, len(rooms)*5)
	for _, r := range rooms {
		placeholders = append(placeholders, "(?, ?, ?, ?, ?)")
		args = append(args, r.Number, r.Building, r.Floor, stringToNull(r.Purpose), stringToNull(r.Responsible))
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (room_number, building, floor, purpose, responsible) VALUES %s",
		RoomsTable, strings.Join(placeholders, ", "),
	)
	if _, err := s.exec(ctx, op, query, args...); err != nil {
		s.log.Record(auditlog.LevelError, "cannot seed rooms")
		return err
	}
	return nil
}
