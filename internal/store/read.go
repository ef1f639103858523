package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/chebotarevdmitr/school-inventory/internal/auditlog"
)

// SearchAssets returns every asset whose name or location contains term as a
// case-sensitive substring, ordered by id. An empty term matches everything.
//
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) SearchAssets(ctx context.Context, term string) ([]Asset, error) {
	const op = "search assets"
	term = normalize(term)

	// instr() is case-sensitive and treats % and _ literally, unlike LIKE.
	// nfc() only affects matching; rows come back as stored.
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+assetColumns+`
		FROM Equipment
		WHERE instr(nfc(name), ?) > 0 OR instr(nfc(location), ?) > 0
		ORDER BY id ASC
	`, term, term)
	if err != nil {
		return nil, s.queryFailed(op, err)
	}
	defer rows.Close()

	assets := []Asset{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, s.queryFailed(op, err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, s.queryFailed(op, err)
	}

	s.log.Record(auditlog.LevelInfo, "assets found", "term", term, "count", len(assets))
	return assets, nil
}

// GetAsset returns the asset with the given tag, or KindNotFound.
func (s *Store) GetAsset(ctx context.Context, tag string) (Asset, error) {
	const op = "get asset"

	row := s.db.QueryRowContext(ctx, `
		SELECT `+assetColumns+`
		FROM Equipment
		WHERE inventory_tag = ?
	`, tag)

	a, err := scanAsset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Asset{}, &Error{Kind: KindNotFound, Op: op, Err: err}
	}
	if err != nil {
		return Asset{}, s.queryFailed(op, err)
	}
	return a, nil
}

// ListRoomIdentifiers returns every room_number in id order.
func (s *Store) ListRoomIdentifiers(ctx context.Context) ([]string, error) {
	const op = "list room identifiers"

	rows, err := s.db.QueryContext(ctx, `SELECT room_number FROM Rooms ORDER BY id ASC`)
	if err != nil {
		return nil, s.queryFailed(op, err)
	}
	defer rows.Close()

	numbers := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, s.queryFailed(op, err)
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, s.queryFailed(op, err)
	}
	return numbers, nil
}

// ListRooms returns every room in id order.
func (s *Store) ListRooms(ctx context.Context) ([]Room, error) {
	const op = "list rooms"

	rows, err := s.db.QueryContext(ctx, `SELECT `+roomColumns+` FROM Rooms ORDER BY id ASC`)
	if err != nil {
		return nil, s.queryFailed(op, err)
	}
	defer rows.Close()

	rooms := []Room{}
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, s.queryFailed(op, err)
		}
		rooms = append(rooms, r)
	}
	if err := rows.Err(); err != nil {
		return nil, s.queryFailed(op, err)
	}
	return rooms, nil
}

func (s *Store) queryFailed(op string, err error) error {
	se := classify(op, err)
	s.log.Record(auditlog.LevelError, "query failed", "op", op, "error", err.Error())
	return se
}
