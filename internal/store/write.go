package store

import (
	"context"

	"github.com/chebotarevdmitr/school-inventory/internal/auditlog"
)

// InsertAsset inserts a into Equipment and returns the assigned id.
// a.ID is ignored; ids come from AUTOINCREMENT and are never reused.
// Text is stored byte for byte; tags are unique as exact strings.
//
// A duplicate inventory tag (or a non-positive quantity) fails with
// KindConstraint and leaves the table unchanged.
func (s *Store) InsertAsset(ctx context.Context, a Asset) (int64, error) {
	const op = "insert asset"

	res, err := s.exec(ctx, op, `
		INSERT INTO Equipment (name, quantity, inventory_tag, location, custodian)
		VALUES (?, ?, ?, ?, ?)
	`,
		a.Name,
		a.Quantity,
		a.InventoryTag,
		a.Location,
		a.Custodian,
	)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, classify(op, err)
	}

	s.log.Record(auditlog.LevelInfo, "asset inserted", "id", id, "tag", a.InventoryTag)
	return id, nil
}

// UpdateAsset replaces quantity, location and custodian of the asset with
// the given tag. name and id are left untouched.
//
// Returns KindNotFound when no row has that tag.
func (s *Store) UpdateAsset(ctx context.Context, tag string, quantity int, location, custodian string) error {
	const op = "update asset"

	res, err := s.exec(ctx, op, `
		UPDATE Equipment
		SET quantity = ?, location = ?, custodian = ?
		WHERE inventory_tag = ?
	`,
		quantity,
		location,
		custodian,
		tag,
	)
	if err != nil {
		return err
	}

	return s.expectOneRow(op, tag, res.RowsAffected)
}

// RemoveAsset deletes the asset with the given tag.
//
// Returns KindNotFound when no row has that tag.
func (s *Store) RemoveAsset(ctx context.Context, tag string) error {
	const op = "remove asset"

	res, err := s.exec(ctx, op, `DELETE FROM Equipment WHERE inventory_tag = ?`, tag)
	if err != nil {
		return err
	}

	return s.expectOneRow(op, tag, res.RowsAffected)
}

// expectOneRow turns a zero affected-row count into KindNotFound.
func (s *Store) expectOneRow(op, tag string, rowsAffected func() (int64, error)) error {
	n, err := rowsAffected()
	if err != nil {
		return classify(op, err)
	}
	if n == 0 {
		s.log.Record(auditlog.LevelWarning, "no asset with tag", "op", op, "tag", tag)
		return &Error{Kind: KindNotFound, Op: op}
	}
	s.log.Record(auditlog.LevelInfo, "asset changed", "op", op, "tag", tag)
	return nil
}
