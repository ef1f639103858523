package store

import (
	"database/sql"

	"golang.org/x/text/unicode/norm"
)

// nullToString safely converts sql.NullString to string
func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// stringToNull stores an empty optional column as NULL
func stringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// normalize returns the NFC form of s. It backs the nfc() SQL function and
// search terms so that composed and decomposed spellings match; stored
// values are never rewritten.
func normalize(s string) string {
	return norm.NFC.String(s)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// assetColumns is the SELECT column list for asset queries.
// MUST match scanAsset order exactly.
const assetColumns = `id, name, quantity, inventory_tag, location, custodian`

func scanAsset(row rowScanner) (Asset, error) {
	var a Asset
	err := row.Scan(&a.ID, &a.Name, &a.Quantity, &a.InventoryTag, &a.Location, &a.Custodian)
	return a, err
}

// roomColumns is the SELECT column list for room queries.
// MUST match scanRoom order exactly.
const roomColumns = `id, room_number, building, floor, purpose, responsible`

func scanRoom(row rowScanner) (Room, error) {
	var (
		r                    Room
		purpose, responsible sql.NullString
	)
	if err := row.Scan(&r.ID, &r.Number, &r.Building, &r.Floor, &purpose, &responsible); err != nil {
		return Room{}, err
	}
	r.Purpose = nullToString(purpose)
	r.Responsible = nullToString(responsible)
	return r, nil
}
