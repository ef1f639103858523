package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRooms_BuiltInDataset(t *testing.T) {
	rooms, err := Rooms()
	require.NoError(t, err)
	require.Len(t, rooms, 25)

	assert.Equal(t, Room{Number: "1", Building: "A", Floor: 1, Purpose: "History"}, rooms[0])
	assert.Equal(t, Room{Number: "27", Building: "A", Floor: 3, Purpose: "Accounting"}, rooms[24])

	for _, r := range rooms {
		assert.NotEmpty(t, r.Number)
		assert.Equal(t, "A", r.Building)
		assert.GreaterOrEqual(t, r.Floor, 1)
		assert.LessOrEqual(t, r.Floor, 3)
	}
}

func TestParse_OptionalFields(t *testing.T) {
	rooms, err := Parse("test.cue", `
#Room: {
	room_number:  string & !=""
	building:     string & !=""
	floor:        int & >=1
	purpose?:     string
	responsible?: string
}
rooms: [...#Room] & [
	{room_number: "101", building: "B1", floor: 1},
	{room_number: "102", building: "B1", floor: 1, responsible: "Petrov P.P."},
]
`)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Empty(t, rooms[0].Purpose)
	assert.Empty(t, rooms[0].Responsible)
	assert.Equal(t, "Petrov P.P.", rooms[1].Responsible)
}

func TestParse_Rejects(t *testing.T) {
	const schema = `
#Room: {
	room_number:  string & !=""
	building:     string & !=""
	floor:        int & >=1
	purpose?:     string
	responsible?: string
}
`
	tests := []struct {
		name string
		src  string
	}{
		{"syntax error", `rooms: [`},
		{"missing list", schema + `other: 1`},
		{"floor below one", schema + `rooms: [...#Room] & [{room_number: "1", building: "A", floor: 0}]`},
		{"empty room number", schema + `rooms: [...#Room] & [{room_number: "", building: "A", floor: 1}]`},
		{"unknown field", schema + `rooms: [...#Room] & [{room_number: "1", building: "A", floor: 1, wing: "east"}]`},
		{"missing building", schema + `rooms: [...#Room] & [{room_number: "1", floor: 1}]`},
		{"duplicate number", schema + `rooms: [...#Room] & [
			{room_number: "1", building: "A", floor: 1},
			{room_number: "1", building: "A", floor: 2},
		]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms, err := Parse("bad.cue", tt.src)
			require.Error(t, err)
			assert.Nil(t, rooms)

			var seedErr *Error
			assert.ErrorAs(t, err, &seedErr)
		})
	}
}
