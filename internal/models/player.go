package models

import "strconv"

// Player represents a participant in a tracked game
type Player struct {
	// ID is the unique identifier for the player
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// AvatarColor is the color used when rendering the player, as a hex string
	AvatarColor string `json:"avatar_color"`

	// Active indicates the player is part of a game that is still running
	Active bool `json:"active"`

	// Deactivated indicates the player was removed from the directory
	Deactivated bool `json:"deactivated"`
}

// PlayerAt looks up a player by a seat position stored as a string, the
// way rounds reference takers and called partners. Malformed or
// out-of-range positions do not match.
func PlayerAt(players []*Player, index string) (*Player, bool) {
	i, err := strconv.Atoi(index)
	if err != nil || i < 0 || i >= len(players) || players[i] == nil {
		return nil, false
	}
	return players[i], true
}

// AvatarColors is the palette assigned to players by seat
var AvatarColors = []string{
	"#E57373",
	"#64B5F6",
	"#81C784",
	"#FFD54F",
	"#BA68C8",
	"#4DB6AC",
	"#FF8A65",
	"#A1887F",
}

// AvatarColorForSeat picks a palette color for a seat, wrapping around
func AvatarColorForSeat(seat int) string {
	if seat < 0 {
		seat = -seat
	}
	return AvatarColors[seat%len(AvatarColors)]
}
