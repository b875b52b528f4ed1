package entity

import "time"

// Note is a single card on the board. Its position in the collection is the
// only ordering signal.
type Note struct {
	Id        string
	Content   string
	CreatedAt time.Time
}
