package models

import "time"

// Word represents a GRE vocabulary word belonging to a word list
type Word struct {
	ID         int64     `json:"id" db:"id"`
	ListID     int64     `json:"list_id" db:"list_id"`
	ListName   string    `json:"list_name" db:"list_name"`
	Word       string    `json:"word" db:"word"`
	Definition string    `json:"definition" db:"definition"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
