package models

import "time"

// Search is one recorded flight search.
type Search struct {
	Kind    string    `json:"kind"    bson:"kind"`
	Query   string    `json:"query"   bson:"query"`
	Results int       `json:"results" bson:"results"`
	At      time.Time `json:"at"      bson:"at"`
}
