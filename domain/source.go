package domain

import "time"

// Source is a configured feed endpoint. Sources are created and edited by the
// admin workflow; the pipeline only reads them and never fetches inactive ones.
type Source struct {
	ID        string
	URL       string
	Name      string
	IsActive  bool
	CreatedAt time.Time
}
