package monitor

import "time"

type Status struct {
	PostgreSQL    bool      `json:"postgresql"`
	Redis         bool      `json:"redis"`
	Journal       bool      `json:"journal"`
	JournalEvents int       `json:"journal_events"`
	LastCheck     time.Time `json:"last_check"`
}
