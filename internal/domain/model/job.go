package model

// Job describes one balancing request flowing through the queue.
// Roster entries are references owned by the submitter; the pipeline
// never mutates them.
type Job struct {
	ID        string    // server-assigned job id
	Roster    []*Player // validated roster, non-empty
	TeamCount int
	Strategy  string // strategy name; empty means the service default
	Shuffle   bool
	Seed      *int64 // optional fixed seed for reproducible runs
}
