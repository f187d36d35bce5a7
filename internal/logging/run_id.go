package logging

import "github.com/google/uuid"

// GenerateRunID returns a random identifier for one CLI run, so that all
// log lines of a run can be correlated.
func GenerateRunID() string {
	return uuid.NewString()
}
