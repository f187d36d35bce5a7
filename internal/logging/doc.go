// Package logging provides structured logging for obavi.
//
// # Creating a Logger
//
//	logger := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "text",
//	    Output: "stderr",
//	})
//
// Standard output is reserved for rendered records, so logs default to
// standard error. For tests, use a no-op logger or write to a buffer:
//
//	logger := logging.NewNop()
//	logger := logging.NewWriter(&buf, logging.LevelDebug, logging.FormatJSON)
//
// # Structured Logging
//
//	logger.Info("changeset rendered",
//	    "records", 12,
//	    "format", "ldif",
//	)
//
// Text format (level tag coloured on terminals):
//
//	2026-02-18T10:30:00Z [info] changeset rendered format=ldif records=12
//
// JSON format:
//
//	{"format":"ldif","level":"info","msg":"changeset rendered","records":12,"ts":"2026-02-18T10:30:00Z"}
//
// # Run IDs
//
//	runLogger := logger.WithRunID(logging.GenerateRunID())
package logging
