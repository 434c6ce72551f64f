package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the client configuration flags from args.
//
// Flags:
//
//	-a albums API address (URL or host:port)
//	-request-timeout outbound request timeout (e.g., "15s")
//	-d SQLite session storage DSN
//	-session-id storage session to resume
//	-session-key storage key of the token
//	-session-in-memory keep session items in process memory
//	-reset-session delete every item of the session on startup
//	-log-file JSON log file path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		address        string
		requestTimeout time.Duration
		dsn            string
		sessionID      string
		tokenKey       string
		inMemory       bool
		resetSession   bool
		logFile        string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("album-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&address, "a", "", "Albums API address (URL or host:port)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&dsn, "d", "", "SQLite session storage DSN")
	fs.StringVar(&sessionID, "session-id", "", "Storage session to resume")
	fs.StringVar(&tokenKey, "session-key", "", "Storage key of the token")
	fs.BoolVar(&inMemory, "session-in-memory", false, "Keep session items in process memory")
	fs.BoolVar(&resetSession, "reset-session", false, "Delete every item of the session on startup")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: dsn,
			},
			Session: Session{
				ID:       sessionID,
				TokenKey: tokenKey,
				InMemory: inMemory,
				Reset:    resetSession,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
