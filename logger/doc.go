// Package logger is the public API of epilog. Most users only need to
// import this package.
//
// A Manager hands out named loggers and keeps them consistent: every
// logger it created shares the Manager's level, its output stream and,
// through the handlers, its formatter. Changing any of the three on the
// Manager reaches every registered logger at once:
//
//	m, err := logger.NewManager(logger.WithLevel(logger.DebugLevel))
//	if err != nil {
//	    return err
//	}
//	db := m.GetLogger("db")
//	db.Info("connected", logger.String("dsn", dsn))
//
//	_ = m.SetLevel(logger.WarnLevel) // db now drops INFO
//
// GetLogger is idempotent: asking twice for the same name returns the
// same *Logger. Names live in a Namespace: each Manager gets a fresh
// one unless WithNamespace passes a shared one, and the default Manager
// uses GlobalNamespace. A Manager never closes, or changes the level of,
// a handler that is another Manager's stream.
//
// A Manager is configured by a single owner and does no locking. The
// loggers it returns are safe for concurrent use.
//
// The package initializes a default Manager (INFO, console handler on
// stderr) in init(), reachable through Default and GetLogger:
//
//	log := logger.GetLogger("app")
//	log.Infof("listening on %d", port)
//
// Child loggers with extra fields are created via With. The child shares
// the parent's name, level and handlers:
//
//	reqLog := log.With(logger.String("request_id", id))
//
// Level checks happen before any allocation, so filtered-out messages
// cost only a single integer comparison.
package logger
