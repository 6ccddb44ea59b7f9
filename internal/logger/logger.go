package logger

import (
	"go-shipdata/internal/config"
	"go-shipdata/internal/database"

	"go.uber.org/zap"
)

// NewLogger builds the application logger. Entries go to the console encoder
// and, through an async writer, into the logs collection of the definition
// store.
func NewLogger(cfg *config.Config, mdb *database.MongodbDB) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Environment == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Enable Caller so the sink can record the function name
	zapConfig.EncoderConfig.FunctionKey = "func"

	baseLogger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	dbWriter := NewDBLogWriter(mdb, cfg)
	finalCore := NewDBCore(baseLogger.Core(), dbWriter)

	return zap.New(finalCore, zap.AddCaller()), nil
}
