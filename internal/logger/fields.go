package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldSession is the structured log field key for the questionnaire session id.
	FieldSession = "session_id"
	// FieldStep is the structured log field key for a questionnaire step number.
	FieldStep = "step"
	// FieldName is the structured log field key for a form field name.
	FieldName = "field"
	// FieldProfile is the structured log field key for a career profile id.
	FieldProfile = "profile_id"
)

// StringField is a key and a string value to log.
type StringField struct {
	Key   string
	Value string
}

// StringFields turns pairs into zap fields. Keys and values are trimmed and a
// pair missing either half is left out, so an unset id never logs as "".
func StringFields(pairs ...StringField) []zap.Field {
	var out []zap.Field
	for _, pair := range pairs {
		key, value := strings.TrimSpace(pair.Key), strings.TrimSpace(pair.Value)
		if key == "" || value == "" {
			continue
		}
		out = append(out, zap.String(key, value))
	}
	return out
}

// WithFields returns logger with fields attached. Controllers and engines
// accept a nil logger, which becomes zap.NewNop here.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	switch {
	case logger == nil:
		logger = zap.NewNop()
	case len(fields) == 0:
		return logger
	}
	return logger.With(fields...)
}

// WithSession attaches the session id to the provided logger.
func WithSession(logger *zap.Logger, sessionID string) *zap.Logger {
	return WithFields(logger, StringFields(StringField{Key: FieldSession, Value: sessionID})...)
}
