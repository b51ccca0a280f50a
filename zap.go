package converge

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MarshalLogArray encodes the sequence as a JSON array of numbers.
func (s Sequence) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, e := range s {
		enc.AppendInt(e)
	}
	return nil
}

// zapSeq returns a Field which will encode as a
// proper JSON array, instead of a quoted string.
func zapSeq(key string, s Sequence) zap.Field {
	return zap.Array(key, s)
}

func (c *Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("target", c.Target)
	enc.AddInt("arity", c.Arity)
	enc.AddInt("min", c.Min)
	enc.AddInt("max", c.Max)
	enc.AddInt("attempts", c.MaxAttempts)
	return nil
}
