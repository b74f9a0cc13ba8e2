package memo

import "go.uber.org/zap"

// TableConfig bounds and shards the table behind a tableized function.
type TableConfig struct {
	MaxSize   uint32 // entries per generation, must be > 0
	NumShards int    // default: 1
	Logger    *zap.Logger
}

func NewTableConfig(maxSize uint32, numShards int) TableConfig {
	if numShards <= 0 {
		numShards = 1
	}
	return TableConfig{
		MaxSize:   maxSize,
		NumShards: numShards,
		Logger:    zap.NewNop(),
	}
}

func (c TableConfig) normalize() TableConfig {
	if c.NumShards <= 0 {
		c.NumShards = 1
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
