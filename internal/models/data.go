package models

// EntityCounts holds a number per resource kind.
// swagger:model EntityCounts
type EntityCounts struct {
	Hosts       int64 `json:"hosts"`
	Shows       int64 `json:"shows"`
	Episodes    int64 `json:"episodes"`
	Advertisers int64 `json:"advertisers"`
}

// SeedResult reports the outcome of initializing sample data.
// swagger:model SeedResult
type SeedResult struct {
	Initialized bool         `json:"initialized"`
	Counts      EntityCounts `json:"counts"`
}
