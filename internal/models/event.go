package models

const (
	OperationCreated = "created"
	OperationUpdated = "updated"
	OperationDeleted = "deleted"
	OperationCleared = "cleared"
	OperationSeeded  = "seeded"
)

const (
	EntityUser       = "user"
	EntityHost       = "host"
	EntityShow       = "show"
	EntityEpisode    = "episode"
	EntityAdvertiser = "advertiser"
	EntityNetwork    = "network"
)

// Event describes a change to a user's data, published to Kafka.
type Event struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"` // Unix seconds
	UserID    string `json:"user_id"`
	Entity    string `json:"entity"`
	EntityID  string `json:"entity_id"` // Empty for bulk operations
	Operation string `json:"operation"`
}
