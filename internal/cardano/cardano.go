package cardano

import (
	"context"
	"encoding/json"
)

// CardanoClient exposes the node queries the reporter needs. Both queries go
// through cardano-cli against a local node socket.
type CardanoClient interface {
	CurrentEpoch(ctx context.Context) (int, error)
	LeadershipSchedule(ctx context.Context) (json.RawMessage, error)
}
