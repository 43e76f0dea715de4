package runner

import (
	"errors"
	"fmt"
)

var ErrBlockfrostUnhealthy = errors.New("blockfrost API is not healthy")

// ErrNodeOutOfSync indicates the local node reports an older epoch than the
// network, so its leadership schedule cannot be trusted.
type ErrNodeOutOfSync struct {
	NodeEpoch    int
	NetworkEpoch int
}

func (e *ErrNodeOutOfSync) Error() string {
	return fmt.Sprintf("node is out of sync: node epoch %d, network epoch %d", e.NodeEpoch, e.NetworkEpoch)
}
