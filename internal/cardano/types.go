package cardano

// ClientQueryTipResponse is the JSON document printed by `cardano-cli query tip`.
// Epoch is a pointer so that a missing field can be told apart from epoch 0.
type ClientQueryTipResponse struct {
	Block           int    `json:"block,omitempty"`
	Epoch           *int   `json:"epoch,omitempty"`
	Era             string `json:"era,omitempty"`
	Hash            string `json:"hash,omitempty"`
	Slot            int    `json:"slot,omitempty"`
	SlotInEpoch     int    `json:"slotInEpoch,omitempty"`
	SlotsToEpochEnd int    `json:"slotsToEpochEnd,omitempty"`
	SyncProgress    string `json:"syncProgress,omitempty"`
}
