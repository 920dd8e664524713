package messages

// JoinRequest is sent by a viewer after connecting to start receiving the
// mirrored encounter.
type JoinRequest struct {
	Version       string
	SpectatorName string
}
