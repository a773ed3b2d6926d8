package messages

// ViewUpdate is sent by a client whenever its camera moves. The server uses
// the latest view position to cull snapshot records for that client.
type ViewUpdate struct {
	X, Y float64
}

// FireProjectile asks the server to spawn a projectile owned by the sender.
type FireProjectile struct {
	X, Y       float64
	DirX, DirY float64 // Need not be normalized
}

// Snapshot carries one observer's culled snapshot, encoded by
// snapshot.Builder.Bytes. Only observers that sent a ViewUpdate receive it.
type Snapshot struct {
	Tick uint64
	Data []byte
}
