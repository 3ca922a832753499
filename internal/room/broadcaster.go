package room

// Broadcaster pushes room events to the rendering and notification side.
type Broadcaster interface {
	Broadcast(roomCode string, action string, data interface{})
}

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(string, string, interface{}) {}
