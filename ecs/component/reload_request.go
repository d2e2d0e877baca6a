package component

// ReloadRequest is a marker used to ask the scene loop to load the scene
// with the given build index once the current update finishes.
type ReloadRequest struct {
	Index int
}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
