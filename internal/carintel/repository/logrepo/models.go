package logrepo

// Actions recorded in the activity log.
const (
	ActionSketchCreated = "sketch_created"
	ActionSketchUpdated = "sketch_updated"
	ActionSketchDeleted = "sketch_deleted"
	ActionLogin         = "login"
	ActionRegister      = "register"
)
