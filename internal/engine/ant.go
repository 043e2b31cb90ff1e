package engine

// ant is one registry entry: the colony the ant stands on (colony.None once
// removed) and its count of successful moves. Ants are identified by index
// into the registry and never reactivate after removal.
type ant struct {
	colony int
	moves  int
}
