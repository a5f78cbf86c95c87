package ipc

// Init is everything the engine sends before the first turn.
type Init struct {
	PlayerID int
	Width    int
	Height   int
	MapLine  string // initial map, same format as every turn
}
