package ipc

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Connection is the bot's side of the engine pipe. The engine and the bot
// alternate strictly: one map line in, one command line out.
type Connection struct {
	r *bufio.Reader
	w *bufio.Writer
}

func NewConnection(r io.Reader, w io.Writer) *Connection {
	return &Connection{
		r: bufio.NewReader(r),
		w: bufio.NewWriter(w),
	}
}

// ReadInit consumes the pre-game handshake: player id, map size, initial map.
func (c *Connection) ReadInit() (Init, error) {
	idLine, err := ReadLine(c.r)
	if err != nil {
		return Init{}, fmt.Errorf("read player id: %w", err)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idLine))
	if err != nil {
		return Init{}, fmt.Errorf("parse player id %q: %w", idLine, err)
	}

	sizeLine, err := ReadLine(c.r)
	if err != nil {
		return Init{}, fmt.Errorf("read map size: %w", err)
	}
	dims := strings.Fields(sizeLine)
	if len(dims) != 2 {
		return Init{}, fmt.Errorf("invalid map size line %q", sizeLine)
	}
	width, err := strconv.Atoi(dims[0])
	if err != nil {
		return Init{}, fmt.Errorf("parse map width: %w", err)
	}
	height, err := strconv.Atoi(dims[1])
	if err != nil {
		return Init{}, fmt.Errorf("parse map height: %w", err)
	}

	mapLine, err := ReadLine(c.r)
	if err != nil {
		return Init{}, fmt.Errorf("read initial map: %w", err)
	}

	return Init{PlayerID: id, Width: width, Height: height, MapLine: mapLine}, nil
}

// SendName completes the handshake. The engine starts the first turn after it.
func (c *Connection) SendName(name string) error {
	return WriteLine(c.w, name)
}

// ReadTurn blocks until the engine sends the next map line.
func (c *Connection) ReadTurn() (string, error) {
	return ReadLine(c.r)
}

func (c *Connection) SendCommands(cmds []Command) error {
	if err := WriteLine(c.w, EncodeCommands(cmds)); err != nil {
		return err
	}
	slog.Debug("sent commands", "count", len(cmds))
	return nil
}
