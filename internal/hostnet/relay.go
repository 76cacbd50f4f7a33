// Package hostnet relays a vtcore.Terminal's grid over a websocket as a
// sequence of JSON snapshots, for browser-based front-ends. It is a host
// concern, not part of the terminal core: it only reads a Terminal's public
// accessors (Cell, DirtyRows, Redrawn) and never touches parser state.
package hostnet

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/studentlabs/vtcore"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// CellSnapshot is the wire representation of one cell of a dirty row.
type CellSnapshot struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Char rune   `json:"char"`
	Attr uint16 `json:"attr"`
	Fg   uint32 `json:"fg"`
	Bg   uint32 `json:"bg"`
}

// RowSnapshot carries every cell of one dirty row.
type RowSnapshot struct {
	Row   int            `json:"row"`
	Cells []CellSnapshot `json:"cells"`
}

// Session streams one Terminal's dirty rows to a single websocket client.
type Session struct {
	ID   string
	term *vtcore.Terminal
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

// Relay upgrades r into a websocket connection and streams snapshots of
// term's dirty rows to it at the given interval, until the connection
// closes.
func Relay(w http.ResponseWriter, r *http.Request, term *vtcore.Terminal, interval time.Duration) (*Session, error) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:   uuid.NewString(),
		term: term,
		conn: conn,
		send: make(chan []byte, 64),
		done: make(chan struct{}),
	}

	go s.writeLoop(interval)
	go s.readLoop()

	return s, nil
}

// Close shuts down the session's goroutines and underlying connection.
func (s *Session) Close() {
	s.once.Do(func() {
		close(s.done)
		s.conn.Close()
	})
}

func (s *Session) readLoop() {
	defer s.Close()
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Session) writeLoop(interval time.Duration) {
	snapshot := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer snapshot.Stop()
	defer ping.Stop()
	defer s.Close()

	for {
		select {
		case <-s.done:
			return
		case <-ping.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-snapshot.C:
			rows := s.collectDirty()
			if len(rows) == 0 {
				continue
			}
			payload, err := json.Marshal(rows)
			if err != nil {
				log.Printf("hostnet: marshal snapshot: %v", err)
				continue
			}
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
	}
}

func (s *Session) collectDirty() []RowSnapshot {
	dirty := s.term.DirtyRows()
	if len(dirty) == 0 {
		return nil
	}
	rows := make([]RowSnapshot, 0, len(dirty))
	for _, y := range dirty {
		cells := make([]CellSnapshot, 0, s.term.Cols())
		for x := 0; x < s.term.Cols(); x++ {
			c := s.term.Cell(x, y)
			cells = append(cells, CellSnapshot{
				X:    x,
				Y:    y,
				Char: c.Char,
				Attr: uint16(c.Attr),
				Fg:   uint32(c.Fg),
				Bg:   uint32(c.Bg),
			})
		}
		rows = append(rows, RowSnapshot{Row: y, Cells: cells})
	}
	s.term.Redrawn()
	return rows
}
