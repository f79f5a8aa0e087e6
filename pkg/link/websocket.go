package link

import (
	"golang.org/x/net/websocket"
)

// DialWebsocket connects to a board exposed over websocket, e.g. by
// trinket-sim.
func DialWebsocket(url string) (*Stream, error) {
	conn, err := websocket.Dial(url, "", "http://localhost/")
	if err != nil {
		return nil, err
	}
	conn.PayloadType = websocket.BinaryFrame
	return NewStream(conn), nil
}

// WebsocketHandler serves each websocket connection as a Stream.
// serve owns the stream until it returns.
func WebsocketHandler(serve func(*Stream)) websocket.Handler {
	return func(conn *websocket.Conn) {
		conn.PayloadType = websocket.BinaryFrame
		s := NewStream(conn)
		defer s.Close()
		serve(s)
	}
}
