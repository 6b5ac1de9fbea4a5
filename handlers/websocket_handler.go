package handlers

import (
	"log"
	"net/http"

	"github.com/7kevin24/ZJU-SFL/league"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict to the league frontend origin before exposing this
		// outside the club network.
		return true
	},
}

type WebSocketHandler struct {
	hub *league.Hub
}

func NewWebSocketHandler(hub *league.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// ServeWs upgrades a league viewer connection. Viewers receive
// MATCH_RECORDED and STANDINGS_UPDATED events after every submission.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		log.Printf("failed to upgrade league viewer connection: %v", err)
		return
	}

	client := league.NewClient(h.hub, conn)
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
