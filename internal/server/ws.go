package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/wealthofnations/game-server-go/internal/config"
	"github.com/wealthofnations/game-server-go/internal/game"
	"github.com/wealthofnations/game-server-go/internal/game/rules"
	"github.com/wealthofnations/game-server-go/internal/wallet"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The game client is served from a different origin in dev.
		return true
	},
}

// Request is an inbound client intent.
type Request struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
	CardID    string `json:"card_id,omitempty"`
	Count     int    `json:"count,omitempty"`
	OptionID  string `json:"option_id,omitempty"`
}

// Response is an outbound gateway message. State carries the full
// session snapshot; Event carries a single engine notification.
type Response struct {
	Type      string                  `json:"type"`
	SessionID string                  `json:"session_id,omitempty"`
	State     *game.Snapshot          `json:"state,omitempty"`
	Event     *EventPayload           `json:"event,omitempty"`
	Options   []wallet.PurchaseOption `json:"options,omitempty"`
	Receipt   *wallet.Receipt         `json:"receipt,omitempty"`
	Diamonds  *int                    `json:"diamonds,omitempty"`
	Error     string                  `json:"error,omitempty"`
	ErrorKind string                  `json:"error_kind,omitempty"`
}

// EventPayload is the serializable projection of an engine event.
type EventPayload struct {
	Type      string    `json:"type"`
	CardID    string    `json:"card_id,omitempty"`
	CardName  string    `json:"card_name,omitempty"`
	Phase     string    `json:"phase,omitempty"`
	Turn      int       `json:"turn,omitempty"`
	Amount    int       `json:"amount,omitempty"`
	Message   string    `json:"message,omitempty"`
	ErrorKind string    `json:"error_kind,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Client is one WebSocket connection. A client follows at most one
// session at a time.
type Client struct {
	conn      *websocket.Conn
	send      chan []byte
	sessionID string
}

// Gateway bridges WebSocket clients to the game engine and wallet.
// Engine events fan out to every client following the event's session.
type Gateway struct {
	logger    *zap.Logger
	cfg       config.ServerConfig
	engine    *game.Engine
	purchases *wallet.Service

	mu         sync.RWMutex
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client

	busHandle int
}

// NewGateway creates a gateway over the given engine and purchase
// service.
func NewGateway(cfg config.ServerConfig, engine *game.Engine, purchases *wallet.Service, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Gateway{
		logger:     logger,
		cfg:        cfg,
		engine:     engine,
		purchases:  purchases,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
	g.busHandle = engine.Events().Subscribe(g.forwardEvent)
	return g
}

// Run processes client registration until the context is cancelled.
func (g *Gateway) Run(ctx context.Context) {
	for {
		select {
		case client := <-g.register:
			g.mu.Lock()
			g.clients[client] = true
			g.mu.Unlock()
			g.logger.Debug("client registered")

		case client := <-g.unregister:
			g.mu.Lock()
			if _, ok := g.clients[client]; ok {
				delete(g.clients, client)
				close(client.send)
			}
			g.mu.Unlock()
			g.logger.Debug("client unregistered")

		case <-ctx.Done():
			g.engine.Events().Unsubscribe(g.busHandle)
			g.mu.Lock()
			for client := range g.clients {
				close(client.send)
				delete(g.clients, client)
			}
			g.mu.Unlock()
			return
		}
	}
}

// forwardEvent pushes an engine event to every client following its
// session.
func (g *Gateway) forwardEvent(event rules.Event) {
	payload, err := json.Marshal(Response{
		Type:      "event",
		SessionID: event.SessionID,
		Event: &EventPayload{
			Type:      string(event.Type),
			CardID:    event.CardID,
			CardName:  event.CardName,
			Phase:     event.Phase,
			Turn:      event.Turn,
			Amount:    event.Amount,
			Message:   event.Message,
			ErrorKind: event.ErrorKind,
			Timestamp: event.Timestamp,
		},
	})
	if err != nil {
		return
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	for client := range g.clients {
		if client.sessionID != event.SessionID {
			continue
		}
		select {
		case client.send <- payload:
		default:
			// Slow consumer; drop the event rather than block.
		}
	}
}

// ServeWS upgrades an HTTP request to a WebSocket client connection.
func (g *Gateway) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, 256),
	}
	g.register <- client

	go client.writePump()
	go client.readPump(g)
}

// Handler returns the HTTP mux serving the gateway endpoints.
func (g *Gateway) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", g.ServeWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// ListenAndServe blocks serving the gateway on the configured address.
func (g *Gateway) ListenAndServe() error {
	srv := &http.Server{
		Addr:         g.cfg.Address,
		Handler:      g.Handler(),
		ReadTimeout:  g.cfg.ReadTimeout,
		WriteTimeout: g.cfg.WriteTimeout,
	}
	g.logger.Info("gateway listening", zap.String("address", g.cfg.Address))
	return srv.ListenAndServe()
}

func (c *Client) readPump(g *Gateway) {
	defer func() {
		g.unregister <- c
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var req Request
		if err := json.Unmarshal(message, &req); err != nil {
			g.logger.Debug("bad client message", zap.Error(err))
			c.reply(Response{Type: "error", Error: "malformed message"})
			continue
		}

		g.handleRequest(c, req)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}

func (c *Client) reply(resp Response) {
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}

func (g *Gateway) handleRequest(c *Client, req Request) {
	g.logger.Debug("client request",
		zap.String("type", req.Type),
		zap.String("session_id", req.SessionID))

	switch req.Type {
	case "start_game":
		snap, err := g.engine.StartSession(req.SessionID)
		if err != nil {
			c.reply(errorResponse(req.SessionID, err))
			return
		}
		c.sessionID = snap.SessionID
		c.reply(Response{Type: "game_state", SessionID: snap.SessionID, State: snap})

	case "play_card":
		snap, err := g.engine.PlayCard(c.session(req), req.CardID)
		g.replyState(c, req, snap, err)

	case "end_phase":
		snap, err := g.engine.EndPhase(c.session(req))
		g.replyState(c, req, snap, err)

	case "draw_cards":
		count := req.Count
		if count <= 0 {
			count = 1
		}
		snap, err := g.engine.DrawCards(c.session(req), count)
		g.replyState(c, req, snap, err)

	case "undo":
		snap, err := g.engine.Undo(c.session(req))
		g.replyState(c, req, snap, err)

	case "get_state":
		snap, err := g.engine.Snapshot(c.session(req))
		g.replyState(c, req, snap, err)

	case "end_game":
		g.engine.EndSession(c.session(req))
		c.reply(Response{Type: "game_ended", SessionID: c.session(req)})
		c.sessionID = ""

	case "get_shop":
		balance, err := g.purchases.Balance(context.Background(), c.session(req))
		if err != nil {
			c.reply(errorResponse(c.session(req), err))
			return
		}
		c.reply(Response{
			Type:      "shop",
			SessionID: c.session(req),
			Options:   wallet.Options(),
			Diamonds:  &balance,
		})

	case "buy_diamonds":
		receipt, err := g.purchases.Buy(context.Background(), c.session(req), req.OptionID)
		if err != nil {
			c.reply(errorResponse(c.session(req), err))
			return
		}
		c.reply(Response{Type: "purchase_pending", SessionID: c.session(req), Receipt: receipt})

	default:
		c.reply(Response{Type: "error", Error: "unknown request type: " + req.Type})
	}
}

// session resolves the session ID for a request, preferring an
// explicit ID over the one the client is following.
func (c *Client) session(req Request) string {
	if req.SessionID != "" {
		return req.SessionID
	}
	return c.sessionID
}

func (g *Gateway) replyState(c *Client, req Request, snap *game.Snapshot, err error) {
	if err != nil {
		c.reply(errorResponse(c.session(req), err))
		return
	}
	if c.sessionID == "" {
		c.sessionID = snap.SessionID
	}
	c.reply(Response{Type: "game_state", SessionID: snap.SessionID, State: snap})
}

func errorResponse(sessionID string, err error) Response {
	resp := Response{Type: "error", SessionID: sessionID, Error: err.Error()}
	var gameErr *rules.GameError
	if errors.As(err, &gameErr) {
		resp.ErrorKind = string(gameErr.Kind)
	}
	return resp
}
