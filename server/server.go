package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/klondike/game"
	"github.com/minaorangina/klondike/protocol"
	"github.com/minaorangina/klondike/store"
	uuid "github.com/satori/go.uuid"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewGameReq struct {
	Seed *int64 `json:"seed,omitempty"`
}

type NewGameRes struct {
	GameID    string        `json:"game_id"`
	SessionID string        `json:"session_id"`
	Snapshot  game.Snapshot `json:"snapshot"`
}

// GameServer hosts many independent solitaire sessions over HTTP and
// websocket
type GameServer struct {
	store store.GameStore

	// each game is a single-writer state machine; all engine calls
	// funnel through this lock
	mu sync.Mutex

	http.Server
}

// NewID returns a fresh session identifier
func NewID() string {
	return uuid.NewV4().String()
}

// NewGameID returns a six-letter shareable game code
func NewGameID() string {
	letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	code := make([]byte, 6)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range code {
		code[i] = letters[r.Intn(len(letters))]
	}

	return string(code)
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer
func NewServer(st store.GameStore, cfg Config) *GameServer {
	s := new(GameServer)

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleShowGame))
	router.Handle("/move", http.HandlerFunc(s.HandleMove))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	s.store = st

	origin := cfg.AllowedOrigin
	if origin == "" {
		origin = "*"
	}
	s.Handler = handlers.LoggingHandler(os.Stdout,
		handlers.CORS(handlers.AllowedOrigins([]string{origin}))(router))

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewGame deals a new game, optionally from a fixed seed, and
// registers it under a fresh game code
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil && err != io.EOF {
		writeParseError(err, w, r)
		return
	}

	var k *game.Klondike
	if data.Seed != nil {
		k = game.NewKlondikeWithSeed(*data.Seed)
	} else {
		k = game.NewKlondike()
	}

	gameID := NewGameID()
	if err := g.store.AddGame(gameID, k); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	payload := NewGameRes{
		GameID:    gameID,
		SessionID: NewID(),
		Snapshot:  k.Snapshot(),
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(bytes)
}

// HandleShowGame returns the current snapshot of a game
func (g *GameServer) HandleShowGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.Replace(r.URL.Path, "/game/", "", 1)
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	k := g.store.FindGame(gameID)
	if k == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	g.mu.Lock()
	snap := k.Snapshot()
	g.mu.Unlock()

	bytes, err := json.Marshal(snap)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.Write(bytes)
}

// HandleMove applies a single command to a game and returns the
// resulting snapshot. Illegal moves come back as a 200 with the error
// named in the payload; the game is unchanged.
func (g *GameServer) HandleMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var msg protocol.InboundMessage
	err := json.NewDecoder(r.Body).Decode(&msg)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	k := g.store.FindGame(msg.GameID)
	if k == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(msg.GameID)))
		return
	}

	g.mu.Lock()
	reply := applyCommand(k, msg)
	g.mu.Unlock()

	bytes, err := json.Marshal(reply)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.Write(bytes)
}

// HandleWS upgrades to a websocket session: one InboundMessage per
// frame in, one OutboundMessage per frame out
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	vals, ok := query["game_id"]
	if !ok || len(vals) != 1 {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}
	gameID := vals[0]

	k := g.store.FindGame(gameID)
	if k == nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(fmt.Sprintf("could not upgrade to websocket: %v", err)))
		return
	}

	go g.wsLoop(conn, gameID, k)
}

func (g *GameServer) wsLoop(conn *websocket.Conn, gameID string, k *game.Klondike) {
	defer conn.Close()

	for {
		var msg protocol.InboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("ws read (%s): %v", gameID, err)
			return
		}

		if msg.Command == protocol.Quit {
			g.store.RemoveGame(gameID)
			return
		}

		msg.GameID = gameID
		g.mu.Lock()
		reply := applyCommand(k, msg)
		g.mu.Unlock()

		if err := conn.WriteJSON(reply); err != nil {
			log.Printf("ws write (%s): %v", gameID, err)
			return
		}
	}
}

func writeParseError(err error, w http.ResponseWriter, r *http.Request) {
	if err == io.EOF {
		log.Println(err.Error())
		w.Header().Add("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing body"))
		return
	}
	if err != nil {
		log.Println(err.Error())
		w.Header().Add("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadRequest)
		return
	}
}
