// File: server/handlers.go
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/lguibr/pongsim/render"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/websocket"
)

const (
	defaultASCIICols = 80
	defaultASCIIRows = 24
	maxASCIISize     = 400
)

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(recoverMiddleware)
	r.HandleFunc("/state", s.handleState).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/subscribe", websocket.Handler(s.handleSubscribe))
	return r
}

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Str("path", r.URL.Path).
					Interface("panic", rec).
					Str("stack", string(debug.Stack())).
					Msg("handler panicked")
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// handleState serves the latest snapshot as JSON, or as text with ?format=ascii
// (optional cols and rows).
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.Latest()
	if !ok {
		http.Error(w, "No state published yet", http.StatusServiceUnavailable)
		return
	}

	query := r.URL.Query()
	if query.Get("format") == "ascii" {
		cols := sizeParam(query.Get("cols"), defaultASCIICols)
		rows := sizeParam(query.Get("rows"), defaultASCIIRows)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, render.String(snap, cols, rows)+"\n")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		log.Warn().Err(err).Msg("writing state response")
	}
}

func sizeParam(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	if n > maxASCIISize {
		return maxASCIISize
	}
	return n
}

type healthResponse struct {
	Status   string `json:"status"`
	HasState bool   `json:"hasState"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, ok := s.Latest()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok", HasState: ok})
}

// handleSubscribe registers the connection with the broadcaster and blocks until the
// client goes away. Incoming frames are discarded.
func (s *Server) handleSubscribe(ws *websocket.Conn) {
	id := uuid.NewString()
	var initial *Envelope
	if snap, ok := s.Latest(); ok {
		initial = &Envelope{Type: EnvelopeState, State: &snap}
	}
	s.engine.Send(s.broadcaster, AddClient{ID: id, Conn: ws, Initial: initial}, nil)
	defer s.engine.Send(s.broadcaster, RemoveClient{ID: id}, nil)

	var discard string
	for {
		if err := websocket.Message.Receive(ws, &discard); err != nil {
			if err != io.EOF {
				log.Debug().Err(err).Str("client", id).Msg("spectator read ended")
			}
			return
		}
	}
}
