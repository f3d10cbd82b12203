// File: server/server.go
package server

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/lguibr/pongsim/bollywood"
	"github.com/lguibr/pongsim/events"
	"github.com/lguibr/pongsim/game"
	"github.com/rs/zerolog/log"
)

// ErrNoBroadcaster is returned when the broadcaster actor could not be reached.
var ErrNoBroadcaster = errors.New("server: broadcaster unavailable")

// Server is the read-only spectator surface of one game: the latest snapshot over
// HTTP and a websocket stream of state and events. Spectators cannot send input.
type Server struct {
	engine      *bollywood.Engine
	broadcaster *bollywood.PID
	latest      atomic.Pointer[game.Snapshot]
	router      *mux.Router
}

// New spawns the broadcaster actor on engine and builds the routes.
func New(engine *bollywood.Engine) *Server {
	s := &Server{
		engine:      engine,
		broadcaster: engine.Spawn(bollywood.NewProps(NewBroadcasterProducer())),
	}
	s.router = s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

// Publish records snap as the latest state and streams it to spectators.
// Safe to call from the game loop; it never blocks on the network.
func (s *Server) Publish(snap game.Snapshot) {
	s.latest.Store(&snap)
	s.engine.Send(s.broadcaster, Broadcast{Envelope: Envelope{Type: EnvelopeState, State: &snap}}, nil)
}

// Latest returns the last published snapshot.
func (s *Server) Latest() (game.Snapshot, bool) {
	snap := s.latest.Load()
	if snap == nil {
		return game.Snapshot{}, false
	}
	return *snap, true
}

// Attach forwards every game event to spectators. The returned subscriptions can be
// passed to events.Off to detach.
func (s *Server) Attach(ev game.Events) []game.Subscription {
	return []game.Subscription{
		ev.OnScoreChanged(func(c game.ScoreChange) { s.publishEvent(game.EventScoreChanged, c) }),
		ev.OnGameStateChanged(func(st game.GameState) { s.publishEvent(game.EventGameStateChanged, st) }),
		ev.OnGameReset(func() { s.publishEvent(game.EventGameReset, nil) }),
		ev.OnPlayerWon(func(w game.PlayerWon) { s.publishEvent(game.EventPlayerWon, w) }),
		ev.OnGameTypeChanged(func(c game.GameTypeChange) { s.publishEvent(game.EventGameTypeChanged, c) }),
		ev.OnPaddleHit(func(h game.PaddleHit) { s.publishEvent(game.EventPaddleHit, h) }),
		ev.OnBallServed(func(b game.BallServed) { s.publishEvent(game.EventBallServed, b) }),
		ev.OnGameStopped(func() { s.publishEvent(game.EventGameStopped, nil) }),
	}
}

func (s *Server) publishEvent(name events.Name, payload interface{}) {
	s.engine.Send(s.broadcaster, Broadcast{Envelope: Envelope{Type: EnvelopeEvent, Event: string(name), Payload: payload}}, nil)
}

// ClientCount asks the broadcaster how many spectators are connected.
func (s *Server) ClientCount(timeout time.Duration) (int, error) {
	if s.broadcaster == nil {
		return 0, ErrNoBroadcaster
	}
	reply := make(chan int, 1)
	s.engine.Send(s.broadcaster, ClientCount{Reply: reply}, nil)
	select {
	case n := <-reply:
		return n, nil
	case <-time.After(timeout):
		return 0, ErrNoBroadcaster
	}
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("spectator server listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

// Close stops the broadcaster, disconnecting every spectator.
func (s *Server) Close() {
	s.engine.Stop(s.broadcaster)
}
