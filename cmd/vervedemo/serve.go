package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/gogpu/verve"
	"github.com/gogpu/verve/render"
)

// newServeCmd runs a headless engine behind an HTTP feed: JSON
// snapshots for polling consumers and a server-sent event stream of
// lifecycle events — the out-of-process analogue of the engine's
// string-keyed style surface.
func newServeCmd(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve engine snapshots and events over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine(*configPath, verve.WithBackend("soft"))
			if err != nil {
				return err
			}
			defer eng.Close()

			if _, _, err := eng.CreateSurface("serve", verve.SurfaceOptions{
				Canvas:   render.CanvasOptions{Width: 640, Height: 360},
				Priority: 10,
				Cost:     1,
			}); err != nil {
				return err
			}
			seedClock(eng)
			eng.TransitionToSection("home")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			go func() {
				_ = eng.Run(ctx)
			}()

			r := chi.NewRouter()
			r.Use(middleware.Recoverer)
			r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			r.Get("/api/snapshot", func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(eng.Snapshot())
			})
			r.Get("/api/section/{id}", func(w http.ResponseWriter, req *http.Request) {
				eng.TransitionToSection(chi.URLParam(req, "id"))
				w.WriteHeader(http.StatusAccepted)
			})
			r.Get("/api/events", func(w http.ResponseWriter, req *http.Request) {
				serveEvents(eng, w, req)
			})

			srv := &http.Server{Addr: addr, Handler: r}
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			fmt.Printf("serving on %s\n", addr)
			err = srv.ListenAndServe()
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8382", "listen address")
	return cmd
}

// serveEvents streams bus events as server-sent events until the client
// disconnects.
func serveEvents(eng *verve.Engine, w http.ResponseWriter, req *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	id := fmt.Sprintf("sse-%d", time.Now().UnixNano())
	events, err := eng.Bus().Subscribe(id, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer func() { _ = eng.Bus().Unsubscribe(id) }()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	flusher.Flush()

	for {
		select {
		case <-req.Context().Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(e)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Kind, payload)
			flusher.Flush()
		}
	}
}
