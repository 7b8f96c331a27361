package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/c360studio/semstreams/natsclient"

	"github.com/c360studio/semcode/config"
	"github.com/c360studio/semcode/graph"
	"github.com/c360studio/semcode/storage"
)

// App wires together the NATS connection, entity storage, and the graph
// publisher.
type App struct {
	cfg *config.Config

	// NATS
	embeddedServer *server.Server
	natsConn       *nats.Conn
	js             jetstream.JetStream

	// Storage
	store *storage.Store

	// Publisher for graph ingestion
	publisher *natsclient.Client
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

// Store returns the entity store. Nil until Start succeeds.
func (a *App) Store() *storage.Store {
	return a.store
}

// Publisher returns the NATS client used for graph publishing. Nil until
// Start succeeds.
func (a *App) Publisher() *natsclient.Client {
	return a.publisher
}

// Start initializes and starts all components.
func (a *App) Start(ctx context.Context) error {
	if err := a.startNATS(ctx); err != nil {
		return fmt.Errorf("start NATS: %w", err)
	}

	if err := a.ensureGraphStream(ctx); err != nil {
		return fmt.Errorf("ensure graph stream: %w", err)
	}

	store, err := storage.NewStore(ctx, a.js)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	a.store = store

	if err := a.startPublisher(ctx); err != nil {
		return fmt.Errorf("start publisher: %w", err)
	}

	return nil
}

func (a *App) startNATS(ctx context.Context) error {
	if a.cfg.NATS.URL != "" && !a.cfg.NATS.Embedded {
		// Connect to external NATS
		conn, err := nats.Connect(a.cfg.NATS.URL)
		if err != nil {
			return fmt.Errorf("connect to NATS: %w", err)
		}
		a.natsConn = conn
	} else {
		// Start embedded NATS server
		opts := &server.Options{
			Port:      -1, // Random available port
			JetStream: true,
			NoLog:     true,
			NoSigs:    true,
		}

		ns, err := server.NewServer(opts)
		if err != nil {
			return fmt.Errorf("create embedded NATS server: %w", err)
		}

		go ns.Start()

		if !ns.ReadyForConnections(5 * time.Second) {
			ns.Shutdown()
			return fmt.Errorf("embedded NATS server failed to start")
		}

		a.embeddedServer = ns

		conn, err := nats.Connect(ns.ClientURL())
		if err != nil {
			ns.Shutdown()
			return fmt.Errorf("connect to embedded NATS: %w", err)
		}
		a.natsConn = conn
	}

	js, err := jetstream.New(a.natsConn)
	if err != nil {
		return fmt.Errorf("create JetStream context: %w", err)
	}
	a.js = js

	return nil
}

// ensureGraphStream creates the stream backing graph ingestion so
// publishes are durable.
func (a *App) ensureGraphStream(ctx context.Context) error {
	_, err := a.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     "GRAPH",
		Subjects: []string{graph.GraphIngestSubject},
		Storage:  jetstream.FileStorage,
	})
	return err
}

func (a *App) startPublisher(ctx context.Context) error {
	url := a.cfg.NATS.URL
	if a.embeddedServer != nil {
		url = a.embeddedServer.ClientURL()
	}

	client, err := natsclient.NewClient(url,
		natsclient.WithName("semcode"),
		natsclient.WithMaxReconnects(-1),
		natsclient.WithReconnectWait(time.Second),
	)
	if err != nil {
		return fmt.Errorf("create NATS client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("connect NATS client: %w", err)
	}

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.WaitForConnection(connCtx); err != nil {
		return fmt.Errorf("wait for NATS connection: %w", err)
	}

	a.publisher = client
	return nil
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown(ctx context.Context) {
	if a.publisher != nil {
		a.publisher.Close(ctx)
	}

	if a.natsConn != nil {
		a.natsConn.Drain()
		a.natsConn.Close()
	}

	if a.embeddedServer != nil {
		a.embeddedServer.Shutdown()
		a.embeddedServer.WaitForShutdown()
	}
}
