package socketio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/specialistvlad/ldgraph/internal/ctxlog"
	"github.com/specialistvlad/ldgraph/internal/registry"
	"github.com/specialistvlad/ldgraph/internal/sink"
)

// Name of the sink.
const Name = "socketio"

// Defaults applied when the options leave them empty.
const (
	DefaultEvent   = "dataset"
	DefaultTimeout = 15 * time.Second
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// payload is what the sink emits for every dataset.
func payload(batch string, doc any) map[string]any {
	return map[string]any{"batch": batch, "doc": doc}
}

// Sink publishes datasets over one persistent socket.io connection.
type Sink struct {
	io      *socket.Socket
	event   string
	reply   string
	timeout time.Duration

	// mu serializes deliveries so a reply is matched to its emit.
	mu      sync.Mutex
	replies chan []any
}

// New connects to opts.URL and returns the sink, or nil when no URL is set.
func New(ctx context.Context, opts sink.Options) (sink.Sink, error) {
	cfg := opts.SocketIO
	if cfg.URL == "" {
		return nil, nil
	}
	if cfg.Event == "" {
		cfg.Event = DefaultEvent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	logger := ctxlog.FromContext(ctx).With("sink", Name, "url", cfg.URL)
	logger.Info("Creating new client instance...")

	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid socket.io URL %q", cfg.URL)
	}

	socketOpts := socket.DefaultOptions()
	if cfg.Path != "" {
		socketOpts.SetPath(cfg.Path)
	}
	socketOpts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	namespace := parsedURL.Path
	if namespace == "" {
		namespace = "/"
	}
	manager := socket.NewManager(baseURL, socketOpts)
	io := manager.Socket(namespace, socketOpts)

	s := &Sink{
		io:      io,
		event:   cfg.Event,
		reply:   cfg.ReplyEvent,
		timeout: cfg.Timeout,
		replies: make(chan []any, 1),
	}
	if s.reply != "" {
		io.On(types.EventName(s.reply), func(data ...any) {
			select {
			case s.replies <- data:
			default:
				logger.Warn("Dropping unexpected reply.", "event", s.reply)
			}
		})
	}

	connectChan := make(chan error, 1)
	io.Once(types.EventName("connect"), func(...any) {
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := fmt.Errorf("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		select {
		case connectChan <- err:
		default:
		}
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(cfg.Timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %v waiting for socket.io connection", cfg.Timeout)
	}

	logger.Info("Successfully connected", "sid", io.Id(), "namespace", namespace)
	return s, nil
}

func (s *Sink) Name() string { return Name }

// Deliver emits the dataset and, when a reply event is configured, waits for
// the server to answer.
func (s *Sink) Deliver(ctx context.Context, d sink.Delivery) error {
	logger := ctxlog.FromContext(ctx).With("sink", Name, "batch", d.Batch)

	var doc any
	if err := json.Unmarshal(d.Dataset, &doc); err != nil {
		return fmt.Errorf("failed to decode dataset: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.io.Connected() {
		return fmt.Errorf("socket.io client is not connected")
	}

	// Forget replies that arrived after an earlier delivery gave up.
	select {
	case <-s.replies:
	default:
	}

	logger.Debug("Emitting event", "event", s.event)
	s.io.Emit(s.event, payload(d.Batch, doc))

	if s.reply == "" {
		return nil
	}

	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	select {
	case <-opCtx.Done():
		return fmt.Errorf("timed out after %v waiting for event '%s'", s.timeout, s.reply)
	case <-s.replies:
		logger.Debug("Received reply", "event", s.reply)
		return nil
	}
}

// Close disconnects the client.
func (s *Sink) Close() error {
	s.io.Disconnect()
	return nil
}

// Register registers the sink with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSink(Name, &registry.RegisteredSink{New: New})
}
