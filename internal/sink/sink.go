// Package sink defines where finished datasets go.
//
// Every batch is written to the output directory by the File sink. Modules
// register further sinks (runtime upload, live publishing, stdout) that the
// application enables from its options.
package sink

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/specialistvlad/ldgraph/internal/urdf"
)

// Delivery is one finished dataset.
type Delivery struct {
	// Batch is the input stem the dataset was built from.
	Batch string
	// Dataset is the encoded JSON-LD dataset.
	Dataset json.RawMessage
}

// Sink receives datasets. Deliver may be called concurrently.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, d Delivery) error
	Close() error
}

// SocketIOOptions configures live publishing.
type SocketIOOptions struct {
	URL   string
	Path  string
	Event string
	// ReplyEvent, when set, is the event the server sends back to confirm a
	// dataset was received.
	ReplyEvent string
	Timeout    time.Duration
}

// Options is what sink factories are built from.
type Options struct {
	URDF     *urdf.Client
	NoUpload bool
	SocketIO SocketIOOptions
	Print    bool
	Stdout   io.Writer
}
