package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/ldgraph/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	env := newEnv()

	flagSet := flag.NewFlagSet("ldgraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
ldgraph - Export forum topics, issues and flows as JSON-LD graphs.

Usage:
  ldgraph [options] [INPUT_DIR]

Arguments:
  INPUT_DIR
    Directory whose *.json files are exported (default "input").

Environment:
  Every option can be set as LDGRAPH_<OPTION>, e.g. LDGRAPH_WORKERS=8.
  NODERED_URDF and FLOWS_URL are accepted for -urdf and -flows-url.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", env.GetString("input"), "Directory containing the input *.json files.")
	outputFlag := flagSet.String("output", env.GetString("output"), "Directory the .jsonld datasets are written to.")
	profileFlag := flagSet.String("profile", env.GetString("profile"), "Exporter profile: 'forum', 'issues', 'flows' or one defined in a profile file.")
	profilesFlag := flagSet.String("profiles", env.GetString("profiles"), "Comma-separated .hcl files or directories defining exporter profiles.")
	urdfFlag := flagSet.String("urdf", env.GetString("urdf"), "Base URL of the Node-RED URDF runtime, e.g. http://localhost:1880.")
	noUploadFlag := flagSet.Bool("no-upload", env.GetBool("no-upload"), "Do not upload datasets to the URDF runtime.")
	flowsURLFlag := flagSet.String("flows-url", env.GetString("flows-url"), "Flow library URL recorded on exported flows.")
	socketURLFlag := flagSet.String("socketio-url", env.GetString("socketio-url"), "Publish datasets to this socket.io server and namespace.")
	socketPathFlag := flagSet.String("socketio-path", env.GetString("socketio-path"), "Socket.io endpoint path (default '/socket.io/').")
	socketEventFlag := flagSet.String("socketio-event", env.GetString("socketio-event"), "Event datasets are emitted under (default 'dataset').")
	socketReplyFlag := flagSet.String("socketio-reply", env.GetString("socketio-reply"), "Event the server answers with; empty does not wait.")
	printFlag := flagSet.Bool("print", env.GetBool("print"), "Also write datasets to standard output.")
	watchFlag := flagSet.Bool("watch", env.GetBool("watch"), "Keep running and export input files when they change.")
	debounceFlag := flagSet.Duration("watch-debounce", durationOr(env, "watch-debounce", app.DefaultWatchDebounce), "Quiet period before a changed file is exported.")
	healthPortFlag := flagSet.Int("healthcheck-port", env.GetInt("healthcheck-port"), "Port for the HTTP health check and metrics server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", env.GetString("log-format"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", env.GetString("log-level"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", env.GetInt("workers"), "Number of input files exported concurrently.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	input := *inputFlag
	switch flagSet.NArg() {
	case 0:
	case 1:
		input = flagSet.Arg(0)
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one input directory, got %d", flagSet.NArg())}
	}
	slog.Debug("Input directory determined.", "path", input)

	config, err := app.NewConfig(app.Config{
		InputDir:        input,
		OutputDir:       *outputFlag,
		Profile:         *profileFlag,
		ProfilePaths:    splitList(*profilesFlag),
		URDFURL:         strings.TrimSpace(*urdfFlag),
		NoUpload:        *noUploadFlag,
		FlowsURL:        strings.TrimSpace(*flowsURLFlag),
		SocketIOURL:     *socketURLFlag,
		SocketIOPath:    *socketPathFlag,
		SocketIOEvent:   *socketEventFlag,
		SocketIOReply:   *socketReplyFlag,
		Print:           *printFlag,
		Watch:           *watchFlag,
		WatchDebounce:   *debounceFlag,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       strings.ToLower(*logFormatFlag),
		LogLevel:        strings.ToLower(*logLevelFlag),
		WorkerCount:     *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
