// Command scaleflows writes scaled copies of a Node-RED flow export for load
// experiments. Each factor k produces <base>.x<k>.json holding k replicas of
// every flow.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/specialistvlad/ldgraph/internal/cli"
	"github.com/specialistvlad/ldgraph/internal/flowlib"
	"github.com/specialistvlad/ldgraph/internal/fsutil"
	"github.com/specialistvlad/ldgraph/internal/record"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outW io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("scaleflows", flag.ContinueOnError)
	flagSet.SetOutput(outW)

	inFlag := flagSet.String("in", "", "Flow export to scale; must be a JSON array of nodes.")
	outDirFlag := flagSet.String("outdir", ".", "Directory the scaled exports are written to.")
	factorsFlag := flagSet.String("factors", "1,5,10", "Comma-separated replication factors.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	if *inFlag == "" {
		flagSet.Usage()
		return &cli.ExitError{Code: 2, Message: "-in is required"}
	}

	factors, err := parseFactors(*factorsFlag)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	data, err := os.ReadFile(*inFlag)
	if err != nil {
		return err
	}
	doc, err := record.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", *inFlag, err)
	}
	items, err := record.Array(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", *inFlag, err)
	}
	nodes := record.Objects(items)

	if err := os.MkdirAll(*outDirFlag, 0o755); err != nil {
		return err
	}

	base := fsutil.Stem(*inFlag)
	for _, factor := range factors {
		scaled, err := flowlib.Scale(nodes, factor)
		if err != nil {
			return err
		}
		encoded, err := encode(scaled)
		if err != nil {
			return err
		}
		path := filepath.Join(*outDirFlag, fmt.Sprintf("%s.x%d.json", base, factor))
		if err := os.WriteFile(path, encoded, 0o644); err != nil {
			return err
		}
		slog.Info("Wrote scaled export.", "path", path, "factor", factor, "nodes", len(scaled))
	}
	return nil
}

func parseFactors(s string) ([]int, error) {
	var factors []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, err := strconv.Atoi(part)
		if err != nil || k < 1 {
			return nil, fmt.Errorf("invalid factor %q: must be a positive integer", part)
		}
		factors = append(factors, k)
	}
	if len(factors) == 0 {
		return nil, errors.New("no factors given")
	}
	return factors, nil
}

func encode(nodes []map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(nodes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
