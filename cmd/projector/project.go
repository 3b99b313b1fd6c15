package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/GoSim-25-26J-441/seqr-views/internal/projection"
)

// runProject reads a JSON array of records and prints their projections.
func runProject(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("project", flag.ContinueOnError)
	fs.SetOutput(stderr)
	privileged := fs.Bool("privileged", false, "include privileged fields")
	catalogFile := fs.String("catalog", "", "catalog YAML (default: compiled-in catalog)")
	mediaRoot := fs.String("media-root", projection.DefaultMediaRoot, "root relative media paths are joined under")
	individualGuids := fs.Bool("individual-guids", false, "add individualGuids to families")
	sampleType := fs.Bool("sample-type", true, "add sampleType to datasets")
	verbose := fs.Bool("v", false, "log soft failures to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errors.New("project takes <kind> <records.json>")
	}

	kind, err := projection.ParseKind(fs.Arg(0))
	if err != nil {
		return err
	}

	var cat *projection.Catalog
	if *catalogFile != "" {
		cat, err = projection.LoadCatalogFile(*catalogFile)
	} else {
		cat, err = projection.DefaultCatalog()
	}
	if err != nil {
		return err
	}

	opts := []projection.Option{projection.WithMediaRoot(*mediaRoot)}
	if *verbose {
		opts = append(opts, projection.WithLogger(slog.New(slog.NewTextHandler(stderr, nil))))
	}
	p, err := projection.New(cat, opts...)
	if err != nil {
		return err
	}

	records, err := readRecords(fs.Arg(1))
	if err != nil {
		return err
	}

	results, err := p.ProjectAll(kind, records, projection.Caller{Privileged: *privileged},
		projection.WithIndividualGuids(*individualGuids),
		projection.WithSampleType(*sampleType),
	)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// readRecords decodes a JSON array of objects. "-" reads stdin.
func readRecords(path string) ([]projection.Record, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	out := make([]projection.Record, len(raw))
	for i, m := range raw {
		out[i] = projection.MapRecord(m)
	}
	return out, nil
}
