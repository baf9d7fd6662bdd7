/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command typebridge converts documents between JSON, YAML, CBOR and
// protobuf Value encodings and inspects their type tags.
//
//	typebridge [-version] [-tag] [-to FORMAT] [-from FORMAT] [FILE]
//
// FORMAT is one of json, yaml, cbor or proto.
//
// FILE defaults to standard input. The input format follows the file
// extension unless -from is given.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/suparena/typebridge"
	"github.com/suparena/typebridge/config"
	"github.com/suparena/typebridge/document"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("typebridge", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		versionFlag = fs.Bool("version", false, "Show version information")
		vFlag       = fs.Bool("v", false, "Show version information (short)")
		tagFlag     = fs.Bool("tag", false, "Print the document's type tag and exit")
		toFlag      = fs.String("to", "json", "Output format: json, yaml, cbor or proto")
		fromFlag    = fs.String("from", "", "Input format: json, yaml, cbor or proto (default from file extension)")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag || *vFlag {
		fmt.Fprintln(stdout, typebridge.GetVersionInfo())
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "typebridge: %v\n", err)
		return 1
	}
	logger, err := cfg.Logger()
	if err != nil {
		fmt.Fprintf(stderr, "typebridge: %v\n", err)
		return 1
	}
	defer logger.Sync()

	path := fs.Arg(0)
	data, err := readInput(path, stdin)
	if err != nil {
		logger.Error("failed to read input", zap.String("path", path), zap.Error(err))
		return 1
	}

	from := strings.ToLower(*fromFlag)
	if from == "" {
		from = formatOf(path)
	}

	doc, err := parse(data, from)
	if err != nil {
		logger.Error("failed to parse document", zap.String("format", from), zap.Error(err))
		return 1
	}
	logger.Debug("document parsed", zap.String("format", from), zap.Stringer("kind", doc.Kind()))

	if *tagFlag {
		tag, ok := doc.TypeTag()
		if !ok {
			fmt.Fprintf(stderr, "typebridge: document has no %q tag\n", document.TypeField)
			return 1
		}
		fmt.Fprintln(stdout, tag)
		return 0
	}

	out, err := render(doc, strings.ToLower(*toFlag))
	if err != nil {
		logger.Error("failed to render document", zap.Error(err))
		return 1
	}
	stdout.Write(out)
	return 0
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".cbor":
		return "cbor"
	case ".pb", ".binpb":
		return "proto"
	default:
		return "json"
	}
}

func parse(data []byte, format string) (document.Document, error) {
	switch format {
	case "json":
		return document.Parse(data)
	case "yaml":
		return document.ParseYAML(data)
	case "cbor":
		return document.ParseCBOR(data)
	case "proto":
		return document.ParseProto(data)
	default:
		return document.Document{}, fmt.Errorf("unsupported input format %q", format)
	}
}

func render(doc document.Document, format string) ([]byte, error) {
	switch format {
	case "json":
		out, err := doc.MarshalJSON()
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case "yaml":
		return doc.YAML()
	case "cbor":
		return doc.MarshalCBOR()
	case "proto":
		return doc.MarshalProto()
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}
