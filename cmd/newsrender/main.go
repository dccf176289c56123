// Команда newsrender выводит документ с новостями в терминал, в HTML или в JSON
// без базы данных и HTTP-сервера.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"newsboard/internal/adapter/fetcher"
	"newsboard/internal/adapter/parser"
	"newsboard/internal/config"
	"newsboard/internal/logger"
	"newsboard/internal/newslist"
)

const usage = "usage: newsrender [-format term|html|page|json] [-width N] [-dark] <file|url>"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("newsrender", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "term", "output format: term, html, page or json")
	width := fs.Int("width", 0, "terminal width in columns (term format)")
	dark := fs.Bool("dark", false, "use the dark badge palette (term format)")
	logLevel := fs.String("log-level", "warn", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, usage)
		return 2
	}
	switch *format {
	case "term", "html", "page", "json":
	default:
		fmt.Fprintf(stderr, "unknown format %q\n%s\n", *format, usage)
		return 2
	}

	log, err := logger.New(config.LoggerConfig{
		Level:     *logLevel,
		File:      logger.Stderr,
		ErrorFile: logger.Stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "could not setup logger: %v\n", err)
		return 1
	}

	location := fs.Arg(0)
	reader, err := fetcher.New(log).Fetch(ctx, location)
	if err != nil {
		fmt.Fprintf(stderr, "could not load %s: %v\n", location, err)
		return 1
	}
	defer reader.Close()
	section, err := parser.NewDocumentParser(log).Parse(ctx, reader)
	if err != nil {
		fmt.Fprintf(stderr, "could not decode %s: %v\n", location, err)
		return 1
	}

	tree := newslist.Render(*section)
	switch *format {
	case "html":
		err = newslist.WriteHTML(stdout, tree)
	case "page":
		err = newslist.WritePage(stdout, tree)
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(tree)
	default:
		_, err = io.WriteString(stdout, newslist.RenderTerminal(tree, newslist.TerminalOptions{
			Width:  *width,
			Dark:   *dark,
			Output: stdout,
		}))
	}
	if err != nil {
		fmt.Fprintf(stderr, "could not write output: %v\n", err)
		return 1
	}
	return 0
}
