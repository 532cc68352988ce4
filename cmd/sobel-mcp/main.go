package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/edgetools/sobel-mcp/internal/codec"
	"github.com/edgetools/sobel-mcp/internal/pixel"
	"github.com/edgetools/sobel-mcp/internal/server"
	"github.com/edgetools/sobel-mcp/internal/sobel"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle subcommands and flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("sobel-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		case "process":
			if err := runProcess(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	log := newLogger()

	log.Debug().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("commit", GitCommit).
		Msg("starting MCP server")

	srv := server.New(log)
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func printUsage() {
	fmt.Println("sobel-mcp - MCP server and CLI for Sobel edge detection")
	fmt.Println()
	fmt.Println("Usage: sobel-mcp [options]")
	fmt.Println("       sobel-mcp process [options] <image>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Subcommands:")
	fmt.Println("  process          Run the edge pipeline on an image and write")
	fmt.Println("                   every stage as PNG (see 'process -h')")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  SOBEL_MCP_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println()
	fmt.Println("Without a subcommand, the server communicates via MCP protocol")
	fmt.Println("over stdin/stdout. Configure it in your MCP client.")
}

// newLogger builds the process logger. Output goes to stderr because stdout
// carries the MCP protocol.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if v := os.Getenv("SOBEL_MCP_LOG_LEVEL"); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// runProcess implements the "process" subcommand: run the full pipeline on
// one image and write every stage to the output directory.
func runProcess(args []string) error {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	outDir := fs.String("out", ".", "directory for output images")
	blurRadius := fs.Float64("blur", 0, "Gaussian smoothing radius applied before the pipeline (0 disables)")
	workers := fs.Int("workers", 0, "row-processing goroutines per stage (0 uses all CPUs)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: sobel-mcp process [options] <image>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one image path, got %d", fs.NArg())
	}
	path := fs.Arg(0)

	log := newLogger()

	img, err := codec.Open(path)
	if err != nil {
		return err
	}
	buf, err := codec.FromImage(codec.Smooth(img, *blurRadius))
	if err != nil {
		return err
	}

	pipeline := sobel.NewPipeline(sobel.Options{Workers: *workers, Logger: &log})
	res, err := pipeline.Run(buf)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outputs := []struct {
		name string
		buf  *pixel.Buffer
	}{
		{"grayscale.png", res.Grayscale},
		{"horizontal.png", res.Horizontal},
		{"vertical.png", res.Vertical},
		{"edges.png", res.Edges},
		{"side_by_side.png", res.SideBySide},
	}
	for _, out := range outputs {
		target := filepath.Join(*outDir, out.name)
		if err := codec.Save(out.buf, target); err != nil {
			return err
		}
		log.Info().Str("path", target).Msg("wrote image")
	}

	stats := sobel.Stats(res.Edges, 30)
	log.Info().
		Int("edge_pixels", stats.EdgePixels).
		Float64("edge_ratio", stats.EdgeRatio).
		Float64("max_magnitude", stats.MaxMagnitude).
		Msg("edge detection complete")

	return nil
}
