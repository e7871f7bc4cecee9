package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
)

const (
	maxGoroutines = 10
	maxFileSize   = 16 << 20
)

var (
	listFlag  = flag.String("l", "", "The path to the list of midi files,\nfind . -type f -name \"*.mid\" > midi_list.txt")
	maxFlag   = flag.Int("p", maxGoroutines, "Number of files processed in parallel, must be > 0")
	outFlag   = flag.String("o", "", "Output json database, stdout if empty")
	sizeFlag  = flag.Int64("max", maxFileSize, "Skip files larger than this many bytes, 0 disables the limit")
	debugFlag = flag.Bool("debug", false, "Enable debug logging")
)

// readList streams the non-blank lines of r until ctx is done.
func readList(ctx context.Context, r io.Reader) <-chan string {
	out := make(chan string)

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	go func() {
		defer close(out)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case out <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func writeDatabase(w io.Writer, db *database) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(db)
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listFlag == "" {
		flag.Usage()
		return
	}

	if *maxFlag <= 0 {
		flag.Usage()
		return
	}

	if *debugFlag {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		defer l.Sync()
		enableDebugLogging(l)
	}

	f, err := os.Open(*listFlag)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := newVelocityMap(ctx, readList(ctx, f), *maxFlag, *sizeFlag)

	var out io.Writer = os.Stdout
	if *outFlag != "" {
		o, err := os.Create(*outFlag)
		if err != nil {
			log.Fatal(err)
		}
		defer o.Close()
		out = o
	}

	if err := writeDatabase(out, db); err != nil {
		log.Fatal(err)
	}

	log.Printf("files: %d, failed: %d, tracks: %d, notes: %d", db.Stats.Files, db.Stats.Failed, db.Stats.Tracks, db.Stats.Notes)
}
