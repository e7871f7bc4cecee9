package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Garik-/midiparser/pkg/midi"
	"go.uber.org/zap"
)

const maxFileSize = 16 << 20

var (
	inFlag     = flag.String("i", "", "Input midi file")
	jsonFlag   = flag.Bool("json", false, "Print the parsed structure as json")
	eventsFlag = flag.Int("events", 0, "Max events printed per track, 0 prints all")
	sizeFlag   = flag.Int64("max", maxFileSize, "Refuse files larger than this many bytes, 0 disables the limit")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging")
)

func isMidiFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".mid" || ext == ".midi"
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *inFlag == "" {
		flag.Usage()
		return
	}

	if !isMidiFile(*inFlag) {
		log.Fatalf("%s: please use a .mid or .midi file", *inFlag)
	}

	if *debugFlag {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		defer l.Sync()
		enableDebugLogging(l)
	}

	f, err := os.Open(*inFlag)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	data, err := midi.ParseReader(f, *sizeFlag, midi.WithLogger(decoderLog))
	if err != nil {
		log.Fatalf("error parsing midi file: %v", err)
	}

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(data)
	} else {
		err = render(os.Stdout, filepath.Base(*inFlag), data, *eventsFlag)
	}

	if err != nil {
		log.Fatal(err)
	}
}
