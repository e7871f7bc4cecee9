package main

import (
	"context"
	"os"
	"sync"

	"github.com/Garik-/midiparser/pkg/midi"
	"go.uber.org/zap"
)

type result struct {
	name     string
	division midi.TimeDivision
	tracks   []*midi.Track
	err      error
}

func decodeFile(name string, maxSize int64) *result {
	out := &result{name: name}
	f, err := os.Open(name)
	if err != nil {
		out.err = err
		return out
	}

	defer f.Close()

	data, err := midi.ParseReader(f, maxSize, midi.WithLogger(decoderLog.With(zap.String("file", name))))
	if err != nil {
		out.err = err
		return out
	}

	out.division = data.Header.TimeDivision
	out.tracks = data.Tracks
	return out
}

func decodeWorker(ctx context.Context, paths <-chan string, cntRoutines int, maxSize int64) (<-chan *result, <-chan struct{}) {
	log := decoderLog.Named("decodeWorker")
	out := make(chan *result)
	done := make(chan struct{}, 1)

	go func() {
		var wg sync.WaitGroup
		goroutines := make(chan struct{}, cntRoutines)

	loop:
		for path := range paths {
			select {
			case goroutines <- struct{}{}:
			case <-ctx.Done():
				log.Debug("context done")
				break loop
			}
			wg.Add(1)
			go func(ctx context.Context, path string, goroutines <-chan struct{}, out chan<- *result, wg *sync.WaitGroup) {
				defer wg.Done()

				select {
				case out <- decodeFile(path, maxSize):
				case <-ctx.Done():
					log.Debug("decodeFile context done", zap.String("name", path))
				}
				<-goroutines

			}(ctx, path, goroutines, out, &wg)
		}

		wg.Wait()
		close(goroutines)
		close(out)

		done <- struct{}{}
		close(done)
	}()

	return out, done
}
