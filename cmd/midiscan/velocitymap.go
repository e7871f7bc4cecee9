package main

import (
	"context"

	"github.com/Garik-/midiparser/pkg/midi"
	"go.uber.org/zap"
)

type velocityMap map[uint8]int
type positionMap map[int]velocityMap

// note -> bar position -> velocity -> count
type noteMap map[uint8]positionMap

type scanStats struct {
	Files  int `json:"files"`
	Failed int `json:"failed"`
	Tracks int `json:"tracks"`
	Notes  int `json:"notes"`
}

type database struct {
	Stats scanStats `json:"stats"`
	Notes noteMap   `json:"notes"`
}

func (m noteMap) add(note uint8, position int, velocity uint8) {
	positions, ok := m[note]
	if !ok {
		positions = make(positionMap)
		m[note] = positions
	}
	velocities, ok := positions[position]
	if !ok {
		velocities = make(velocityMap)
		positions[position] = velocities
	}
	velocities[velocity]++
}

// collect adds the note-on events of metrical tracks to m.
func (m noteMap) collect(r *result) int {
	if r.division.IsSMPTE() {
		return 0
	}

	n := 0
	for _, track := range r.tracks {
		for _, te := range midi.Timeline(track, r.division) {
			note, ok := te.Event.(*midi.Note)
			if !ok || note.Type() != midi.NoteOnEvent {
				continue
			}
			m.add(note.NoteNumber, te.BarPosition, note.Velocity)
			n++
		}
	}
	return n
}

func newVelocityMap(parent context.Context, paths <-chan string, cntRoutines int, maxSize int64) *database {
	log := velocityMapLog.Named("newVelocityMap")
	ctx, cancel := context.WithCancel(parent)
	results, done := decodeWorker(ctx, paths, cntRoutines, maxSize)

	defer func() {
		log.Debug("cancel")
		cancel()
		<-done // wait decodeWorker closed
	}()

	db := &database{Notes: make(noteMap)}

	for result := range results {
		db.Stats.Files++
		if result.err != nil {
			db.Stats.Failed++
			log.Warn("skip file", zap.String("name", result.name), zap.Error(result.err))
			continue
		}

		notes := db.Notes.collect(result)
		db.Stats.Tracks += len(result.tracks)
		db.Stats.Notes += notes

		log.Debug("result", zap.String("name", result.name), zap.Int("tracks", len(result.tracks)), zap.Int("notes", notes))
	}

	return db
}
