package pkg

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

type Options struct {
	Workers  int
	Stride   int
	ArenaCap int

	// Safe validates every line and fails the run on the first bad one.
	Safe bool

	Timings *Timings
	Events  *[]TEvent
}

type worker struct {
	id     int
	arena  *Arena
	table  *Table
	events []TEvent
}

// Run aggregates data with one worker per CPU and returns the rows sorted by
// key. Either every line contributes or an error is returned.
func Run(ctx context.Context, data []byte, opts Options) ([]Row, error) {
	nWorkers := opts.Workers
	if nWorkers <= 0 {
		nWorkers = runtime.NumCPU()
	}

	tAggregate := time.Now()
	dispenser := NewDispenser(data, opts.Stride)
	workers := make([]*worker, nWorkers)
	eg, ectx := errgroup.WithContext(ctx)
	for i := range nWorkers {
		arena := NewArena(opts.ArenaCap)
		w := &worker{id: i, arena: arena, table: NewTable(arena)}
		workers[i] = w
		eg.Go(func() error {
			return w.loop(ectx, data, dispenser, opts)
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	tMerge := time.Now()
	output := workers[0].table
	for _, w := range workers[1:] {
		output.Merge(w.table)
	}
	since_tMerge := time.Since(tMerge)

	tSort := time.Now()
	rows := output.Sorted()

	if t := opts.Timings; t != nil {
		t.Workers = nWorkers
		t.Since_Aggregate = tMerge.Sub(tAggregate)
		t.Since_Merge = since_tMerge
		t.Since_Sort = time.Since(tSort)
	}
	if opts.Events != nil {
		for _, w := range workers {
			*opts.Events = append(*opts.Events, w.events...)
		}
	}

	return rows, nil
}

func (w *worker) loop(ctx context.Context, data []byte, dispenser *Dispenser, opts Options) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		start, end, ok := dispenser.Claim()
		if !ok {
			return nil
		}

		tClaim := time.Now()
		if opts.Events != nil {
			w.events = append(w.events, TEvent{Worker: w.id, Text: "claim", Time: tClaim})
		}

		var err error
		if opts.Safe {
			err = w.parseChunkSafe(data[start:end])
		} else {
			w.parseChunk(data[start:end])
		}

		if t := opts.Timings; t != nil {
			t.Claims.Add(1)
			t.Since_Parse.Since(tClaim)
		}
		if err != nil {
			return fmt.Errorf("chunk [%d, %d): %w", start, end, err)
		}
	}
}

func (w *worker) parseChunk(block []byte) {
	var key []byte
	var val int32
	for len(block) > 0 {
		m := bytes.IndexByte(block, '\n')
		line := block
		if m >= 0 {
			line, block = block[:m], block[m+1:]
		} else {
			block = nil
		}
		if len(line) == 0 {
			continue
		}

		key, val = SplitParse(line)
		w.table.Observe(key, val)
	}
}

func (w *worker) parseChunkSafe(block []byte) error {
	for len(block) > 0 {
		m := bytes.IndexByte(block, '\n')
		line := block
		if m >= 0 {
			line, block = block[:m], block[m+1:]
		} else {
			block = nil
		}
		if len(line) == 0 {
			continue
		}

		key, val, err := SplitParseSafe(line)
		if err != nil {
			return err
		}
		w.table.Observe(key, val)
	}
	return nil
}
