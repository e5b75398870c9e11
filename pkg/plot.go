package pkg

import (
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// TEvent marks one moment in a run, such as a worker claiming a chunk.
type TEvent struct {
	Worker int
	Text   string
	Time   time.Time
}

// Plot draws one row per worker with a point per event and saves it as an
// image at path.
func Plot(events []TEvent, path string) error {
	if len(events) == 0 {
		return fmt.Errorf("plot '%s': no events", path)
	}

	pointsMap := make(map[int]plotter.XYs)
	var maxID float64

	startTime := events[0].Time
	for _, event := range events {
		if event.Time.Before(startTime) {
			startTime = event.Time
		}
	}
	for _, event := range events {
		id := float64(event.Worker + 1)
		maxID = max(maxID, id)
		pointsMap[event.Worker] = append(pointsMap[event.Worker], plotter.XY{
			X: float64(event.Time.Sub(startTime)) / float64(time.Millisecond),
			Y: id,
		})
	}

	p := plot.New()
	p.Title.Text = "Chunk claims"
	p.X.Label.Text = "ms"
	p.Y.Label.Text = "Worker"

	ticks := make([]plot.Tick, 0, len(pointsMap))
	for w := range pointsMap {
		ticks = append(ticks, plot.Tick{Value: float64(w + 1), Label: fmt.Sprint(w)})
	}
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	colors := plotutil.SoftColors
	for w, points := range pointsMap {
		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return fmt.Errorf("plot worker %d: %w", w, err)
		}
		scatter.GlyphStyle.Color = colors[w%len(colors)]
		p.Add(scatter)
	}

	p.Y.Min = 0.5
	p.Y.Max = maxID + 0.5

	if err := p.Save(32*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("plot save '%s': %w", path, err)
	}
	return nil
}
