package telemetry

import "gonum.org/v1/gonum/stat"

// EMAFactor is the smoothing factor for the rolling FPS average.
const EMAFactor = 0.9

// Row is one tick's inspection output, flattened for CSV export.
type Row struct {
	Tick            int     `csv:"tick"`
	FPS             float64 `csv:"fps"`
	FPSEMA          float64 `csv:"fps_ema"`
	FPSWindowMean   float64 `csv:"fps_window_mean"`
	FPSWindowStdDev float64 `csv:"fps_window_stddev"`
	ParticleCount   int     `csv:"particles"`
	ConstraintCount int     `csv:"constraints"`
	SampleCount     int     `csv:"samples"`
	CurveCount      int     `csv:"curves"`
}

// Recorder tracks per-tick FPS and entity counts for inspection. It owns no output destination by
// itself; CSVWriter.WriteRow appends its Rows to an io.Writer, tracking the
// header-written-once state per writer.
type Recorder struct {
	windowSize int
	window     []float64
	writeIndex int
	filled     int

	fpsEMA float64
	tick   int
}

// NewRecorder creates a Recorder with a rolling FPS window of the given
// size (a size below 1 is treated as 1).
func NewRecorder(windowSize int) *Recorder {
	if windowSize < 1 {
		windowSize = 1
	}
	return &Recorder{
		windowSize: windowSize,
		window:     make([]float64, windowSize),
	}
}

// Sample records one tick's timing and entity counts, advancing the
// rolling FPS window and EMA, and returns the Row for that tick.
func (r *Recorder) Sample(dt float64, particles, constraints, samples, curves int) Row {
	r.tick++

	fps := 0.0
	if dt > 0 {
		fps = 1 / dt
	}

	if r.tick == 1 {
		r.fpsEMA = fps
	} else {
		r.fpsEMA = EMAFactor*r.fpsEMA + (1-EMAFactor)*fps
	}

	r.window[r.writeIndex] = fps
	r.writeIndex = (r.writeIndex + 1) % r.windowSize
	if r.filled < r.windowSize {
		r.filled++
	}

	mean, stddev := r.windowStats()

	return Row{
		Tick:            r.tick,
		FPS:             fps,
		FPSEMA:          r.fpsEMA,
		FPSWindowMean:   mean,
		FPSWindowStdDev: stddev,
		ParticleCount:   particles,
		ConstraintCount: constraints,
		SampleCount:     samples,
		CurveCount:      curves,
	}
}

// windowStats returns the mean and standard deviation of the rolling FPS
// window's filled samples, via gonum/stat.
func (r *Recorder) windowStats() (mean, stddev float64) {
	if r.filled == 0 {
		return 0, 0
	}
	samples := r.window[:r.filled]
	mean, stddev = stat.MeanStdDev(samples, nil)
	return mean, stddev
}

// FPSEMA returns the current exponential-moving-average FPS.
func (r *Recorder) FPSEMA() float64 { return r.fpsEMA }

// Tick returns the number of samples recorded so far.
func (r *Recorder) Tick() int { return r.tick }
