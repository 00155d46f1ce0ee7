package core

import "testing"

type renderedFrame struct {
	hours, minutes, seconds, milliseconds uint32
	running                               bool
}

type renderedLabel struct {
	pin     ButtonPin
	label   string
	pressed bool
}

// recordingRenderer captures every draw call for inspection.
type recordingRenderer struct {
	frames []renderedFrame
	labels []renderedLabel
}

func (r *recordingRenderer) DrawFrame(hours, minutes, seconds, milliseconds uint32, running bool) {
	r.frames = append(r.frames, renderedFrame{hours, minutes, seconds, milliseconds, running})
}

func (r *recordingRenderer) DrawButtonLabel(pin ButtonPin, label string, pressed bool) {
	r.labels = append(r.labels, renderedLabel{pin, label, pressed})
}

var testVisuals = []ButtonVisual{
	{Label: "PLAY"},
	{Label: "RESET"},
}

func TestRenderFirstUpdateAlwaysDraws(t *testing.T) {
	SetNow(0)
	r := &recordingRenderer{}
	rs := NewRenderScheduler(r)

	if !rs.Update(Frame{}, testVisuals) {
		t.Fatal("first Update did not draw")
	}
	if len(r.frames) != 1 {
		t.Fatalf("DrawFrame called %d times, want 1", len(r.frames))
	}
	if len(r.labels) != 2 {
		t.Fatalf("DrawButtonLabel called %d times, want 2", len(r.labels))
	}
	if r.labels[0] != (renderedLabel{PinPlayPause, "PLAY", false}) {
		t.Errorf("unexpected first label draw %+v", r.labels[0])
	}
	if r.labels[1] != (renderedLabel{PinReset, "RESET", false}) {
		t.Errorf("unexpected second label draw %+v", r.labels[1])
	}
}

func TestRenderUnchangedFrameWaitsForCadence(t *testing.T) {
	SetNow(0)
	r := &recordingRenderer{}
	rs := NewRenderScheduler(r)

	f := Frame{Seconds: 1, Milliseconds: 1000}
	rs.Update(f, testVisuals)

	// Many iterations inside the refresh window: no redraw.
	for _, ms := range []uint32{10, 20, 30, 49} {
		SetNow(ms)
		if rs.Update(f, testVisuals) {
			t.Fatalf("redraw at %dms with unchanged frame inside cadence window", ms)
		}
	}

	SetNow(50)
	if !rs.Update(f, testVisuals) {
		t.Error("no redraw once the refresh cadence elapsed")
	}

	// Cadence sampler was rebaselined by the redraw.
	SetNow(99)
	if rs.Update(f, testVisuals) {
		t.Error("redraw before a full cadence interval after the last draw")
	}
}

func TestRenderFieldChangeDrawsImmediately(t *testing.T) {
	SetNow(0)
	r := &recordingRenderer{}
	rs := NewRenderScheduler(r)

	f := Frame{}
	rs.Update(f, testVisuals)

	SetNow(5) // well inside the cadence window
	f.Milliseconds = 5
	if !rs.Update(f, testVisuals) {
		t.Error("millisecond change did not force a redraw")
	}

	SetNow(10)
	f.Running = true
	if !rs.Update(f, testVisuals) {
		t.Error("running flag change did not force a redraw")
	}

	got := r.frames[len(r.frames)-1]
	want := renderedFrame{0, 0, 0, 5, true}
	if got != want {
		t.Errorf("last DrawFrame %+v, want %+v", got, want)
	}
}

func TestRenderSnapshotTracksLastDraw(t *testing.T) {
	SetNow(0)
	r := &recordingRenderer{}
	rs := NewRenderScheduler(r)

	rs.Update(Frame{Seconds: 1}, testVisuals)
	rs.Update(Frame{Seconds: 2}, testVisuals)

	// Same frame again: snapshot must match, so only cadence applies.
	SetNow(8)
	if rs.Update(Frame{Seconds: 2}, testVisuals) {
		t.Error("redraw for a frame identical to the snapshot")
	}
	if len(r.frames) != 2 {
		t.Errorf("DrawFrame called %d times, want 2", len(r.frames))
	}
}
