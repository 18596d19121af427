package render

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// Recorder writes board frames to a Motion-JPEG AVI file.
type Recorder struct {
	aw      mjpeg.AviWriter
	framer  *Framer
	buf     bytes.Buffer
	quality int
	frames  int
	closed  bool
}

// NewRecorder creates path sized for boards of w×h cells at the given scale.
func NewRecorder(path string, w, h, scale, fps int, pal Palette) (*Recorder, error) {
	framer := NewFramer(pal, scale)
	aw, err := mjpeg.New(path, int32(w*framer.Scale), int32(h*framer.Scale), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("recorder: %w", err)
	}
	return &Recorder{aw: aw, framer: framer, quality: 90}, nil
}

// AddFrame encodes the current state of src as one video frame.
func (r *Recorder) AddFrame(src ActiveSource) error {
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, r.framer.Frame(src), &jpeg.Options{Quality: r.quality}); err != nil {
		return fmt.Errorf("recorder: encode frame %d: %w", r.frames, err)
	}
	if err := r.aw.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("recorder: add frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames written so far.
func (r *Recorder) Frames() int { return r.frames }

// Close finalizes the AVI index. Later calls do nothing.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.aw.Close()
}
