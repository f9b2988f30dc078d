package server

import (
	"fmt"
	"net/http"
	"time"
)

// StreamHandler serves MJPEG frames from the frame buffer.
type StreamHandler struct {
	frames *FrameBuffer
}

// NewStreamHandler creates a new StreamHandler reading from the given buffer.
func NewStreamHandler(frames *FrameBuffer) *StreamHandler {
	return &StreamHandler{frames: frames}
}

// ServeHTTP streams MJPEG frames to connected clients.
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	var lastSeq uint64

	for {
		select {
		case <-r.Context().Done():
			return
		default:
		}

		data, seq := h.frames.Latest()
		if seq == lastSeq || len(data) == 0 {
			time.Sleep(33 * time.Millisecond)
			continue
		}
		lastSeq = seq

		fmt.Fprintf(w, "--frame\r\n")
		fmt.Fprintf(w, "Content-Type: image/jpeg\r\n")
		fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(data))
		if _, err := w.Write(data); err != nil {
			return
		}
		fmt.Fprintf(w, "\r\n")

		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
	}
}
