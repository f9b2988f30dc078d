// Package app provides the main application logic for the mudra virtual
// mouse: it runs the capture pipeline and turns detected hand landmarks into
// pointer actions.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/input"
	"github.com/ayusman/mudra/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active pointer control.
	ActiveFPS = 30
	// IdleTimeoutMs is the time in milliseconds to wait before switching back to idle mode.
	IdleTimeoutMs = 2000
)

// FrameSink receives annotated JPEG frames from the pipeline.
type FrameSink interface {
	Publish(jpeg []byte)
}

// TelemetryFunc receives one controller update per processed frame.
type TelemetryFunc func(output control.Output, mode control.Mode, fps float64)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	ProfileID    string
	CameraID     int
	MotionThresh float64
	Control      control.Config
	Injector     input.Injector
	Frames       FrameSink
	Telemetry    TelemetryFunc
}

// App orchestrates capture, hand detection, the pointer controller and
// input injection.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	controller *control.Controller
	fpsCounter *FPSCounter
	enabled    bool
	mu         sync.RWMutex
	stopCh     chan struct{}

	sessionID    string
	frames       int64
	leftClicks   int64
	rightClicks  int64
	scrollEvents int64
}

// New creates a new App instance with the given configuration.
func New(config Config) (*App, error) {
	controller, err := control.New(config.Control)
	if err != nil {
		return nil, err
	}

	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	a := &App{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		motion:     capture.NewMotionDetector(motionThreshold),
		controller: controller,
		fpsCounter: NewFPSCounter(),
		enabled:    false,
		stopCh:     nil,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a, nil
}

// SetEnabled enables or disables pointer control.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether pointer control is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera sets the camera implementation to use.
// Only valid before Start.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// Controller returns the pointer controller.
func (a *App) Controller() *control.Controller {
	return a.controller
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// Start begins the capture pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	// Open the camera
	if err := a.camera.Open(); err != nil {
		return err
	}

	// Set initial FPS to idle mode
	a.camera.SetFPS(IdleFPS)

	a.frames = 0
	a.leftClicks = 0
	a.rightClicks = 0
	a.scrollEvents = 0

	if a.config.Store != nil {
		a.sessionID = uuid.New().String()
		sess := &store.Session{
			ID:        a.sessionID,
			ProfileID: a.config.ProfileID,
			StartedAt: time.Now(),
		}
		if err := a.config.Store.Sessions().Create(sess); err != nil {
			log.Printf("Error creating session record: %v", err)
			a.sessionID = ""
		}
	}

	// Create stop channel and start the pipeline
	a.stopCh = make(chan struct{})
	go a.runPipeline()

	log.Println("Pointer pipeline started")
	return nil
}

// Stop halts the pipeline, persists session statistics and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Signal the pipeline to stop
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if a.config.Store != nil && a.sessionID != "" {
		err := a.config.Store.Sessions().Finish(
			a.sessionID, a.frames, a.leftClicks, a.rightClicks, a.scrollEvents)
		if err != nil {
			log.Printf("Error finishing session record: %v", err)
		}
		a.sessionID = ""
	}

	// Close the camera
	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	// Close motion detector
	a.motion.Close()

	// Close the hand detector if set
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Pointer pipeline stopped")
}

// Stats returns the counters accumulated since Start.
func (a *App) Stats() (frames, leftClicks, rightClicks, scrollEvents int64) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.frames, a.leftClicks, a.rightClicks, a.scrollEvents
}
