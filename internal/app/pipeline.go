package app

import (
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/input"
	"github.com/ayusman/mudra/internal/overlay"
)

// runPipeline is the main capture loop. It manages the state transitions
// between idle and active modes based on motion detection.
//
// Pipeline logic:
// 1. Start in idle mode (IdleFPS=5)
// 2. On motion detected, switch to active mode (ActiveFPS=30)
// 3. Mirror the frame so on-screen movement matches hand movement
// 4. Run hand detection and feed the first hand to the controller
// 5. Apply the controller output through the input injector
// 6. Publish telemetry and the annotated frame
// 7. After 2s no motion, switch back to idle mode
func (a *App) runPipeline() {
	// Track whether we're in active mode
	activeMode := false

	// Track the last motion detection time
	lastMotionTime := time.Now()

	// Frame interval based on current FPS
	frameInterval := time.Second / time.Duration(IdleFPS)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			// Skip processing if pointer control is disabled
			if !a.IsEnabled() {
				continue
			}

			// Read a frame from the camera
			frame, err := a.Camera().ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			// Mirror the frame. The camera faces the user, so without the
			// flip a hand moving right would drive the cursor left.
			gocv.Flip(*frame, frame, 1)

			// Step 1: Motion detection
			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				// Switch to active mode if not already
				if !activeMode {
					activeMode = true
					a.Camera().SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				// Check if we should switch back to idle mode
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.Camera().SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to idle mode")
				}
			}

			// Skip further processing if not in active mode or no detector
			if !activeMode || a.Detector() == nil {
				frame.Close()
				continue
			}

			// Step 2: Hand detection
			hands, err := a.Detector().Detect(frame)
			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				frame.Close()
				continue
			}

			a.processFrame(frame, hands)
			frame.Close()
		}
	}
}

// ProcessFrame feeds one frame's detection results through the controller
// outside the capture loop. The pipeline uses processFrame internally; this
// entry point exists for harnesses that drive frames by hand.
func (a *App) ProcessFrame(frame *gocv.Mat, hands []detector.HandLandmarks) {
	a.processFrame(frame, hands)
}

// processFrame feeds the detected hand to the controller, applies the
// resulting pointer actions and publishes telemetry and the annotated frame.
func (a *App) processFrame(frame *gocv.Mat, hands []detector.HandLandmarks) {
	fps := a.fpsCounter.Tick()

	var hand *detector.HandLandmarks
	mode := control.ModeIdle
	var output control.Output

	if len(hands) > 0 {
		hand = &hands[0]

		out, err := a.controller.Update(hand)
		if err != nil {
			log.Printf("Error processing landmarks: %v", err)
			hand = nil
		} else {
			output = out
			mode = a.controller.Mode()
			a.applyOutput(output)
		}
	}

	a.mu.Lock()
	a.frames++
	if output.LeftClick {
		a.leftClicks++
	}
	if output.RightClick {
		a.rightClicks++
	}
	if output.ScrollDelta != 0 {
		a.scrollEvents++
	}
	a.mu.Unlock()

	if a.config.Telemetry != nil {
		a.config.Telemetry(output, mode, fps)
	}

	if a.config.Frames != nil {
		overlay.DrawInteractionZone(frame, a.config.Control.Margin)
		if hand != nil {
			overlay.DrawHand(frame, hand)
		}
		overlay.DrawLegend(frame)
		overlay.DrawStatus(frame, fps, string(mode))

		buf, err := gocv.IMEncode(".jpg", *frame)
		if err != nil {
			log.Printf("Error encoding frame: %v", err)
			return
		}
		a.config.Frames.Publish(buf.GetBytes())
		buf.Close()
	}
}

// applyOutput drives the OS pointer from one controller update. Injection
// failures are logged and never stop the pipeline.
func (a *App) applyOutput(output control.Output) {
	injector := a.config.Injector
	if injector == nil {
		return
	}

	if err := injector.MoveTo(output.CursorX, output.CursorY); err != nil {
		log.Printf("Error moving cursor: %v", err)
	}
	if output.LeftClick {
		if err := injector.Click(input.ButtonLeft); err != nil {
			log.Printf("Error injecting left click: %v", err)
		}
	}
	if output.RightClick {
		if err := injector.Click(input.ButtonRight); err != nil {
			log.Printf("Error injecting right click: %v", err)
		}
	}
	if output.ScrollDelta != 0 {
		if err := injector.Scroll(output.ScrollDelta); err != nil {
			log.Printf("Error injecting scroll: %v", err)
		}
	}
}
