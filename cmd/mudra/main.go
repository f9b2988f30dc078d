package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/input"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

func main() {
	cameraID := flag.Int("camera", 0, "camera device ID")
	addr := flag.String("addr", ":8080", "control panel listen address")
	profileName := flag.String("profile", "default", "tuning profile name")
	noTray := flag.Bool("no-tray", false, "run without the system tray (headless)")
	flag.Parse()

	fmt.Println("Mudra - Hand Gesture Virtual Mouse")

	// Initialize the store
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dbDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dbDir, "mudra.db")
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	profile, err := loadProfile(st, *profileName)
	if err != nil {
		log.Fatalf("Failed to load profile %q: %v", *profileName, err)
	}
	if err := st.Settings().Set("last_profile", profile.Name); err != nil {
		log.Printf("Failed to record last profile: %v", err)
	}

	screenWidth, screenHeight, err := input.ScreenSize()
	if err != nil {
		screenWidth, screenHeight = 1920, 1080
		log.Printf("Could not query screen size (%v), assuming %dx%d", err, screenWidth, screenHeight)
	}

	controlCfg := control.Config{
		CameraWidth:         capture.DefaultWidth,
		CameraHeight:        capture.DefaultHeight,
		ScreenWidth:         screenWidth,
		ScreenHeight:        screenHeight,
		Smoothing:           profile.Smoothing,
		Margin:              profile.Margin,
		LeftPinchThreshold:  profile.LeftThreshold,
		RightPinchThreshold: profile.RightThreshold,
		ScrollSensitivity:   profile.ScrollSensitivity,
		InvertScroll:        profile.InvertScroll,
	}

	var injector input.Injector
	if inj, err := input.NewInjector(); err == nil {
		injector = inj
	} else {
		log.Printf("Pointer injection unavailable (%v); running in preview mode", err)
	}

	frames := server.NewFrameBuffer()
	telemetry := server.NewTelemetryHandler()

	application, err := app.New(app.Config{
		Store:     st,
		ProfileID: profile.ID,
		CameraID:  *cameraID,
		Control:   controlCfg,
		Injector:  injector,
		Frames:    frames,
		Telemetry: telemetry.Publish,
	})
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	srv := server.New(server.Config{
		StaticDir: findWebDir(),
		Store:     st,
		Frames:    frames,
		Telemetry: telemetry,
	})

	go func() {
		fmt.Printf("Control panel on %s\n", *addr)
		if err := srv.ListenAndServe(*addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if err := application.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}
	application.SetEnabled(true)

	if *noTray {
		// Block forever; the pipeline and server run until the process is killed.
		select {}
	}

	t := tray.New()
	t.OnToggle(func(enabled bool) {
		application.SetEnabled(enabled)
	})
	t.OnSettings(func() {
		log.Printf("Control panel: http://localhost%s", *addr)
	})
	t.OnQuit(func() {
		application.Stop()
	})

	// Blocks until Quit is selected from the tray menu.
	t.Run()
}

// loadProfile fetches the named tuning profile, creating it with stock
// defaults on first use.
func loadProfile(st *store.Store, name string) (*store.Profile, error) {
	profile, err := st.Profiles().GetByName(name)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	profile = store.DefaultProfile(uuid.New().String(), name)
	if err := st.Profiles().Create(profile); err != nil {
		return nil, err
	}
	log.Printf("Created profile %q with default tuning", name)
	return profile, nil
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.mudra/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".mudra", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
