package main

import (
	"flag"
	"log"
	"math"
	"time"

	"lifesim/config"
	"lifesim/sim"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (or set "+config.EnvConfigPath+")")
	frames := flag.Int("frames", 3600, "Number of frames to simulate")
	dt := flag.Float64("dt", 1000.0/60, "Frame time in milliseconds")
	seed := flag.Int64("seed", 1, "Random seed, 0 seeds from the clock")
	fireEvery := flag.Int("fire-every", 30, "Fire at the nearest enemy every N frames, 0 to never fire")
	reportEvery := flag.Int("report-every", 600, "Log stats every N frames")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Seed = *seed

	session, err := sim.NewSession(cfg, nil)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	start := time.Now()
	for i := 1; i <= *frames; i++ {
		session.Step(autopilot(session, i, *fireEvery), *dt)

		if *reportEvery > 0 && i%*reportEvery == 0 {
			st := session.Stats()
			log.Printf("frame %d: world=%s entities=%d contacts=%d health=%.0f",
				st.Frames, st.World, st.Entities, st.Contacts, session.Player.Health)
		}
		if session.PlayerDead() {
			log.Printf("Player died at frame %d", i)
			break
		}
	}

	elapsed := time.Since(start)
	st := session.Stats()
	log.Printf("Simulated %d frames in %v (%.0f frames/s)", st.Frames, elapsed, float64(st.Frames)/elapsed.Seconds())
}

// autopilot circles the player and shoots at the nearest enemy
func autopilot(s *sim.Session, frame, fireEvery int) sim.Input {
	phase := float64(frame) / 120
	in := sim.Input{
		Right: math.Cos(phase) > 0.3,
		Left:  math.Cos(phase) < -0.3,
		Down:  math.Sin(phase) > 0.3,
		Up:    math.Sin(phase) < -0.3,
	}

	if fireEvery <= 0 || frame%fireEvery != 0 {
		return in
	}

	player := s.Player
	best := math.Inf(1)
	for _, e := range s.CurrentWorld().Entities() {
		if e.Kind != sim.KindAI || !sim.Opposes(player, e) {
			continue
		}
		if d := sim.Dist(player.Pos, e.Pos); d < best {
			best = d
			in.Mouse = e.Pos
			in.Fire = true
		}
	}
	return in
}
