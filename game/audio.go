package game

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"lifesim/sim"
)

const (
	SampleRate = 44100

	// hearingRange is the distance at which effects fade out completely
	hearingRange = 1500.0

	musicGain = 0.1
	toneGain  = 0.3
)

// Tone is a synthesized sound effect
type Tone struct {
	Freq     float64 // Hz at the start
	Slide    float64 // Hz added by the end
	Duration float64 // milliseconds
	Noise    bool    // white noise instead of a sine
}

// GetTone returns the tone for an effect and variant
func GetTone(effect sim.Sound, variant int) Tone {
	switch effect {
	case sim.SoundHit:
		return Tone{Freq: 180 + 40*float64(variant), Slide: -80, Duration: 90, Noise: true}
	case sim.SoundOwPlayer:
		return Tone{Freq: 520, Slide: -260, Duration: 180}
	case sim.SoundShoot:
		return Tone{Freq: 900 + 120*float64(variant), Slide: -500, Duration: 70}
	case sim.SoundShootShotgun:
		return Tone{Freq: 300, Slide: -150, Duration: 160, Noise: true}
	case sim.SoundShootArrow:
		return Tone{Freq: 1400, Slide: -900, Duration: 110}
	case sim.SoundShootGrenade:
		return Tone{Freq: 250, Slide: 150, Duration: 140}
	case sim.SoundBoom:
		return Tone{Freq: 90, Slide: -60, Duration: 450, Noise: true}
	default:
		return GetTone(sim.SoundHit, 0)
	}
}

// musicTracks are looping note sequences, in Hz, keyed by track name
var musicTracks = map[string][]float64{
	"forest": {220, 261.63, 329.63, 261.63, 196, 246.94, 293.66, 246.94},
	"cave":   {110, 130.81, 98, 123.47},
}

const musicNoteLength = 400.0

// SpatialVolume attenuates an effect by its distance to the listener
func SpatialVolume(source, listener sim.Vec) float64 {
	return max(0, 1-sim.Dist(source, listener)/hearingRange)
}

// Synthesize renders a tone as 16-bit stereo little-endian PCM
func Synthesize(t Tone) []byte {
	n := int(SampleRate * t.Duration / 1000)
	buf := make([]byte, n*4)
	noise := rand.New(rand.NewSource(int64(t.Freq)))
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		var v float64
		if t.Noise {
			v = noise.Float64()*2 - 1
		} else {
			v = math.Sin(2 * math.Pi * phase)
		}
		phase += (t.Freq + t.Slide*progress) / SampleRate
		putSample(buf, i, v*(1-progress)*toneGain)
	}
	return buf
}

// synthesizeMelody renders one pass of a note sequence
func synthesizeMelody(notes []float64) []byte {
	perNote := int(SampleRate * musicNoteLength / 1000)
	buf := make([]byte, 0, perNote*len(notes)*4)
	for _, freq := range notes {
		note := make([]byte, perNote*4)
		for i := 0; i < perNote; i++ {
			env := math.Min(1, float64(perNote-i)/float64(perNote/4))
			putSample(note, i, math.Sin(2*math.Pi*freq*float64(i)/SampleRate)*env*toneGain)
		}
		buf = append(buf, note...)
	}
	return buf
}

func putSample(buf []byte, i int, v float64) {
	s := uint16(int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16))
	binary.LittleEndian.PutUint16(buf[i*4:], s)
	binary.LittleEndian.PutUint16(buf[i*4+2:], s)
}

type clipKey struct {
	effect  sim.Sound
	variant int
}

// SoundManager plays simulation sounds through an ebiten audio context
type SoundManager struct {
	ctx       *audio.Context
	settings  *SettingsManager
	clips     map[clipKey][]byte
	music     *audio.Player
	musicName string
}

// NewSoundManager creates a sound manager. A nil context makes it silent.
func NewSoundManager(ctx *audio.Context, settings *SettingsManager) *SoundManager {
	return &SoundManager{
		ctx:      ctx,
		settings: settings,
		clips:    make(map[clipKey][]byte),
	}
}

// Enabled reports whether sound is on
func (sm *SoundManager) Enabled() bool {
	return sm.ctx != nil && sm.settings.Settings().SoundEnabled
}

// PlaySound plays an effect attenuated by distance
func (sm *SoundManager) PlaySound(effect sim.Sound, variant int, source, listener sim.Vec) {
	if !sm.Enabled() {
		return
	}
	volume := SpatialVolume(source, listener) * sm.settings.Settings().SoundVolume
	if volume <= 0 {
		return
	}

	key := clipKey{effect, variant}
	data, ok := sm.clips[key]
	if !ok {
		data = Synthesize(GetTone(effect, variant))
		sm.clips[key] = data
	}

	player := sm.ctx.NewPlayerFromBytes(data)
	player.SetVolume(volume)
	player.Play()
}

// PlayMusic switches the background track. The name is remembered while sound is off.
func (sm *SoundManager) PlayMusic(name string) {
	sm.musicName = name
	sm.stopMusic()
	if !sm.Enabled() || name == "" {
		return
	}

	notes, ok := musicTracks[name]
	if !ok {
		log.Printf("[Audio] Warning: unknown music track %q", name)
		return
	}

	data := synthesizeMelody(notes)
	player, err := sm.ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data))))
	if err != nil {
		log.Printf("[Audio] Warning: failed to start music %q: %v", name, err)
		return
	}
	player.SetVolume(musicGain * sm.settings.Settings().MusicVolume)
	player.Play()
	sm.music = player
}

// SetEnabled turns all sound on or off and persists the choice
func (sm *SoundManager) SetEnabled(on bool) {
	sm.settings.Update(func(s *Settings) { s.SoundEnabled = on })
	sm.PlayMusic(sm.musicName)
}

func (sm *SoundManager) stopMusic() {
	if sm.music == nil {
		return
	}
	if err := sm.music.Close(); err != nil {
		log.Printf("[Audio] Warning: failed to stop music: %v", err)
	}
	sm.music = nil
}
