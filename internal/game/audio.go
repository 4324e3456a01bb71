package game

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/pkg/errors"
)

const sampleRate = 44100

type SoundData struct {
	raw []byte
}

type AudioManager struct {
	ctx   *audio.Context
	chomp *SoundData
	win   *SoundData
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

// getAudioContext returns the process-wide context, or nil when sound is off.
func getAudioContext(enabled bool) *audio.Context {
	if !enabled {
		return nil
	}
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

// NewAudioManager loads chomp.wav and win.wav from soundsDir, synthesizing a
// beep for any file that is missing.
func NewAudioManager(soundsDir string, enabled bool) *AudioManager {
	if soundsDir == "" {
		soundsDir = "assets/sounds"
	}
	am := &AudioManager{ctx: getAudioContext(enabled)}
	am.chomp = loadOrSynth(soundsDir, "chomp.wav", 60, 880)
	am.win = loadOrSynth(soundsDir, "win.wav", 400, 523)
	return am
}

func loadOrSynth(dir, file string, durationMs int, freq float64) *SoundData {
	if sd, _ := loadSoundData(dir, file); sd != nil {
		return sd
	}
	return &SoundData{raw: synthBeepWAV(sampleRate, durationMs, freq)}
}

func loadSoundData(dir, file string) (*SoundData, error) {
	path := filepath.Join(dir, file)
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read sound %s", file)
	}
	return &SoundData{raw: b}, nil
}

func (am *AudioManager) play(sd *SoundData) {
	if am == nil || am.ctx == nil || sd == nil || len(sd.raw) == 0 {
		return
	}
	// Decode from bytes each time to allow overlapping plays
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(sd.raw))
	if err != nil {
		log.Printf("decode sound: %v", err)
		return
	}
	p, err := am.ctx.NewPlayer(stream)
	if err != nil {
		log.Printf("audio player: %v", err)
		return
	}
	_ = p.Rewind()
	p.Play()
}

func (am *AudioManager) PlayChomp() { am.play(am.chomp) }
func (am *AudioManager) PlayWin()   { am.play(am.win) }

const wavHeaderSize = 44

// synthBeepWAV encodes a quarter-volume sine tone as 16-bit mono PCM WAV.
func synthBeepWAV(rate, durationMs int, freq float64) []byte {
	samples := rate * durationMs / 1000
	dataSize := samples * 2
	buf := make([]byte, wavHeaderSize+dataSize)
	le := binary.LittleEndian

	copy(buf[0:], "RIFF")
	le.PutUint32(buf[4:], uint32(len(buf)-8))
	copy(buf[8:], "WAVE")

	copy(buf[12:], "fmt ")
	le.PutUint32(buf[16:], 16)
	le.PutUint16(buf[20:], 1) // PCM
	le.PutUint16(buf[22:], 1) // mono
	le.PutUint32(buf[24:], uint32(rate))
	le.PutUint32(buf[28:], uint32(rate*2))
	le.PutUint16(buf[32:], 2)
	le.PutUint16(buf[34:], 16)

	copy(buf[36:], "data")
	le.PutUint32(buf[40:], uint32(dataSize))

	step := 2 * math.Pi * freq / float64(rate)
	for i := 0; i < samples; i++ {
		v := int16(math.Sin(step*float64(i)) * math.MaxInt16 / 4)
		le.PutUint16(buf[wavHeaderSize+i*2:], uint16(v))
	}
	return buf
}
