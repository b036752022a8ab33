package enginebiten

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 48000

// ebiten allows only one audio context per process
var audioContext = sync.OnceValue(func() *eaudio.Context {
	return eaudio.NewContext(sampleRate)
})

type audioFormat uint8

const (
	formatUnknown audioFormat = iota
	formatVorbis
	formatMp3
	formatWav
)

func (f audioFormat) String() string {
	switch f {
	case formatVorbis:
		return "vorbis"
	case formatMp3:
		return "mp3"
	case formatWav:
		return "wav"
	default:
		return "unknown"
	}
}

func detectFormat(header []byte) audioFormat {
	switch {
	case len(header) >= 4 && bytes.Equal([]byte("OggS"), header[:4]):
		return formatVorbis

	case len(header) >= 3 && bytes.Equal([]byte("ID3"), header[:3]):
		return formatMp3

	case len(header) >= 2 && header[0] == 0xff && (header[1] == 0xfb || header[1] == 0xf3 || header[1] == 0xf2):
		return formatMp3

	case len(header) >= 12 && bytes.Equal([]byte("RIFF"), header[0:4]) && bytes.Equal([]byte("WAVE"), header[8:12]):
		return formatWav

	default:
		return formatUnknown
	}
}

func openStream(buf []byte) (io.Reader, error) {
	fp := bytes.NewReader(buf)

	switch detectFormat(buf) {
	case formatVorbis:
		return vorbis.DecodeF32(fp)
	case formatMp3:
		return mp3.DecodeF32(fp)
	case formatWav:
		return wav.DecodeF32(fp)
	default:
		return nil, errors.New("failed to detect audio file format")
	}
}

// audioPlayer plays loaded sounds. Each call starts a new player, sounds may overlap.
type audioPlayer struct {
	context *eaudio.Context
	assets  *Assets

	// players are kept until they finished playing
	playing []*eaudio.Player
}

func newAudioPlayer(context *eaudio.Context, assets *Assets) *audioPlayer {
	return &audioPlayer{context: context, assets: assets}
}

func (p *audioPlayer) Play(name string) {
	p.playing = slices.DeleteFunc(p.playing, func(player *eaudio.Player) bool {
		if player.IsPlaying() {
			return false
		}

		_ = player.Close()
		return true
	})

	buf, ok := p.assets.Sound(name)
	if !ok {
		slog.Warn("Sound not loaded", slog.String("path", name))
		return
	}

	player, err := p.newPlayer(buf)
	if err != nil {
		slog.Warn("Failed to play sound",
			slog.String("path", name),
			slog.String("err", err.Error()))
		return
	}

	player.Play()
	p.playing = append(p.playing, player)
}

func (p *audioPlayer) newPlayer(buf []byte) (*eaudio.Player, error) {
	stream, err := openStream(buf)
	if err != nil {
		return nil, err
	}

	player, err := p.context.NewPlayerF32(stream)
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	return player, nil
}
