package narration

import (
	"fmt"
	"io"
	"time"

	"github.com/hajimehoshi/go-mp3"
)

// PCM is interleaved signed 16-bit little-endian audio
type PCM struct {
	Data       []byte
	SampleRate int
	Channels   int
}

// bytesPerFrame returns the size of one sample across all channels
func (p PCM) bytesPerFrame() int {
	return 2 * p.Channels
}

// Duration returns the playing time of the buffer
func (p PCM) Duration() time.Duration {
	if p.SampleRate <= 0 || p.Channels <= 0 {
		return 0
	}
	frames := len(p.Data) / p.bytesPerFrame()
	return time.Duration(frames) * time.Second / time.Duration(p.SampleRate)
}

// mp3Channels is fixed by the decoder, which always emits stereo
const mp3Channels = 2

// DecodeMP3 decodes a whole MP3 stream into memory
func DecodeMP3(r io.Reader) (PCM, error) {
	d, err := mp3.NewDecoder(r)
	if err != nil {
		return PCM{}, fmt.Errorf("failed to open mp3 stream: %w", err)
	}

	data, err := io.ReadAll(d)
	if err != nil {
		return PCM{}, fmt.Errorf("failed to decode mp3 stream: %w", err)
	}

	return PCM{
		Data:       data,
		SampleRate: d.SampleRate(),
		Channels:   mp3Channels,
	}, nil
}
