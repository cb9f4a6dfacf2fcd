package narration

import (
	"fmt"
	"sync"

	"github.com/gen2brain/malgo"
)

// DeviceSink plays PCM through the default output device. The device is
// (re)initialized whenever a clip arrives with a different sample rate or
// channel count.
type DeviceSink struct {
	audioContext *malgo.AllocatedContext
	device       *malgo.Device
	sampleRate   int
	channels     int

	leftoverAudio []byte
	onDrained     func()

	mu      sync.Mutex
	audioMu sync.Mutex
}

// NewDeviceSink initializes the audio backend. No device is opened until the
// first clip is played.
func NewDeviceSink() (*DeviceSink, error) {
	audioCtx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		logger.Debug("miniaudio", "message", message)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize audio context: %w", err)
	}
	return &DeviceSink{audioContext: audioCtx}, nil
}

// Play replaces the queued audio with pcm and starts the device
func (s *DeviceSink) Play(pcm PCM, done func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.audioContext == nil {
		return fmt.Errorf("audio context closed")
	}
	if err := s.ensureDeviceLocked(pcm.SampleRate, pcm.Channels); err != nil {
		return err
	}

	s.audioMu.Lock()
	s.leftoverAudio = pcm.Data
	s.onDrained = done
	s.audioMu.Unlock()

	if !s.device.IsStarted() {
		if err := s.device.Start(); err != nil {
			s.clearBuffer()
			return fmt.Errorf("failed to start playback device: %w", err)
		}
	}
	return nil
}

// Stop discards queued audio. The device keeps running and outputs silence.
func (s *DeviceSink) Stop() {
	s.clearBuffer()
}

// Close releases the device and the audio context
func (s *DeviceSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearBuffer()
	if s.device != nil {
		s.device.Uninit()
		s.device = nil
	}
	if s.audioContext == nil {
		return nil
	}

	err := s.audioContext.Uninit()
	s.audioContext.Free()
	s.audioContext = nil
	if err != nil {
		return fmt.Errorf("failed to uninitialize audio context: %w", err)
	}
	return nil
}

func (s *DeviceSink) ensureDeviceLocked(sampleRate, channels int) error {
	if s.device != nil && s.sampleRate == sampleRate && s.channels == channels {
		return nil
	}
	if sampleRate <= 0 || channels <= 0 {
		return fmt.Errorf("invalid audio format: %d Hz, %d channels", sampleRate, channels)
	}

	if s.device != nil {
		s.device.Uninit()
		s.device = nil
	}

	format := malgo.FormatS16
	bytesPerFrame := malgo.SampleSizeInBytes(format) * channels

	config := malgo.DefaultDeviceConfig(malgo.Playback)
	config.SampleRate = uint32(sampleRate)
	config.Playback.Format = format
	config.Playback.Channels = uint32(channels)
	config.Alsa.NoMMap = 1
	config.PeriodSizeInFrames = uint32(sampleRate) / 10 // ~100ms of audio
	config.Periods = 4

	device, err := malgo.InitDevice(
		s.audioContext.Context,
		config,
		malgo.DeviceCallbacks{Data: s.processAudio(bytesPerFrame)},
	)
	if err != nil {
		return fmt.Errorf("failed to initialize playback device: %w", err)
	}

	s.device = device
	s.sampleRate = sampleRate
	s.channels = channels
	logger.Debug("playback device ready", "sample_rate", sampleRate, "channels", channels)
	return nil
}

func (s *DeviceSink) clearBuffer() {
	s.audioMu.Lock()
	defer s.audioMu.Unlock()
	s.leftoverAudio = nil
	s.onDrained = nil
}

func (s *DeviceSink) processAudio(bytesPerFrame int) malgo.DataProc {
	return func(pOutput, _ []byte, frameCount uint32) {
		need := min(int(frameCount)*bytesPerFrame, len(pOutput))

		s.audioMu.Lock()
		n := copy(pOutput[:need], s.leftoverAudio)
		s.leftoverAudio = s.leftoverAudio[n:]
		clear(pOutput[n:need])

		var drained func()
		if len(s.leftoverAudio) == 0 && s.onDrained != nil {
			drained = s.onDrained
			s.onDrained = nil
		}
		s.audioMu.Unlock()

		if drained != nil {
			go drained()
		}
	}
}
