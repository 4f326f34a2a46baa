package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"time"
)

// Audio is a sound resource. Playback belongs to the platform layer; the
// asset only carries the intrinsic parameters read from the file header.
// Only PCM WAV files are understood.
type Audio struct {
	meta
	sampleRate uint32
	bitrate    uint32 // bits per second
	duration   time.Duration
}

// wav header layout, RIFF/WAVE with a PCM "fmt " chunk.
type wavHeader struct {
	RIFF          [4]byte
	FileSize      uint32
	WAVE          [4]byte
	Fmt           [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// LoadAudio reads a WAV file's header from disk.
func LoadAudio(key, path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot load audio %q: %w", key, err)
	}
	defer f.Close()

	var hdr wavHeader
	if err := binary.Read(f, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("assets: cannot read wav header of %q: %w", key, err)
	}
	if !bytes.Equal(hdr.RIFF[:], []byte("RIFF")) || !bytes.Equal(hdr.WAVE[:], []byte("WAVE")) {
		return nil, fmt.Errorf("assets: %q is not a wav file", path)
	}
	if hdr.ByteRate == 0 {
		return nil, fmt.Errorf("assets: %q has a zero byte rate", path)
	}

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("assets: cannot stat %q: %w", path, err)
	}

	// Approximate: data size is the file minus the canonical 44-byte header.
	dataSize := info.Size() - 44
	if dataSize < 0 {
		dataSize = 0
	}
	seconds := float64(dataSize) / float64(hdr.ByteRate)

	return &Audio{
		meta:       newMeta(key, KindAudio, path),
		sampleRate: hdr.SampleRate,
		bitrate:    hdr.ByteRate * 8,
		duration:   time.Duration(seconds * float64(time.Second)),
	}, nil
}

// SampleRate returns the sample rate in Hz.
func (a *Audio) SampleRate() uint32 {
	return a.sampleRate
}

// Bitrate returns the bitrate in bits per second.
func (a *Audio) Bitrate() uint32 {
	return a.bitrate
}

// Duration returns the approximate playing time.
func (a *Audio) Duration() time.Duration {
	return a.duration
}
