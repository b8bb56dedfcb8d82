package wave

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	gowav "github.com/youpy/go-wav"
)

// readChunk is how many samples Decode pulls from the reader at a time.
const readChunk = 4096

// Decode reads a PCM WAV stream into a Waveform. 8-bit samples are
// widened to 16-bit; 16-bit samples pass through unchanged. Other bit
// depths fail with *FormatError.
func Decode(r io.Reader) (Waveform, error) {
	// gowav.NewReader needs an io.ReaderAt, which a plain io.Reader
	// can't provide without buffering the stream first.
	data, err := io.ReadAll(r)
	if err != nil {
		return Waveform{}, fmt.Errorf("read wav: %w", err)
	}
	reader := gowav.NewReader(bytes.NewReader(data))

	format, err := reader.Format()
	if err != nil {
		return Waveform{}, fmt.Errorf("read wav format: %w", err)
	}
	if format.AudioFormat != gowav.AudioFormatPCM {
		return Waveform{}, &FormatError{Detail: fmt.Sprintf("audio format %d, want PCM", format.AudioFormat)}
	}
	if format.BitsPerSample != 8 && format.BitsPerSample != 16 {
		return Waveform{}, &FormatError{Detail: fmt.Sprintf("%d bits per sample, want 8 or 16", format.BitsPerSample)}
	}
	channels := int(format.NumChannels)
	if channels < 1 || channels > 2 {
		return Waveform{}, &FormatError{Detail: fmt.Sprintf("%d channels, want 1 or 2", channels)}
	}

	out := Waveform{SampleRate: int(format.SampleRate), Channels: channels}

	for {
		samples, err := reader.ReadSamples(readChunk)
		for _, s := range samples {
			for c := 0; c < channels; c++ {
				v := s.Values[c]
				if format.BitsPerSample == 8 {
					// 8-bit WAV is unsigned, centered on 128
					v = (v - 128) << 8
				}
				out.Samples = append(out.Samples, int16(v))
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Waveform{}, fmt.Errorf("read wav samples: %w", err)
		}
	}

	return out, nil
}

// LoadFile reads a WAV file from disk into a Waveform.
func LoadFile(path string) (Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return Waveform{}, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	w, err := Decode(f)
	if err != nil {
		return Waveform{}, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// Encode creates a complete WAV file from a waveform.
// This is a pure function: Waveform → WAV file bytes (16-bit PCM).
func Encode(w Waveform) []byte {
	dataSize := uint32(len(w.Samples) * 2)
	fileSize := 36 + dataSize // Total - 8 bytes for RIFF header

	// WAV header is 44 bytes
	header := make([]byte, 44)

	// RIFF header
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], fileSize)
	copy(header[8:12], "WAVE")

	// fmt subchunk
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // Subchunk1Size (16 for PCM)
	binary.LittleEndian.PutUint16(header[20:22], 1)  // AudioFormat (1 = PCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(w.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(w.SampleRate))

	byteRate := w.SampleRate * w.Channels * 2
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))

	blockAlign := w.Channels * 2
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], 16) // bits per sample

	// data subchunk
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	out := make([]byte, 44+len(w.Samples)*2)
	copy(out[0:44], header)
	for i, s := range w.Samples {
		binary.LittleEndian.PutUint16(out[44+2*i:], uint16(s))
	}
	return out
}
