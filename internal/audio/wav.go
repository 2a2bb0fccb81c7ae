package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"nuros/internal/services"
)

const (
	wavFormatPCM = 1
	// maxWAVChannels bounds the layouts the downmix supports.
	maxWAVChannels = 2
)

var errNotRIFF = errors.New("not a RIFF/WAVE stream")

// DecodeWAV reads a PCM WAV stream into a mono Clip. Stereo input is reduced
// by channel averaging; 8-bit and 16-bit sample widths are supported.
func DecodeWAV(r io.Reader) (*Clip, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "audio", "decode wav", "read stream", err)
	}
	clip, err := decodeWAVBytes(raw)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "audio", "decode wav", err.Error(), nil)
	}
	return clip, nil
}

func decodeWAVBytes(raw []byte) (*Clip, error) {
	if len(raw) < 12 || string(raw[0:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		return nil, errNotRIFF
	}

	var (
		format        uint16
		channels      uint16
		sampleRate    uint32
		bitsPerSample uint16
		data          []byte
		haveFmt       bool
	)

	// Chunk walk. Chunks are word-aligned; odd sizes carry a pad byte.
	offset := 12
	for offset+8 <= len(raw) {
		id := string(raw[offset : offset+4])
		size := int(binary.LittleEndian.Uint32(raw[offset+4 : offset+8]))
		body := raw[offset+8:]
		if size > len(body) {
			size = len(body)
		}
		body = body[:size]

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("fmt chunk too short (%d bytes)", size)
			}
			format = binary.LittleEndian.Uint16(body[0:2])
			channels = binary.LittleEndian.Uint16(body[2:4])
			sampleRate = binary.LittleEndian.Uint32(body[4:8])
			bitsPerSample = binary.LittleEndian.Uint16(body[14:16])
			haveFmt = true
		case "data":
			data = body
		}

		offset += 8 + size
		if size%2 == 1 {
			offset++
		}
	}

	if !haveFmt {
		return nil, errors.New("missing fmt chunk")
	}
	if data == nil {
		return nil, errors.New("missing data chunk")
	}
	if format != wavFormatPCM {
		return nil, fmt.Errorf("unsupported WAV format code %d (need PCM)", format)
	}
	if channels == 0 || channels > maxWAVChannels {
		return nil, fmt.Errorf("unsupported channel count %d", channels)
	}
	if sampleRate == 0 {
		return nil, errors.New("sample rate missing")
	}

	samples, err := decodePCM(data, int(channels), int(bitsPerSample))
	if err != nil {
		return nil, err
	}
	return NewClip(samples, int(sampleRate))
}

func decodePCM(data []byte, channels, bits int) ([]float64, error) {
	var bytesPer int
	switch bits {
	case 8:
		bytesPer = 1
	case 16:
		bytesPer = 2
	default:
		return nil, fmt.Errorf("unsupported sample width %d bits", bits)
	}

	frame := bytesPer * channels
	frames := len(data) / frame
	if frames == 0 {
		return nil, errors.New("empty data chunk")
	}

	samples := make([]float64, frames)
	reader := bytes.NewReader(data)
	for i := 0; i < frames; i++ {
		var sum float64
		for ch := 0; ch < channels; ch++ {
			switch bits {
			case 8:
				var v uint8
				if err := binary.Read(reader, binary.LittleEndian, &v); err != nil {
					return nil, err
				}
				// 8-bit WAV is unsigned, centered on 128.
				sum += (float64(v) - 128) / 128
			case 16:
				var v int16
				if err := binary.Read(reader, binary.LittleEndian, &v); err != nil {
					return nil, err
				}
				sum += float64(v) / 32768
			}
		}
		samples[i] = sum / float64(channels)
	}
	return samples, nil
}
