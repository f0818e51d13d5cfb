// Package audioinfo probes audio file headers for sample rate, length
// and channel layout, enough to derive file durations for annotation
// processing.
package audioinfo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/tphakala/flac"

	"github.com/dcasekit/dcase-go/internal/errors"
	"github.com/dcasekit/dcase-go/internal/logging"
)

var log = logging.Logger("audioinfo")

// Info describes an audio file header.
type Info struct {
	SampleRate   int
	TotalSamples int
	NumChannels  int
	BitDepth     int
}

// Duration returns the audio length in seconds.
func (i Info) Duration() float64 {
	if i.SampleRate == 0 {
		return 0
	}
	return float64(i.TotalSamples) / float64(i.SampleRate)
}

// Probe reads the audio header of a WAV or FLAC file.
func Probe(path string) (Info, error) {
	file, err := os.Open(path)
	if err != nil {
		log.Error("audio file not accessible", "path", path, "error", err)
		return Info{}, errors.Newf("audio file not accessible: %w", err).
			Component("audioinfo").Category(errors.CategoryFileIO).
			Context("path", path).Build()
	}
	defer file.Close()

	var info Info
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		info, err = readWAVInfo(file)
	case ".flac":
		info, err = readFLACInfo(file)
	default:
		err = errors.Newf("unsupported audio format [%s]", filepath.Ext(path)).
			Component("audioinfo").Category(errors.CategoryValidation).Build()
	}
	if err != nil {
		log.Error("audio probe failed", "path", path, "error", err)
		return Info{}, err
	}
	return info, nil
}

// DurationList probes every file and returns a filename to duration
// map, resolving relative names against baseDir. Suitable as the
// duration list of inactivity derivation.
func DurationList(baseDir string, filenames []string) (map[string]float64, error) {
	out := make(map[string]float64, len(filenames))
	for _, name := range filenames {
		path := name
		if baseDir != "" && !filepath.IsAbs(name) {
			path = filepath.Join(baseDir, name)
		}
		info, err := Probe(path)
		if err != nil {
			return nil, err
		}
		out[name] = info.Duration()
	}
	return out, nil
}

func readWAVInfo(file *os.File) (Info, error) {
	decoder := wav.NewDecoder(file)
	decoder.ReadInfo()

	if !decoder.IsValidFile() {
		return Info{}, errors.Newf("invalid WAV file format").
			Component("audioinfo").Category(errors.CategoryAudio).Build()
	}
	if decoder.BitDepth != 16 && decoder.BitDepth != 24 && decoder.BitDepth != 32 {
		return Info{}, errors.Newf("unsupported bit depth: %d", decoder.BitDepth).
			Component("audioinfo").Category(errors.CategoryAudio).Build()
	}
	if decoder.NumChans != 1 && decoder.NumChans != 2 {
		return Info{}, errors.Newf("unsupported number of channels: %d", decoder.NumChans).
			Component("audioinfo").Category(errors.CategoryAudio).Build()
	}

	duration, err := decoder.Duration()
	if err != nil {
		return Info{}, errors.Newf("reading WAV duration: %w", err).
			Component("audioinfo").Category(errors.CategoryAudio).Build()
	}

	sampleRate := int(decoder.SampleRate)
	return Info{
		SampleRate:   sampleRate,
		TotalSamples: int(duration.Seconds() * float64(sampleRate)),
		NumChannels:  int(decoder.NumChans),
		BitDepth:     int(decoder.BitDepth),
	}, nil
}

func readFLACInfo(file *os.File) (Info, error) {
	decoder, err := flac.NewDecoder(file)
	if err != nil {
		return Info{}, errors.Newf("invalid FLAC file format: %w", err).
			Component("audioinfo").Category(errors.CategoryAudio).Build()
	}

	return Info{
		SampleRate:   decoder.SampleRate,
		TotalSamples: int(decoder.TotalSamples),
		NumChannels:  decoder.NChannels,
		BitDepth:     decoder.BitsPerSample,
	}, nil
}
