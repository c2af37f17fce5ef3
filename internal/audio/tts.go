package audio

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TTSService fetches spoken pronunciations for words and caches them as
// MP3 files on disk
type TTSService struct {
	audioDir string
}

const ttsRequestTimeout = 10 * time.Second

// NewTTSService creates a new TTS service. The audio directory is created
// if it does not exist.
func NewTTSService(audioDir string) (*TTSService, error) {
	if err := os.MkdirAll(audioDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}
	return &TTSService{audioDir: audioDir}, nil
}

// AudioFilename returns the cache filename for a word
func AudioFilename(word string) string {
	sanitized := strings.ToLower(strings.TrimSpace(word))
	sanitized = strings.ReplaceAll(sanitized, " ", "_")
	return fmt.Sprintf("word_%s.mp3", sanitized)
}

// GenerateAudioFile converts a word to speech and saves it as MP3,
// returning the cached filename. Words already in the cache are not
// fetched again.
func (s *TTSService) GenerateAudioFile(word string) (string, error) {
	filename := AudioFilename(word)
	outputPath := filepath.Join(s.audioDir, filename)

	if _, err := os.Stat(outputPath); err == nil {
		return filename, nil
	}

	// Generate audio using Google Translate TTS (free, no API key needed)
	if err := s.generateUsingGoogleTTS(word, outputPath); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}

	return filename, nil
}

// generateUsingGoogleTTS uses Google Translate's text-to-speech API
// This is a simple, free option that doesn't require API keys
func (s *TTSService) generateUsingGoogleTTS(text, outputPath string) error {
	baseURL := "https://translate.google.com/translate_tts"

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", "en")
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	fullURL := baseURL + "?" + params.Encode()

	ctx, cancel := context.WithTimeout(context.Background(), ttsRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Set user agent (required by Google)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	client := &http.Client{Timeout: ttsRequestTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	_, err = io.Copy(outFile, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	return nil
}

// BatchGenerateAudio generates audio files for multiple words
func (s *TTSService) BatchGenerateAudio(words []string) (map[string]string, error) {
	results := make(map[string]string)

	for _, word := range words {
		filename, err := s.GenerateAudioFile(word)
		if err != nil {
			return results, fmt.Errorf("failed to generate audio for '%s': %w", word, err)
		}
		results[word] = filename
	}

	return results, nil
}

// DeleteAudioFile removes a cached audio file
func (s *TTSService) DeleteAudioFile(filename string) error {
	path := filepath.Join(s.audioDir, filename)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil // Already deleted
	}

	return os.Remove(path)
}

// GetAllAudioFiles returns a list of all MP3 files in the audio directory
func (s *TTSService) GetAllAudioFiles() ([]string, error) {
	files, err := os.ReadDir(s.audioDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio directory: %w", err)
	}

	var audioFiles []string
	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == ".mp3" {
			audioFiles = append(audioFiles, file.Name())
		}
	}

	return audioFiles, nil
}

// Speaker pronounces words asynchronously, caching the generated audio.
// A nil Speaker is safe to use and does nothing, so callers can request
// speech before the audio backend is ready.
type Speaker struct {
	tts *TTSService
}

// NewSpeaker wraps a TTS service as an asynchronous speaker
func NewSpeaker(tts *TTSService) *Speaker {
	return &Speaker{tts: tts}
}

// Speak requests pronunciation of a word. The fetch happens in the
// background; failures are logged and never reach the caller.
func (s *Speaker) Speak(word string) {
	if s == nil || s.tts == nil {
		return
	}
	go func() {
		if _, err := s.tts.GenerateAudioFile(word); err != nil {
			log.Printf("Failed to generate audio for %q: %v", word, err)
		}
	}()
}
