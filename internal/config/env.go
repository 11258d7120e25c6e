package config

import "os"

// ApplyEnvConfig applies configuration from environment variables (SKIM_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setIntFromString("wpm", os.Getenv("SKIM_WPM"), &cfg.WPM); err != nil {
		return err
	}
	if err := s.setIntFromString("chunk", os.Getenv("SKIM_CHUNK"), &cfg.ChunkSize); err != nil {
		return err
	}
	s.setStringFromString("sample", os.Getenv("SKIM_SAMPLE"), &cfg.Sample)
	s.setStringFromString("quiz", os.Getenv("SKIM_QUIZ"), &cfg.QuizPath)
	if err := s.setBoolFromString("watch", os.Getenv("SKIM_WATCH"), &cfg.Watch); err != nil {
		return err
	}

	s.setStringFromString("highlight", os.Getenv("SKIM_HIGHLIGHT"), &cfg.Highlight)
	s.setStringFromString("font", os.Getenv("SKIM_FONT"), &cfg.Font)
	s.setStringFromString("font-size", os.Getenv("SKIM_FONT_SIZE"), &cfg.FontSize)
	if err := s.setBoolFromString("fullscreen", os.Getenv("SKIM_FULLSCREEN"), &cfg.Fullscreen); err != nil {
		return err
	}

	s.setStringFromString("log-file", os.Getenv("SKIM_LOG_FILE"), &cfg.LogFile)
	s.setStringFromString("log-level", os.Getenv("SKIM_LOG_LEVEL"), &cfg.LogLevel)

	return nil
}
