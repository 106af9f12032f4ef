// Package config provides the configuration system for caret.
//
// Settings are layered, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (applied by cmd/caret)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← CARET_<SECTION>_<KEY>
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/caret/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: TOML file and environment variable loading
//   - watcher: fsnotify file watching for live reload
//
// # Basic Usage
//
//	cfg, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Editor.InactivityPeriod)
//
// # Configuration Files
//
//	# ~/.config/caret/config.toml
//	[editor]
//	inactivity_period = "2s"
//	history_limit = 1000
//	word_highlight = true
//
//	[view]
//	gutter = true
//	frame_interval = "16ms"
//	scroll_margin_chars = 2
//
//	[log]
//	level = "info"
//	file = ""
//
// Unknown settings in the file are rejected. Unknown environment variables
// with the CARET_ prefix are ignored.
//
// # Error Handling
//
// Parse failures are reported as *ParseError with the line and column.
// Bad settings are reported as *ValidationError, joined when there are
// several; they match ErrValidationFailed with errors.Is.
package config
