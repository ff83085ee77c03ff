// SPDX-License-Identifier: MPL-2.0

// Package config handles psabigen configuration using Viper with CUE as the file format.
//
// Configuration is loaded from the file given with --config, otherwise from
// config.cue in the psabigen configuration directory ($XDG_CONFIG_HOME/psabigen
// on Linux, ~/Library/Application Support/psabigen on macOS, %APPDATA%\psabigen
// on Windows), otherwise from ./config.cue. Without any file the defaults
// reproduce the psABI document exactly.
//
// Files are validated against an embedded CUE schema (config_schema.cue)
// before their values are merged over the defaults.
package config
