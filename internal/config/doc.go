// Package config manages user-level settings stored at ~/.cmakeproj/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default build directory, the CMake generator, and how git repositories
// are initialized for new projects. The file is validated against an embedded
// JSON schema.
package config
