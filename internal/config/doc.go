// Package config manages user-level settings stored at ~/.replicate/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the external initializer binary and the dependency line placed into every
// generated manifest. Environment variables prefixed with REPLICATE_ override
// the file.
package config
