// Package config defines the tokrand configuration.
//
//   - spec.go: Config struct and sections
//   - default.go: default values
//   - loader.go: loading through confloader (file, env, flags)
//   - verify.go: validation
//
// The default file is ~/.tokrand/config.yaml and is optional.
package config
