// Package confloader loads layered configuration with koanf.
//
// Sources, lowest to highest priority:
//
//  1. Values already present in the target struct (defaults)
//  2. YAML configuration file
//  3. Environment variables (TOKRAND_<SECTION>_<KEY>)
//  4. Explicit overrides (command-line flags), via LoadMap
//
// Keys are two levels deep: TOKRAND_ENTROPY_DEVICE_PATH maps to
// entropy.device_path. List values may be given comma-separated.
package confloader
