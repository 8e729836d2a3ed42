// Package conf loads the settings of the bljconfig tool itself, with
// drop-in configuration file support. Pipeline configuration files are
// handled by package props.
//
// # Usage
//
//	cs := conf.NewConfigSource("")
//	config, err := cs.Read()
//
// For custom locations (e.g., testing), set the paths directly:
//
//	cs := &conf.ConfigSource{
//	    Path:      "/custom/path/config.toml",
//	    DropInDir: "/custom/path/config.toml.d",
//	}
//
// # Load Order
//
// Config is loaded and applied in three layers:
//
//  1. Embedded defaults (config.toml in this package)
//  2. Main config file: /etc/bljconfig/config.toml
//  3. Drop-in files: /etc/bljconfig/config.toml.d/*.toml, in lexicographic order
//
// # Keys
//
//	log-level       = "INFO"
//	standard-config = "${BLJ}/resources/config/default/standard.properties"
//	docker-config   = "${BLJ}/resources/config/default/docker.properties"
//	search-paths    = ["${BLJ}/resources/config/default"]
//
// # Internal Architecture
//
//   - configDTO: internal struct with pointer fields for TOML parsing.
//     Pointers allow distinguishing "not set" (nil) from "set to zero value".
//
//   - Config: public struct with value fields. Has Update() method
//     to apply DTO values.
//
//   - ConfigSource: orchestrates loading from multiple sources and manages
//     their merging.
package conf
