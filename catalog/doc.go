// Package catalog builds enum descriptors declared in configuration.
//
// A catalog document lists enums by name, each with its ordered values:
//
//	enums:
//	  - name: priority
//	    hash_index: true
//	    values:
//	      - { label: LOW, value: 0 }
//	      - { label: HIGH, value: 10, meta: urgent }
//
// Load decodes YAML strictly from a reader; LoadFile reads YAML, JSON or TOML
// through viper, picking the format from the file extension. Documents may
// be zstd, s2 or lz4 compressed ("enums.yaml.zst"). Every enum is
// built as an owned descriptor, so a Catalog must be closed to release them.
package catalog
