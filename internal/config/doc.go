// Package config defines the generator configuration and loads it from YAML.
//
// Example adtgen.yaml:
//
//	prefix: adt
//	output: adt_gen.go
//	max_depth: 16
//	interface_policy: warn
//	naming:
//	  case_suffix: Case
//	  class_suffix: Base
//	log:
//	  level: debug
//	  format: json
//
// Command-line flags override file values.
package config
