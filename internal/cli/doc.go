// Package cli parses the adtgen command line into a configuration and builds
// the process logger.
package cli
