// Package files groups the script discovery sub-packages.
//
//   - filesystem: filesystem abstraction (OS and in-memory) with glob listing
//   - scanner: enumerates scripts under a root and applies environment filtering
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/scriptenv/internal/files/scanner"
//	    "github.com/vvka-141/scriptenv/internal/logging"
//	)
//
//	s := scanner.NewScanner(logging.NewNullLogger(), scanner.Options{})
//	result, err := s.ScanDirectory("./migrations", []string{"dev"})
package files
