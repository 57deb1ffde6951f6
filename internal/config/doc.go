// Package config provides the YAML service configuration: device
// identity, broker connection, GPIO pin assignment, timing intervals and
// the status server listener.
//
// Timing intervals are range-validated at load time; a config file that
// would make the engine spin or let a stuck sender wedge the service is
// rejected before anything starts.
//
// # Usage Example
//
//	cfg, err := config.Load("/etc/irservice/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
