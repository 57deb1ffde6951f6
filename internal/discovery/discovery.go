// Package discovery advertises the service on the local network via
// mDNS/DNS-SD so gateways and dashboards can find it without
// configuration.
package discovery

import (
	"fmt"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/skoona/sknSensors-IRService/internal/logging"
	"github.com/skoona/sknSensors-IRService/internal/version"
)

const (
	// ServiceType identifies the transcoding service in DNS-SD browses.
	ServiceType = "_irservice._tcp"

	domain = "local."
)

// Advertiser registers the service and keeps the registration alive until
// Shutdown.
type Advertiser struct {
	server *zeroconf.Server
}

// Advertise registers instance on the given status-server port. The TXT
// record carries the version so browsers can show it without connecting.
func Advertise(instance string, port int) (*Advertiser, error) {
	txt := []string{
		"version=" + version.Version,
		"status=/status",
		"stream=/ws",
	}

	server, err := zeroconf.Register(instance, ServiceType, domain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("mdns register: %w", err)
	}

	logging.Info("Service advertised",
		zap.String("instance", instance),
		zap.String("type", ServiceType),
		zap.Int("port", port),
	)

	return &Advertiser{server: server}, nil
}

// Shutdown withdraws the registration.
func (a *Advertiser) Shutdown() {
	a.server.Shutdown()
}
