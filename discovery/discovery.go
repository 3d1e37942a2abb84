// Package discovery abstracts the service registry so processes can
// find the gateway and executor without hard-wired endpoints. Consul
// backs it in deployment; the inmem registry backs tests.
package discovery

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Registry is the contract both backends implement.
type Registry interface {
	Register(ctx context.Context, instanceID, serviceName, hostPort string) error
	Deregister(ctx context.Context, instanceID, serviceName string) error
	Discover(ctx context.Context, serviceName string) ([]string, error)
	HealthCheck(instanceID, serviceName string) error
}

// GenerateInstanceID returns a unique id for one service instance,
// "name-<random>"; collisions across restarts do not matter because
// registrations carry a TTL.
func GenerateInstanceID(serviceName string) string {
	return fmt.Sprintf("%s-%d", serviceName, rand.New(rand.NewSource(time.Now().UnixNano())).Int())
}
