package loadbalancer

import (
	"net/http"
	"sync"
)

// LoadBalancer hands out backend targets round-robin. The gateway uses one
// per proxied service.
type LoadBalancer struct {
	servers []string
	mu      sync.Mutex
	current int
}

func NewLoadBalancer(servers []string) *LoadBalancer {
	return &LoadBalancer{
		servers: servers,
		current: 0,
	}
}

// GetNextServer returns the next backend in rotation, or "" when none are
// configured.
func (lb *LoadBalancer) GetNextServer() string {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if len(lb.servers) == 0 {
		return ""
	}
	server := lb.servers[lb.current]
	lb.current = (lb.current + 1) % len(lb.servers)
	return server
}

// ServeHTTP redirects the client to the next backend. The gateway prefers
// reverse proxying; this exists for deployments that front the services with
// plain redirects.
func (lb *LoadBalancer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	server := lb.GetNextServer()
	if server == "" {
		http.Error(w, "No backends configured", http.StatusServiceUnavailable)
		return
	}
	http.Redirect(w, r, server+r.RequestURI, http.StatusTemporaryRedirect)
}
