package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"auth-gateway/internal/session"
)

// Config captures everything the process reads from its environment.
// It is built once in main and handed into constructors; nothing else in
// the codebase touches os.Getenv.
type Config struct {
	Addr string

	// DirectoryBaseURL is the customer registry root.
	DirectoryBaseURL string

	// Provider settings: admin API root plus the pool and app client the
	// gateway is scoped to.
	ProviderBaseURL  string
	ProviderPoolID   string
	ProviderClientID string

	// RedisURL enables the directory existence cache when non-empty.
	RedisURL          string
	DirectoryCacheTTL time.Duration

	// KafkaBrokers enables the Kafka audit sink when non-empty.
	KafkaBrokers []string
	AuditTopic   string

	Policy session.ProvisioningPolicy
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Addr:              getenv("AUTH_GATEWAY_ADDR", ":8080"),
		DirectoryBaseURL:  getenv("CLIENTES_SERVICE_URL", "http://localhost:8081"),
		ProviderBaseURL:   getenv("IDP_BASE_URL", "http://localhost:8082"),
		ProviderPoolID:    os.Getenv("USER_POOL_ID"),
		ProviderClientID:  os.Getenv("CLIENT_ID"),
		RedisURL:          os.Getenv("REDIS_URL"),
		DirectoryCacheTTL: getduration("DIRECTORY_CACHE_TTL", 5*time.Minute),
		KafkaBrokers:      getlist("KAFKA_BROKERS"),
		AuditTopic:        getenv("AUDIT_TOPIC", "auth-gateway.audit"),
		Policy: session.ProvisioningPolicy{
			Password:        getenv("PROVISION_PASSWORD", "Lanchonete@2024"),
			AnonymousPrefix: getenv("ANONYMOUS_PREFIX", "anonimo_"),
			AnonymousTTL:    getint("ANONYMOUS_SESSION_TTL", 1800),
			FallbackTTL:     getint("SESSION_FALLBACK_TTL", 3600),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getlist(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
