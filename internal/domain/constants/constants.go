// Package constants holds named values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Record store drivers
const (
	StoreDriverFirestore = "firestore"
	StoreDriverPostgres  = "postgres"
	StoreDriverMongo     = "mongo"
	StoreDriverMemory    = "memory"
)

// Identity providers that can verify sign-in ID tokens
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderGoogle   = "google"
)

// Pub/Sub providers for card events
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
