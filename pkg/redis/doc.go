// Package redis opens go-redis clients with retrying startup and provides
// health and shutdown closures for the application runtime.
package redis
