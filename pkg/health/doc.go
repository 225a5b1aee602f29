// Package health serves liveness and readiness probes.
//
// Readiness runs every registered [CheckFunc] concurrently with a shared
// timeout and answers 503 when any of them fails. Checks share the signature
// of the Healthcheck closures in pkg/db and pkg/redis.
package health
