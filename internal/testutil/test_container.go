//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

var (
	sharedMongo     *MongoDBContainer
	sharedMongoErr  error
	sharedMongoOnce sync.Once

	sharedPostgres     *PostgresContainer
	sharedPostgresErr  error
	sharedPostgresOnce sync.Once

	sharedMu sync.RWMutex
)

// GetSharedMongoDB returns a shared MongoDB container for use across tests in a package.
// The container is created once and reused for all tests.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedMongoOnce.Do(func() {
		sharedMu.Lock()
		defer sharedMu.Unlock()
		sharedMongo, sharedMongoErr = SetupMongoDB(ctx)
	})

	sharedMu.RLock()
	defer sharedMu.RUnlock()
	return sharedMongo, sharedMongoErr
}

// GetSharedPostgres returns a shared PostgreSQL container for use across tests in a package.
func GetSharedPostgres(ctx context.Context) (*PostgresContainer, error) {
	sharedPostgresOnce.Do(func() {
		sharedMu.Lock()
		defer sharedMu.Unlock()
		sharedPostgres, sharedPostgresErr = SetupPostgres(ctx)
	})

	sharedMu.RLock()
	defer sharedMu.RUnlock()
	return sharedPostgres, sharedPostgresErr
}

// CleanupShared terminates every shared container that was started.
// Call this in TestMain after m.Run().
func CleanupShared(ctx context.Context) error {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	var errs []string
	if sharedMongo != nil {
		if err := sharedMongo.Cleanup(ctx); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if sharedPostgres != nil {
		if err := sharedPostgres.Cleanup(ctx); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("cleanup: %s", strings.Join(errs, "; "))
	}
	return nil
}

// SetupTestMainWithContainers is a helper for TestMain that starts the shared
// MongoDB and PostgreSQL containers and tears them down after the run.
// Usage:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithContainers(context.Background(), m))
//	}
func SetupTestMainWithContainers(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		panic(err)
	}
	if _, err := GetSharedPostgres(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	if err := CleanupShared(ctx); err != nil {
		// Container will be reaped by Docker anyway.
		_, _ = os.Stderr.WriteString("Warning: failed to cleanup shared containers: " + err.Error() + "\n")
	}

	return code
}

// SetupTestMainWithMongoDB is like SetupTestMainWithContainers but only starts MongoDB.
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	if err := CleanupShared(ctx); err != nil {
		_, _ = os.Stderr.WriteString("Warning: failed to cleanup shared containers: " + err.Error() + "\n")
	}

	return code
}

// GetSharedContainerURI returns the URI of the shared MongoDB container.
// Panics if the container is not initialized.
func GetSharedContainerURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if sharedMongo == nil {
		panic("shared MongoDB container not initialized - call GetSharedMongoDB first")
	}
	return sharedMongo.URI
}

// GetSharedPostgresDSN returns the DSN of the shared PostgreSQL container.
// Panics if the container is not initialized.
func GetSharedPostgresDSN() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if sharedPostgres == nil {
		panic("shared PostgreSQL container not initialized - call GetSharedPostgres first")
	}
	return sharedPostgres.DSN
}

// SanitizeDBName turns a test name into a valid MongoDB database name.
// It replaces path separators with underscores, truncates to 50 characters,
// and appends a timestamp suffix for uniqueness.
func SanitizeDBName(testName string) string {
	sanitized := strings.NewReplacer("/", "_", "\\", "_").Replace(testName)
	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}
	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}
