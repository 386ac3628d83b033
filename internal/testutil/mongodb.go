//go:build integration

// Package testutil starts the MongoDB container the integration tests run
// against.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoImage is the image every integration test runs against.
const MongoImage = "mongo:7.0"

// MongoDBContainer is a running MongoDB testcontainer.
type MongoDBContainer struct {
	container *mongodb.MongoDBContainer
	URI       string
}

// SetupMongoDB starts a dedicated MongoDB container.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, MongoImage)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}
	return &MongoDBContainer{container: container, URI: uri}, nil
}

// Cleanup terminates the container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m == nil || m.container == nil {
		return nil
	}
	if err := testcontainers.TerminateContainer(m.container, testcontainers.StopContext(ctx)); err != nil {
		return fmt.Errorf("terminate mongodb container: %w", err)
	}
	return nil
}

var (
	shared     *MongoDBContainer
	sharedOnce sync.Once
	sharedErr  error
)

// RunWithSharedMongoDB starts one container for the whole package, runs the
// tests and tears the container down. Use it from TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithSharedMongoDB(m))
//	}
func RunWithSharedMongoDB(m *testing.M) int {
	ctx := context.Background()
	sharedOnce.Do(func() {
		shared, sharedErr = SetupMongoDB(ctx)
	})
	if sharedErr != nil {
		fmt.Fprintf(os.Stderr, "integration tests need docker: %v\n", sharedErr)
		return 1
	}

	code := m.Run()

	if err := shared.Cleanup(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return code
}

// SharedMongoURI returns the URI of the package container.
func SharedMongoURI(t testing.TB) string {
	t.Helper()
	if shared == nil {
		t.Fatal("shared MongoDB container not started; call RunWithSharedMongoDB from TestMain")
	}
	return shared.URI
}

var dbNameReplacer = strings.NewReplacer("/", "_", "\\", "_", ".", "_", " ", "_", "$", "_", "\"", "_")

// DatabaseName derives a unique database name from the test name so tests
// sharing a container never see each other's catalog.
func DatabaseName(t testing.TB) string {
	name := dbNameReplacer.Replace(t.Name())
	if len(name) > 40 {
		name = name[:40]
	}
	return name + "_" + uuid.NewString()[:8]
}
