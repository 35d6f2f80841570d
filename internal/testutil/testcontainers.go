//go:build integration

// Package testutil provides the MongoDB server shared by integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const (
	// defaultMongoImage is the server version the service targets.
	defaultMongoImage = "mongo:7.0"
	startTimeout      = 2 * time.Minute
	maxDBNameLength   = 50
)

// MongoDBContainer is a running MongoDB. Container is nil when the tests
// use an external server from MONGODB_TEST_URI.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// StartMongoDB starts a MongoDB container. MONGODB_TEST_IMAGE overrides the image.
func StartMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	image := os.Getenv("MONGODB_TEST_IMAGE")
	if image == "" {
		image = defaultMongoImage
	}

	ctx, cancel := context.WithTimeout(ctx, startTimeout)
	defer cancel()

	container, err := mongodb.Run(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", image, err)
	}
	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(context.Background())
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}
	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Terminate stops the container. It does nothing for an external server.
func (m *MongoDBContainer) Terminate(ctx context.Context) error {
	if m == nil || m.Container == nil {
		return nil
	}
	return m.Container.Terminate(ctx)
}

var (
	sharedMu  sync.Mutex
	shared    *MongoDBContainer
	sharedErr error
)

// RunWithMongoDB starts the package's MongoDB, runs the tests and stops it.
// Use it from TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithMongoDB(m))
//	}
func RunWithMongoDB(m *testing.M) int {
	ctx := context.Background()

	sharedMu.Lock()
	if uri := os.Getenv("MONGODB_TEST_URI"); uri != "" {
		shared = &MongoDBContainer{URI: uri}
	} else {
		shared, sharedErr = StartMongoDB(ctx)
	}
	sharedMu.Unlock()

	if sharedErr != nil {
		fmt.Fprintf(os.Stderr, "integration tests need MongoDB: %v\n", sharedErr)
		return 1
	}

	code := m.Run()

	if err := shared.Terminate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: mongodb container not terminated: %v\n", err)
	}
	return code
}

// MongoURI returns the URI of the server started by RunWithMongoDB.
func MongoURI(t testing.TB) string {
	t.Helper()
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		t.Fatal("MongoDB not started; call testutil.RunWithMongoDB from TestMain")
	}
	return shared.URI
}

// DatabaseName derives a unique, valid database name from the test name.
func DatabaseName(t testing.TB) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ', '"', '$', '*', '<', '>', ':', '|', '?':
			return '_'
		}
		return r
	}, t.Name())
	if len(name) > maxDBNameLength {
		name = name[:maxDBNameLength]
	}
	return name + "_" + strconv.FormatInt(time.Now().UnixNano()%1_000_000, 10)
}
