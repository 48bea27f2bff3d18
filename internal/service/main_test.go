package service

import (
	"Birdseye/internal/pkg/security"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	security.Init("test-secret", 1)
	os.Exit(m.Run())
}
