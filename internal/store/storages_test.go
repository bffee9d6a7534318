package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
)

func TestNewStorages_Memory(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: config.DriverMemory}}, logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.AccountRepository == nil {
		t.Fatal("expected account repository to be set")
	}
	if err := s.Close(); err != nil {
		t.Errorf("closing memory storages should be a no-op, got %v", err)
	}
}

func TestNewStorages_UnknownDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: "mongo"}}, logger.Nop())
	if !errors.Is(err, ErrUnknownDriver) {
		t.Fatalf("expected ErrUnknownDriver, got %v", err)
	}
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	if err := s.Close(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
