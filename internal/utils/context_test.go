// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-cred-keeper/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestClaimsCtxKey(t *testing.T) {
	if ClaimsCtxKey.String() != "claims" {
		t.Errorf("expected 'claims', got '%s'", ClaimsCtxKey.String())
	}
}

func TestGetClaimsFromContext_Success(t *testing.T) {
	want := models.Claims{Name: "Ann", Email: "ann@x.com", ID: "id-1"}
	ctx := WithClaims(context.Background(), want)

	got, ok := GetClaimsFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got.Email != want.Email || got.ID != want.ID || got.Name != want.Name {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetClaimsFromContext_Missing(t *testing.T) {
	_, ok := GetClaimsFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetClaimsFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClaimsCtxKey, "not-claims")

	_, ok := GetClaimsFromContext(ctx)
	if ok {
		t.Error("expected ok=false for wrong value type")
	}
}
