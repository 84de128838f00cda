package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Abcde1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !CheckPassword("Abcde1", hash) {
		t.Fatal("CheckPassword returned false for the original plaintext")
	}
	if CheckPassword("Abcde2", hash) {
		t.Fatal("CheckPassword returned true for a different plaintext")
	}
}

func TestHashPassword_NonDeterministic(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("Abcde1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("Abcde1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same plaintext are identical; expected distinct salts")
	}
	if !CheckPassword("Abcde1", h1) || !CheckPassword("Abcde1", h2) {
		t.Fatal("both hashes must verify against the original plaintext")
	}
}

func TestHashPassword_NeverPlaintext(t *testing.T) {
	t.Parallel()

	const plaintext = "Secret1password"
	hash, err := HashPassword(plaintext)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == plaintext || strings.Contains(hash, plaintext) {
		t.Fatalf("hash %q leaks the plaintext", hash)
	}
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("Abcde1", "not-a-bcrypt-hash") {
		t.Fatal("CheckPassword returned true for a malformed hash")
	}
}
