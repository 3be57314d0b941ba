package services

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret1" || hash == "" {
		t.Fatalf("hash must not be empty or equal to the plaintext")
	}

	if !CheckPassword("secret1", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if CheckPassword("secret2", hash) {
		t.Fatalf("expected non-matching password to fail")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (embedded salt)")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if CheckPassword("secret1", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must compare as false")
	}
	if CheckPassword("secret1", "") {
		t.Fatalf("empty hash must compare as false")
	}
}
