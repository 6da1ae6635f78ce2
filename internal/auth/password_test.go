package auth

import "testing"

func TestHashPassword_Roundtrip(t *testing.T) {
	t.Parallel()

	const plain = "correct horse battery staple"
	hash, err := HashPassword(plain)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !CheckPassword(plain, hash) {
		t.Error("CheckPassword rejected the password it was hashed from")
	}
	if CheckPassword("wrong password", hash) {
		t.Error("CheckPassword accepted a wrong password")
	}
}

func TestHashPassword_SaltsFreshly(t *testing.T) {
	t.Parallel()

	const plain = "same input"
	h1, err := HashPassword(plain)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword(plain)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password are identical, salt is not fresh")
	}
}

func TestCheckPassword_MalformedHash_FailsClosed(t *testing.T) {
	t.Parallel()

	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$broken"} {
		if CheckPassword("anything", hash) {
			t.Errorf("CheckPassword(%q) = true, want false", hash)
		}
	}
}
