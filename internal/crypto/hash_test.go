package crypto

import (
	"errors"
	"testing"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		algorithm string
		want      string
	}{
		{
			name:      "sha256",
			password:  "abc123",
			algorithm: "sha256",
			want:      "6ca13d52ca70c883e0f0bb101e425a89e8624de51db2d2392593af6a84118090",
		},
		{
			name:      "empty algorithm selects default",
			password:  "abc123",
			algorithm: "",
			want:      "6ca13d52ca70c883e0f0bb101e425a89e8624de51db2d2392593af6a84118090",
		},
		{
			name:      "sha1",
			password:  "abc123",
			algorithm: "sha1",
			want:      "6367c48dd193d56ea7b0baad25b19455e529f5ee",
		},
		{
			name:      "md5",
			password:  "abc123",
			algorithm: "md5",
			want:      "e99a18c428cb38d5f260853678922e03",
		},
		{
			name:      "algorithm name is case-insensitive",
			password:  "abc123",
			algorithm: "SHA256",
			want:      "6ca13d52ca70c883e0f0bb101e425a89e8624de51db2d2392593af6a84118090",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HashPassword(tt.password, tt.algorithm)
			if err != nil {
				t.Fatalf("HashPassword() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("HashPassword() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHashPasswordDeterministic(t *testing.T) {
	for _, algorithm := range []string{"md5", "sha1", "sha224", "sha256", "sha384", "sha512", "sha3-256", "sha3-512", "blake2b-256"} {
		t.Run(algorithm, func(t *testing.T) {
			first, err := HashPassword("abc123", algorithm)
			if err != nil {
				t.Fatalf("HashPassword() unexpected error: %v", err)
			}
			second, err := HashPassword("abc123", algorithm)
			if err != nil {
				t.Fatalf("HashPassword() unexpected error: %v", err)
			}
			if first != second {
				t.Errorf("HashPassword() not deterministic: %q != %q", first, second)
			}
			if first == "" {
				t.Error("HashPassword() returned empty digest")
			}
		})
	}
}

func TestHashPasswordUnsupportedAlgorithm(t *testing.T) {
	_, err := HashPassword("abc123", "whirlpool")
	if !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("HashPassword() error = %v, want %v", err, ErrUnsupportedAlgorithm)
	}
}
