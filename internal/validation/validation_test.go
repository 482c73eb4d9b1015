package validation

import "testing"

func TestCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"valid", "a@b.com", "123456", false},
		{"valid long", "someone.else+tag@example.co.uk", "longer-password", false},
		{"empty email", "", "123456", true},
		{"empty password", "a@b.com", "", true},
		{"no at sign", "ab.com", "123456", true},
		{"no domain", "a@", "123456", true},
		{"spaces in email", "a b@c.com", "123456", true},
		{"password too short", "a@b.com", "12345", true},
		{"exactly six chars", "a@b.com", "123456", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Credentials(tc.email, tc.password)
			if tc.wantErr && err == nil {
				t.Fatalf("Credentials(%q, %q) = nil, want error", tc.email, tc.password)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("Credentials(%q, %q) = %v, want nil", tc.email, tc.password, err)
			}
		})
	}
}
