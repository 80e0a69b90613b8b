package mongo

import "testing"

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		reasons  int
	}{
		{"ok", "pw123secure", 0},
		{"too short", "pw1", 1},
		{"no digit", "passwordonly", 1},
		{"no letter", "12345678", 1},
		{"short and no digit", "abc", 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := validatePassword(tc.password); len(got) != tc.reasons {
				t.Fatalf("expected %d reasons, got %v", tc.reasons, got)
			}
		})
	}
}

func TestValidatePassword_BcryptLimit(t *testing.T) {
	long := make([]byte, 80)
	for i := range long {
		if i%2 == 0 {
			long[i] = 'a'
		} else {
			long[i] = '1'
		}
	}
	if got := validatePassword(string(long)); len(got) != 1 {
		t.Fatalf("expected the length reason, got %v", got)
	}
}
