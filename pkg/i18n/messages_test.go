package i18n

import "testing"

func TestCatalogLookup(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		key    string
		args   []interface{}
		want   string
	}{
		{
			name:   "english message",
			locale: "en",
			key:    KeyErrMismatch,
			want:   "Passwords do not match.",
		},
		{
			name:   "russian message",
			locale: "ru",
			key:    KeyErrTooShort,
			want:   "Пароль должен быть не короче 6 символов.",
		},
		{
			name:   "unknown locale falls back to english",
			locale: "de",
			key:    KeyErrGeneric,
			want:   "Something went wrong. Please try again.",
		},
		{
			name:   "unknown key returns the key",
			locale: "en",
			key:    "no.such.key",
			want:   "no.such.key",
		},
		{
			name:   "formatted message",
			locale: "en",
			key:    KeyCodeSentEmail,
			args:   []interface{}{"a***@b.com"},
			want:   "A verification code was sent to a***@b.com.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.locale)
			got := c.T(tt.key, tt.args...)
			if got != tt.want {
				t.Errorf("T(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
