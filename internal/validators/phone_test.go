package validators

import "testing"

func TestIsMobileNumberValid(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"09121234567", true},
		{"09901112233", true},
		{"9121234567", false},
		{"0912123456", false},
		{"091212345678", false},
		{"0912123456a", false},
		{"+989121234567", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsMobileNumberValid(tt.phone); got != tt.want {
			t.Errorf("IsMobileNumberValid(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}
