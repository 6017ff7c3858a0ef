package policy

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		p    Policy
		want string
	}{
		{Sequential, "sequential"},
		{Parallel, "parallel"},
		{Policy(99), "sequential"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Policy(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
