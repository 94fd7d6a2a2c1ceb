package main

import "testing"

func TestDefaultPort(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{"unset", "", 3000, false},
		{"set", "8080", 8080, false},
		{"not a number", "http", 0, true},
		{"out of range", "70000", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.value)

			got, err := defaultPort()
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestRootCommandPortFlag(t *testing.T) {
	command := newRootCommand(3000)

	if got, _ := command.Flags().GetInt("port"); got != 3000 {
		t.Errorf("expected default 3000, got %d", got)
	}

	if err := command.Flags().Parse([]string{"--port", "9090"}); err != nil {
		t.Fatal(err)
	}

	if got, _ := command.Flags().GetInt("port"); got != 9090 {
		t.Errorf("expected 9090, got %d", got)
	}
}

func TestRootCommandRejectsArgs(t *testing.T) {
	command := newRootCommand(3000)
	command.SetArgs([]string{"unexpected"})

	if err := command.Execute(); err == nil {
		t.Error("expected an error for positional arguments")
	}
}
