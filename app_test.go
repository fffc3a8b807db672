package framekit

import "testing"

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []string
	}{
		{"printable", []byte("qj"), []string{"q", "j"}},
		{"ctrl-c", []byte{0x03}, []string{"ctrl+c"}},
		{"arrow up", []byte{0x1b, '[', 'A'}, []string{"up"}},
		{"arrow down", []byte{0x1b, '[', 'B'}, []string{"down"}},
		{"arrow right", []byte{0x1b, '[', 'C'}, []string{"right"}},
		{"arrow left", []byte{0x1b, '[', 'D'}, []string{"left"}},
		{"mixed chunk", []byte{'j', 0x1b, '[', 'B', 'q'}, []string{"j", "down", "q"}},
		{"bare escape dropped", []byte{0x1b}, nil},
		{"unknown csi dropped", []byte{0x1b, '[', 'Z'}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := decodeKeys(tt.input)
			if len(keys) != len(tt.want) {
				t.Fatalf("got %d keys, want %d", len(keys), len(tt.want))
			}
			for i, k := range keys {
				if k.Name != tt.want[i] {
					t.Errorf("key %d = %q, want %q", i, k.Name, tt.want[i])
				}
			}
		})
	}
}
