package main

import "testing"

func TestScanStrings(t *testing.T) {
	data := []byte("SceLibKernel\x00\x01\x02ab\x00module name\x00\xff\xfeend")

	var got []string
	var offs []int
	scanStrings(data, 4, func(off int, s string) {
		offs = append(offs, off)
		got = append(got, s)
	})

	want := []string{"SceLibKernel", "module name"}
	if len(got) != len(want) {
		t.Fatalf("got %d strings %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("string %d = %q, want %q", i, got[i], want[i])
		}
	}
	if offs[0] != 0 {
		t.Fatalf("first offset = %d, want 0", offs[0])
	}
	if offs[1] != 18 {
		t.Fatalf("second offset = %d, want 18", offs[1])
	}
}

func TestScanStringsRunAtEnd(t *testing.T) {
	var got []string
	scanStrings([]byte("\x00tail"), 4, func(off int, s string) {
		got = append(got, s)
	})
	if len(got) != 1 || got[0] != "tail" {
		t.Fatalf("got %v, want [tail]", got)
	}
}

func TestStringsCommand(t *testing.T) {
	data := []byte("ignore\x00ab\x00SceSysmem\x00\x80\x81GpuDriver")

	tests := []struct {
		name           string
		min            int
		offsets        bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:           "default min",
			min:            4,
			wantContain:    []string{"ignore", "SceSysmem", "GpuDriver"},
			wantNotContain: []string{"ab"},
		},
		{
			name:           "higher min",
			min:            8,
			wantContain:    []string{"SceSysmem", "GpuDriver"},
			wantNotContain: []string{"ignore"},
		},
		{
			name:        "with offsets",
			min:         4,
			offsets:     true,
			wantContain: []string{"00000000: ignore", "0000000a: SceSysmem"},
		},
		{
			name:    "invalid min",
			min:     0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, data)
			stringsMin = tt.min
			stringsOffsets = tt.offsets

			output, err := captureOutput(t, func() error {
				return runStrings([]string{path})
			})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got output: %s", output)
				}
				return
			}
			if err != nil {
				t.Fatalf("runStrings: %v", err)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}
