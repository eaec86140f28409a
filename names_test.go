package mapart

import "testing"

func TestScriptName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"cat.png", "cat"},
		{"photos/holiday/beach.jpg", "beach"},
		{`C:\Users\me\Pictures\dog.png`, "dog"},
		{"my picture (1).png", "mypicture1"},
		{"archive.tar.gz", "archive"},
		{"a_very_long_image_name.png", "a_very_long_"},
		{"???.png", UnknownName},
		{".png", UnknownName},
		{"", UnknownName},
	}
	for _, tt := range tests {
		if got := ScriptName(tt.in); got != tt.want {
			t.Errorf("ScriptName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestImportCommand(t *testing.T) {
	got := ImportCommand("abcdef", "", "cat")
	want := `/func execute akmap::add("abcdef", "YOUR-UUID-GOES-HERE", "cat")`
	if got != want {
		t.Errorf("ImportCommand = %s", got)
	}
}

func TestFormatUUID(t *testing.T) {
	if got := FormatUUID("069a79f444e94726a5befca90e38aaf5"); got != "069a79f4-44e9-4726-a5be-fca90e38aaf5" {
		t.Errorf("FormatUUID = %s", got)
	}
	if got := FormatUUID("short"); got != "short" {
		t.Errorf("FormatUUID(short) = %s", got)
	}
}
