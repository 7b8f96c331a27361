package builder

import "testing"

func TestEscapeLocalName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello", "hello"},
		{"valid?", "valid%3F"},
		{"save!", "save%21"},
		{"with space", "with%20space"},
		{"a/b", "a%2Fb"},
		{"==", "%3D%3D"},
		{"snake_case_stays", "snake_case_stays"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := EscapeLocalName(tt.in); got != tt.want {
			t.Errorf("EscapeLocalName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJoinModule(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"MyApp"}, "MyApp"},
		{[]string{"MyApp", "Users", "Profile"}, "MyApp.Users.Profile"},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := JoinModule(tt.in); got != tt.want {
			t.Errorf("JoinModule(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestModuleIRI(t *testing.T) {
	got := ModuleIRI(testBase, []string{"MyApp", "Users"})
	want := testBase + "MyApp.Users"
	if string(got) != want {
		t.Errorf("ModuleIRI = %q, want %q", got, want)
	}
}
