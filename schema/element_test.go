package schema

import "testing"

func TestTypeString(t *testing.T) {
	testCases := []struct {
		typ  Type
		want string
	}{
		{Master, "Master"},
		{UInt, "UInt"},
		{Int, "Int"},
		{Float, "Float"},
		{Date, "Date"},
		{String, "String"},
		{UTF8, "Utf8"},
		{Binary, "Binary"},
	}
	for _, tc := range testCases {
		if got := tc.typ.String(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}

func TestIsMaster(t *testing.T) {
	if !(Element{Type: Master}).IsMaster() {
		t.Errorf("Master element should report IsMaster")
	}
	if (Element{Type: Binary}).IsMaster() {
		t.Errorf("Binary element should not report IsMaster")
	}
}

func TestDefaultAccessors(t *testing.T) {
	if (Default{}).HasDefault() {
		t.Errorf("zero-value Default should not have a default")
	}
	if !NewUintDefault(7).HasDefault() {
		t.Errorf("NewUintDefault should carry a default")
	}
	if got := NewUintDefault(7).UintDefault(); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
	if got := NewStringDefault("hi").StringDefault(); got != "hi" {
		t.Errorf("got %q, want %q", got, "hi")
	}
}
