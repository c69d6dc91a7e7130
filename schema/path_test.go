package schema

import (
	"errors"
	"testing"
)

func ptr(v uint64) *uint64 { return &v }

func TestParsePath(t *testing.T) {
	testCases := []struct {
		name    string
		path    string
		want    []PathAtom
		wantErr error
	}{
		{
			name: "single atom",
			path: `\EBML`,
			want: []PathAtom{{Global: DefaultRange(), Name: "EBML"}},
		},
		{
			name: "two atoms",
			path: `\EBML\EBMLVersion`,
			want: []PathAtom{
				{Global: DefaultRange(), Name: "EBML"},
				{Global: DefaultRange(), Name: "EBMLVersion"},
			},
		},
		{
			name: "unbounded global placeholder",
			path: `\(-)Void`,
			want: []PathAtom{{Global: Range{Lo: 0, Hi: nil}, Name: "Void"}},
		},
		{
			name: "escaped closing paren in placeholder",
			path: `\(-\)Void`,
			want: []PathAtom{{Global: Range{Lo: 0, Hi: nil}, Name: "Void"}},
		},
		{
			name: "lower bound only",
			path: `\(1-)Track`,
			want: []PathAtom{{Global: Range{Lo: 1, Hi: nil}, Name: "Track"}},
		},
		{
			name: "upper bound only",
			path: `\(-3)Track`,
			want: []PathAtom{{Global: Range{Lo: 0, Hi: ptr(3)}, Name: "Track"}},
		},
		{
			name: "both bounds",
			path: `\(2-3)Track`,
			want: []PathAtom{{Global: Range{Lo: 2, Hi: ptr(3)}, Name: "Track"}},
		},
		{
			name:    "empty path",
			path:    "",
			wantErr: ErrEmptyPath,
		},
		{
			name:    "missing leading separator",
			path:    "EBML",
			wantErr: ErrMissingSeparator,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePath(tc.path)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("got err %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d atoms, want %d: %+v", len(got), len(tc.want), got)
			}
			for i := range got {
				if got[i].Name != tc.want[i].Name {
					t.Errorf("atom %d: got name %q, want %q", i, got[i].Name, tc.want[i].Name)
				}
				if got[i].Global.Lo != tc.want[i].Global.Lo {
					t.Errorf("atom %d: got Lo %d, want %d", i, got[i].Global.Lo, tc.want[i].Global.Lo)
				}
				gotHi, wantHi := got[i].Global.Hi, tc.want[i].Global.Hi
				switch {
				case gotHi == nil && wantHi == nil:
				case gotHi == nil || wantHi == nil:
					t.Errorf("atom %d: got Hi %v, want %v", i, gotHi, wantHi)
				case *gotHi != *wantHi:
					t.Errorf("atom %d: got Hi %d, want %d", i, *gotHi, *wantHi)
				}
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Lo: 2, Hi: ptr(3)}
	for _, depth := range []uint64{0, 1, 4, 100} {
		if r.Contains(depth) {
			t.Errorf("depth %d unexpectedly within [2,3]", depth)
		}
	}
	for _, depth := range []uint64{2, 3} {
		if !r.Contains(depth) {
			t.Errorf("depth %d unexpectedly outside [2,3]", depth)
		}
	}

	unbounded := Range{Lo: 1, Hi: nil}
	if unbounded.Contains(0) {
		t.Errorf("depth 0 unexpectedly within [1,)")
	}
	if !unbounded.Contains(1000) {
		t.Errorf("depth 1000 unexpectedly outside [1,)")
	}
}
