package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectPathArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"shiftclip"},
			want: []string{"shiftclip"},
		},
		{
			name: "path first token",
			in:   []string{"shiftclip", "0/1"},
			want: []string{"shiftclip", "show", "0/1"},
		},
		{
			name: "single index",
			in:   []string{"shiftclip", "2"},
			want: []string{"shiftclip", "show", "2"},
		},
		{
			name: "path after value flag",
			in:   []string{"shiftclip", "--dir", "./tmp-data", "0/1"},
			want: []string{"shiftclip", "--dir", "./tmp-data", "show", "0/1"},
		},
		{
			name: "path after equals flag",
			in:   []string{"shiftclip", "--backend=file", "0.1"},
			want: []string{"shiftclip", "--backend=file", "show", "0.1"},
		},
		{
			name: "path after bool flag",
			in:   []string{"shiftclip", "--pretty", "-v", "1"},
			want: []string{"shiftclip", "--pretty", "-v", "show", "1"},
		},
		{
			name: "path after double dash",
			in:   []string{"shiftclip", "--dir", "./d", "--", "0/0"},
			want: []string{"shiftclip", "--dir", "./d", "--", "show", "0/0"},
		},
		{
			name: "root path not rewritten",
			in:   []string{"shiftclip", "/"},
			want: []string{"shiftclip", "/"},
		},
		{
			name: "subcommand not rewritten",
			in:   []string{"shiftclip", "show", "0/1"},
			want: []string{"shiftclip", "show", "0/1"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"shiftclip", "wat"},
			want: []string{"shiftclip", "wat"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectPathArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectPathArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
